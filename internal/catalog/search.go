package catalog

import (
	"encoding/json"
	"os"
)

// SearchEntry is one card in the client-side search index written next to
// the catalog page.
type SearchEntry struct {
	Name string `json:"name"`
	Dir  string `json:"dir"`
	Href string `json:"href"`
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	if entries == nil {
		entries = []SearchEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
