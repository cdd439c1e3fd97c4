package catalog

import (
	"os"
	"path/filepath"
)

// Stock icon filenames inside the thumbnail directory.
const (
	gridIconName     = "icon-grid.svg"
	listIconName     = "icon-list.svg"
	collapseIconName = "icon-right.svg"
	expandIconName   = "icon-down.svg"
)

// stockIcons maps each bundled icon filename to its content. The files are
// written into the thumbnail directory before rendering so that every icon
// reference in the generated page resolves, even on a fresh library.
var stockIcons = map[string]string{
	defaultIconName: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">
<path fill="#e8e8e8" stroke="#888" stroke-width="2" d="M12 2h28l12 12v48H12z"/>
<path fill="#ccc" d="M40 2l12 12H40z"/>
<path fill="none" stroke="#d9534f" stroke-width="3" d="M20 44l12-20 12 20z"/>
</svg>
`,
	gridIconName: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path fill="#666" d="M1 1h6v6H1zM9 1h6v6H9zM1 9h6v6H1zM9 9h6v6H9z"/>
</svg>
`,
	listIconName: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path fill="#666" d="M1 2h2v2H1zM5 2h10v2H5zM1 7h2v2H1zM5 7h10v2H5zM1 12h2v2H1zM5 12h10v2H5z"/>
</svg>
`,
	collapseIconName: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path fill="#666" d="M5 2l7 6-7 6z"/>
</svg>
`,
	expandIconName: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<path fill="#666" d="M2 5l6 7 6-7z"/>
</svg>
`,
	"icon-step.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<rect x="1" y="1" width="14" height="14" rx="2" fill="#9e9e9e"/>
<text x="8" y="11" font-size="6" text-anchor="middle" fill="#fff" font-family="sans-serif">STP</text>
</svg>
`,
	"icon-brep.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<rect x="1" y="1" width="14" height="14" rx="2" fill="#42a5f5"/>
<text x="8" y="11" font-size="6" text-anchor="middle" fill="#fff" font-family="sans-serif">BRP</text>
</svg>
`,
	"icon-stl.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
<rect x="1" y="1" width="14" height="14" rx="2" fill="#66bb6a"/>
<text x="8" y="11" font-size="6" text-anchor="middle" fill="#fff" font-family="sans-serif">STL</text>
</svg>
`,
}

// writeStockIcons creates the thumbnail directory and drops the bundled
// icons into it. Existing icon files are left alone so libraries can ship
// their own artwork under the same names.
func (b *Builder) writeStockIcons() error {
	dir := filepath.Join(b.cleaner.Base(), b.cfg.ThumbDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range stockIcons {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			continue
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// defaultTemplate is the built-in page template, used when the library does
// not ship its own template file. It carries the same placeholder tokens an
// external template would.
const defaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title><!--title--></title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 70em; padding: 0 1em; color: #222; }
h2, h3, h4, h5, h6, .h7, .h8 { cursor: pointer; margin: 0.4em 0; }
.hicon { width: 0.8em; height: 0.8em; margin-right: 0.4em; }
.collapsable { margin-left: 1.2em; }
.hidden { display: none; }
.readme { background: #f6f6f6; border-radius: 6px; padding: 0.5em 1em; margin: 0.5em 0; }
.cards { display: flex; flex-wrap: wrap; gap: 0.8em; margin: 0.8em 0; }
.cards.list { display: block; }
.card { border: 1px solid #ddd; border-radius: 6px; padding: 0.6em; width: 10em; text-align: center; }
.cards.list .card { display: flex; align-items: center; width: auto; text-align: left; margin-bottom: 0.3em; }
.card a { text-decoration: none; color: inherit; }
.card .icon { width: 6em; height: 6em; object-fit: contain; }
.cards.list .card .icon { width: 2em; height: 2em; margin-right: 0.6em; }
.card .name { margin-top: 0.3em; word-break: break-word; }
.card .links img { width: 1.2em; height: 1.2em; }
.toolbar { display: flex; gap: 0.6em; align-items: center; margin-bottom: 1em; }
.toolbar img { width: 1.4em; height: 1.4em; cursor: pointer; }
.toolbar input { flex: 1; padding: 0.4em; }
#results { margin: 0.5em 0; }
</style>
</head>
<body>
<h1><!--title--></h1>
<div class="toolbar">
<img id="viewgrid" src="<!--gridicon-->" title="Grid view" onclick="setview(false)"/>
<img id="viewlist" src="<!--listicon-->" title="List view" onclick="setview(true)"/>
<input id="search" type="search" placeholder="Filter parts..." oninput="search(this.value)"/>
</div>
<div id="results"></div>
<div id="contents">
<!--contents-->
</div>
<script>
function collapse(icon) {
  var block = icon.parentNode.nextElementSibling;
  if (!block || !block.classList.contains("collapsable")) { return; }
  block.classList.toggle("hidden");
  icon.src = block.classList.contains("hidden") ? "<!--collapseicon-->" : "<!--expandicon-->";
}
function setview(list) {
  document.querySelectorAll(".cards").forEach(function (c) {
    c.classList.toggle("list", list);
  });
}
var searchIndex = null;
function search(term) {
  var results = document.getElementById("results");
  var contents = document.getElementById("contents");
  if (!term) { results.innerHTML = ""; contents.style.display = ""; return; }
  if (!searchIndex) {
    fetch("search-index.json").then(function (r) { return r.json(); }).then(function (data) {
      searchIndex = data;
      search(term);
    });
    return;
  }
  contents.style.display = "none";
  var lower = term.toLowerCase();
  var html = "";
  searchIndex.forEach(function (e) {
    if (e.name.toLowerCase().indexOf(lower) !== -1) {
      html += '<div><a href="' + e.href + '">' + e.dir + "/" + e.name + "</a></div>";
    }
  });
  results.innerHTML = html || "<em>No matching parts.</em>";
}
</script>
</body>
</html>
`
