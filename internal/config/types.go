package config

// Config is the top-level cadalog configuration, corresponding to .cadalog.yml.
// All paths are interpreted relative to the current working directory unless
// absolute. The zero value is not usable; start from DefaultConfig.
type Config struct {
	LibraryDir   string      `yaml:"library_dir" koanf:"library_dir"`
	BaseURL      string      `yaml:"base_url" koanf:"base_url"`
	Title        string      `yaml:"title" koanf:"title"`
	OutputFile   string      `yaml:"output_file" koanf:"output_file"`
	TemplateFile string      `yaml:"template_file" koanf:"template_file"`
	ThumbDir     string      `yaml:"thumb_dir" koanf:"thumb_dir"`
	ThumbSize    int         `yaml:"thumb_size" koanf:"thumb_size"`
	Exclude      []string    `yaml:"exclude" koanf:"exclude"`
	Serve        ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds settings for the local preview server.
type ServeConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	Open     bool `yaml:"open" koanf:"open"`
	Watch    bool `yaml:"watch" koanf:"watch"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
