package config

// Defaults supplies fallback values for the optional CLI parameters.
// Positional arguments always win over these.
type Defaults struct {
	FilePattern string `yaml:"file_pattern" json:"file_pattern,omitempty"`
	Directory   string `yaml:"directory" json:"directory,omitempty"`
	Recursive   bool   `yaml:"recursive" json:"recursive,omitempty"`
}

type Output struct {
	Color  string `yaml:"color" json:"color,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

type Config struct {
	Defaults Defaults `yaml:"defaults" json:"defaults,omitempty"`
	Output   Output   `yaml:"output" json:"output,omitempty"`
	Excludes []string `yaml:"excludes" json:"excludes,omitempty"`
}
