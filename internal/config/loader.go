package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadFromFiles merges all given YAML files in sorted order. Later files
// override scalar values; excludes accumulate across files.
func LoadFromFiles(files []string) (Config, error) {
	combined := Config{}
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		combined = mergeConfig(combined, part)
	}
	current = combined
	return combined, nil
}

func mergeConfig(base, over Config) Config {
	out := base
	if over.Defaults.FilePattern != "" {
		out.Defaults.FilePattern = over.Defaults.FilePattern
	}
	if over.Defaults.Directory != "" {
		out.Defaults.Directory = over.Defaults.Directory
	}
	if over.Defaults.Recursive {
		out.Defaults.Recursive = true
	}
	if over.Output.Color != "" {
		out.Output.Color = over.Output.Color
	}
	if over.Output.Format != "" {
		out.Output.Format = over.Output.Format
	}
	out.Excludes = append(out.Excludes, over.Excludes...)
	return out
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		low := strings.ToLower(f)
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}
