// Package config loads the optional shared configuration file for the EA
// servers. Configuration is strictly optional: every value has a default
// and a missing or unparsable file behaves like an empty one.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the per-service storage root overrides. Empty fields fall
// back to the built-in defaults under the user's home directory.
type Config struct {
	JournalDir string `yaml:"journal_dir"`
	MemoryDir  string `yaml:"memory_dir"`
	PromptsDir string `yaml:"prompts_dir"`
}

// candidatePaths returns the config file locations in lookup order. An
// explicit path (from a CLI flag) wins, then $EA_MCP_CONFIG, then the
// dotfiles in the home directory.
func candidatePaths(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if env := os.Getenv("EA_MCP_CONFIG"); env != "" {
		paths = append(paths, env)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".ea-mcp.yaml"),
			filepath.Join(home, ".ea-mcp.yml"),
		)
	}
	return paths
}

// Load reads the first config file that exists among the candidates.
// Any read or parse failure falls back to the zero Config.
func Load(explicit string) Config {
	for _, p := range candidatePaths(explicit) {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		cfg, err := loadFile(p)
		if err != nil {
			return Config{}
		}
		return cfg
	}
	return Config{}
}

func loadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
