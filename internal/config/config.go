package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Coldscan.
// Pointer fields distinguish "unset" from zero values so CLI flags can
// take precedence over local config, which takes precedence over global.
type FileConfig struct {
	Signatures    *string `yaml:"signatures"`
	Include       *string `yaml:"include"`
	Exclude       *string `yaml:"exclude"`
	NoColor       *bool   `yaml:"no_color"`
	NoCache       *bool   `yaml:"no_cache"`
	QuarantineDir *string `yaml:"quarantine_dir"`
	Interval      *string `yaml:"interval"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given scan root. It
// supports .coldscan.yml/.yaml and coldscan.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".coldscan.yml", ".coldscan.yaml", "coldscan.yml", "coldscan.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or
// ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "coldscan", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
