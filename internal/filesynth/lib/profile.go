package lib

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Profile is a reusable YAML preset of generation parameters, loaded via
// `filesynth gen --profile`. Zero-valued fields are treated as unset so
// explicit command-line flags always win.
type Profile struct {
	Size            string `yaml:"size"`
	Count           int    `yaml:"count"`
	Depth           int    `yaml:"depth"`
	FoldersPerLevel int    `yaml:"foldersPerLevel"`
	Output          string `yaml:"output"`
	Prefix          string `yaml:"prefix"`
	Extension       string `yaml:"extension"`
	Pattern         string `yaml:"pattern"`
	Naming          string `yaml:"naming"`
	Distribution    string `yaml:"distribution"`
	Seed            *int64 `yaml:"seed"`
	Checksum        string `yaml:"checksum"`
}

// LoadProfile reads and parses a generation profile from disk.
func LoadProfile(path string) (*Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return &profile, nil
}
