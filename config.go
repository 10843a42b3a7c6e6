package ftracker

import (
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfig is the path of the embedded configuration
const DefaultConfig = "etc/packages.json"

//go:embed etc/packages.json
var Content embed.FS

// NewConfig decodes the configuration, choosing YAML or JSON by the file extension of name
func NewConfig(name string, data []byte) (*Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	return &cfg, nil
}
