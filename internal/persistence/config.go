// Package persistence loads the arena configuration from disk. Catalog and
// economy numbers are data, not code: the engine receives them as parameters
// and owns no defaults of its own.
package persistence

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/NP-Dat/battle-arena/internal/models"
)

// ConfigFile is the arena configuration file name, resolved under the
// loader's base path.
const ConfigFile = "arena.yaml"

// ConfigLoader loads arena configuration from YAML files under a base path.
type ConfigLoader struct {
	BasePath string
}

// NewConfigLoader creates a ConfigLoader rooted at basePath.
func NewConfigLoader(basePath string) *ConfigLoader {
	return &ConfigLoader{BasePath: basePath}
}

// LoadArenaConfig reads and validates config/arena.yaml.
func (c *ConfigLoader) LoadArenaConfig() (*models.ArenaConfig, error) {
	path := filepath.Join(c.BasePath, "config", ConfigFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config file: %w", err)
	}

	var cfg models.ArenaConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	return &cfg, nil
}
