// internal/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

const fileName = "perfoverlay.json"

// LoadConfig loads and validates configuration from the specified file.
// The file is JSON and may contain comments and trailing commas. A missing
// file yields the defaults.
func LoadConfig(path string) (*OverlayConfiguration, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	// Start from defaults so absent keys keep their default value.
	config := DefaultConfig()
	if err := json.Unmarshal(jsonc.ToJSON(data), config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// LoadDefaultConfig loads "perfoverlay.json" from the current working
// directory, then from the executable's directory.
func LoadDefaultConfig() (*OverlayConfiguration, error) {
	if _, err := os.Stat(fileName); err == nil {
		return LoadConfig(fileName)
	}

	exePath, err := os.Executable()
	if err == nil {
		configPath := filepath.Join(filepath.Dir(exePath), fileName)
		if _, err := os.Stat(configPath); err == nil {
			return LoadConfig(configPath)
		}
	}

	return DefaultConfig(), nil
}
