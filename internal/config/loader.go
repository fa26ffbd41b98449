package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the fallbacks reported by LoadWithSource.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.protector/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hard-coded default.
func Load(variant, customPath string) (CatchConfig, error) {
	cfg, _, err := LoadWithSource(variant, customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports where the config came from.
// Files only need to contain the keys they override.
func LoadWithSource(variant, customPath string) (CatchConfig, string, error) {
	base, ok := DefaultConfig(variant)
	if !ok {
		return CatchConfig{}, "", fmt.Errorf("config: unknown variant %q", variant)
	}

	// An explicit path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(base, customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	filename := variant + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(base, path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg, err := parse(base, GetDefaultYAML(variant))
	if err != nil || cfg.Validate() != nil {
		return base, SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(base CatchConfig, path string) (CatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(base, data)
	if err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over a copy of base so omitted keys keep their defaults.
func parse(base CatchConfig, data []byte) (CatchConfig, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML, e.g. for `protector config`.
func Marshal(cfg CatchConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".protector", "configs", filename)
}
