package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the readme-consultant configuration.
type Config struct {
	Model          string   `json:"model"`
	Format         string   `json:"format"`
	TimeoutSeconds int      `json:"timeoutSeconds"`
	MaxTokens      int      `json:"maxTokens"`
	TreeDepth      int      `json:"treeDepth"`
	IgnoreDirs     []string `json:"ignoreDirs"`
	FetchRelease   bool     `json:"fetchRelease"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Model:          "llama3",
		Format:         "text",
		TimeoutSeconds: 300,
		MaxTokens:      4096,
		TreeDepth:      0,
		IgnoreDirs:     []string{".git"},
		FetchRelease:   false,
	}
}

// ConfigDir returns the platform-appropriate config directory.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "readme-consultant"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "readme-consultant"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "readme-consultant"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "readme-consultant"), nil
	default:
		return filepath.Join(home, ".config", "readme-consultant"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.TimeoutSeconds > 0 {
		dst.TimeoutSeconds = src.TimeoutSeconds
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.TreeDepth > 0 {
		dst.TreeDepth = src.TreeDepth
	}
	if len(src.IgnoreDirs) > 0 {
		dst.IgnoreDirs = src.IgnoreDirs
	}
	// JSON zero value for bool is false, so an unset fetchRelease cannot be
	// told apart from an explicit false; true always wins.
	dst.FetchRelease = src.FetchRelease || dst.FetchRelease
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("CONSULT_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("CONSULT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("CONSULT_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("CONSULT_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["timeoutSeconds"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
	if v, ok := overrides["treeDepth"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TreeDepth = n
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "timeoutSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeoutSeconds must be an integer: %w", err)
		}
		cfg.TimeoutSeconds = n
	case "maxTokens":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxTokens must be an integer: %w", err)
		}
		cfg.MaxTokens = n
	case "treeDepth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("treeDepth must be an integer: %w", err)
		}
		cfg.TreeDepth = n
	case "fetchRelease":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("fetchRelease must be a boolean: %w", err)
		}
		cfg.FetchRelease = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
