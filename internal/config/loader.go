package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the embedded default as a config source.
const SourceEmbedded = "embedded"

// LoadResult describes the configuration that was loaded and where from.
type LoadResult struct {
	Config CatchConfig
	Source string // file path, or SourceEmbedded

	// Skipped lists candidate files that existed but could not be used.
	// The loader moved past them; callers usually just log these.
	Skipped []error
}

// LoadCatch loads Circus Catch configuration.
// Search order: customPath -> ~/.circus/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// A customPath that cannot be read, parsed or validated is an error; broken
// files further down the search order are skipped.
func LoadCatch(customPath string) (LoadResult, error) {
	var candidates []string
	if p := userConfigPath("catch.yaml"); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", "catch.yaml"))
	return loadCatch(customPath, candidates)
}

func loadCatch(customPath string, candidates []string) (LoadResult, error) {
	if customPath != "" {
		cfg, err := readCatchFile(customPath)
		if err != nil {
			return LoadResult{}, err
		}
		return LoadResult{Config: cfg, Source: customPath}, nil
	}

	var res LoadResult
	for _, path := range candidates {
		cfg, err := readCatchFile(path)
		if err == nil {
			res.Config = cfg
			res.Source = path
			return res, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			res.Skipped = append(res.Skipped, err)
		}
	}

	cfg, err := ParseCatch(defaultCatchYAML)
	if err != nil {
		// Embedded file is broken; the hardcoded copy is always valid.
		cfg = DefaultCatchConfig()
	}
	res.Config = cfg
	res.Source = SourceEmbedded
	return res, nil
}

func readCatchFile(path string) (CatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CatchConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseCatch(data)
	if err != nil {
		return CatchConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCatch decodes YAML on top of the built-in defaults and validates the
// result, so a file only needs to list the values it changes.
func ParseCatch(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatchConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".circus", "configs", filename)
}
