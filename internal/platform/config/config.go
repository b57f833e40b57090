// Package config locates the application data directory and loads the
// optional config.yaml inside it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataPath    string  `yaml:"-"`
	SessionsDir string  `yaml:"sessions_dir"`
	DBPath      string  `yaml:"db_path"`
	Theme       string  `yaml:"theme"`
	FuelPrice   float64 `yaml:"fuel_price_per_liter"`
}

// New resolves the config for a data directory. A missing config.yaml
// yields defaults; a malformed one is an error.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	cfg := Config{
		DataPath:    dataPath,
		SessionsDir: filepath.Join(dataPath, "sessions"),
		DBPath:      filepath.Join(dataPath, ".fmtrack", "fmtrack.db"),
	}
	raw, err := os.ReadFile(filepath.Join(dataPath, ".fmtrack", "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if file.SessionsDir != "" {
		cfg.SessionsDir = file.SessionsDir
		if !filepath.IsAbs(cfg.SessionsDir) {
			cfg.SessionsDir = filepath.Join(dataPath, file.SessionsDir)
		}
	}
	if file.DBPath != "" {
		cfg.DBPath = file.DBPath
		if !filepath.IsAbs(cfg.DBPath) {
			cfg.DBPath = filepath.Join(dataPath, file.DBPath)
		}
	}
	cfg.Theme = file.Theme
	cfg.FuelPrice = file.FuelPrice
	return cfg, nil
}
