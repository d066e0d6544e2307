package main

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

const envPrefix = "CASING_"

// Config holds the demo server settings.
type Config struct {
	Listen   string `koanf:"listen"`
	LogLevel string `koanf:"log_level"`
	LogJSON  bool   `koanf:"log_json"`
}

// LoadConfig reads the optional YAML file at path, then CASING_* environment
// variables (CASING_LISTEN, CASING_LOG_LEVEL, CASING_LOG_JSON) on top.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Listen: ":8080", LogLevel: "info"}
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("load %s: %w", path, err)
		}
	}
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds a zap logger from cfg.
func NewLogger(cfg Config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	if cfg.LogJSON {
		zc = zap.NewProductionConfig()
	}
	zc.Level = lvl
	return zc.Build()
}
