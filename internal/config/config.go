// Package config loads CLI-level settings from an optional YAML file with
// environment overrides. The engine itself never reads this: thresholds are
// translated into an explicit model.DetectorConfig and passed down.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"dq-check/internal/model"
)

// Config holds everything the CLI layer can tune. Environment variables
// override YAML values.
type Config struct {
	HighNullThreshold     float64 `yaml:"high_null_threshold" env:"DQ_HIGH_NULL_THRESHOLD" env-default:"0.30"`
	ConstantThreshold     int     `yaml:"constant_threshold" env:"DQ_CONSTANT_THRESHOLD" env-default:"1"`
	IDUniquenessThreshold float64 `yaml:"id_uniqueness_threshold" env:"DQ_ID_UNIQUENESS_THRESHOLD" env-default:"1.0"`

	// Workers bounds the parallel column-profiling fan-out. 1 profiles
	// serially.
	Workers int `yaml:"workers" env:"DQ_WORKERS" env-default:"1"`

	LLM LLMConfig `yaml:"llm"`
}

// LLMConfig selects the optional enrichment backend. API keys come from the
// provider-specific environment variables, never from YAML.
type LLMConfig struct {
	// Model is a "provider:model" selector, e.g. "openai:gpt-4o-mini".
	// Empty disables enrichment.
	Model string `yaml:"model" env:"DQ_LLM_MODEL" env-default:""`
}

// Load reads the config file at path, or environment-only when path is
// empty.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read config from environment: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &cfg, nil
}

// Detector translates the loaded thresholds into the engine's explicit
// configuration value.
func (c *Config) Detector() model.DetectorConfig {
	return model.DetectorConfig{
		HighNullThreshold:     c.HighNullThreshold,
		ConstantThreshold:     c.ConstantThreshold,
		IDUniquenessThreshold: c.IDUniquenessThreshold,
	}
}
