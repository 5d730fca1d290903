package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type LogicConfig struct {
	TimeoutSec           int    `yaml:"timeout_sec"`
	UserAgent            string `yaml:"user_agent"`
	DelayMS              int    `yaml:"delay_ms"`
	MaxConcurrentWorkers int    `yaml:"max_concurrent_workers"`
	Preview              bool   `yaml:"preview"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type AnalyzerConfig struct {
	Logic LogicConfig `yaml:"logic"`
	Log   LogConfig   `yaml:"log"`
}

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

func DefaultConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		Logic: LogicConfig{
			TimeoutSec:           10,
			UserAgent:            DefaultUserAgent,
			DelayMS:              200,
			MaxConcurrentWorkers: 4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads a yaml config from path. A missing file yields the
// defaults, values present in the file override them.
func LoadConfig(path string) (*AnalyzerConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
