package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	OpenAI struct {
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
		BaseURL string `yaml:"baseURL"`
	} `yaml:"openai"`

	Analysis struct {
		SectionTimeoutSeconds int `yaml:"sectionTimeoutSeconds"`
		MaxConcurrent         int `yaml:"maxConcurrent"`
	} `yaml:"analysis"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	Storage struct {
		Enabled    bool   `yaml:"enabled"`
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"storage"`
}

// Load reads config.yaml and applies environment overrides for secrets.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = 8000
	cfg.Analysis.SectionTimeoutSeconds = 90
	cfg.RateLimit.Capacity = 10
	cfg.RateLimit.RefillRate = 1

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No config file: run on defaults plus environment.
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}

	return cfg, nil
}

// SectionTimeout returns the configured per-call timeout.
func (c *Config) SectionTimeout() time.Duration {
	return time.Duration(c.Analysis.SectionTimeoutSeconds) * time.Second
}
