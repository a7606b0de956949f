package config

import (
	// Go Internal Packages
	"testing"

	// External Packages
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
)

func loadDefault(t *testing.T) Config {
	t.Helper()
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(DefaultConfig), yaml.Parser()); err != nil {
		t.Fatalf("failed to load default config: %v", err)
	}
	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		t.Fatalf("failed to unmarshal default config: %v", err)
	}
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := loadDefault(t)

	if err := c.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
	if c.Application != "qris-stream" {
		t.Errorf("application = %q, want qris-stream", c.Application)
	}
	if c.Kafka.Topic != "qris-scans" {
		t.Errorf("kafka.topic = %q, want qris-scans", c.Kafka.Topic)
	}
	if c.Redis.CacheTTLSeconds != 900 {
		t.Errorf("redis.cache_ttl_seconds = %d, want 900", c.Redis.CacheTTLSeconds)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty application", func(c *Config) { c.Application = "" }},
		{"empty logger level", func(c *Config) { c.Logger.Level = "" }},
		{"empty mongo uri", func(c *Config) { c.Mongo.URI = "" }},
		{"empty redis uri", func(c *Config) { c.Redis.URI = "" }},
		{"negative cache ttl", func(c *Config) { c.Redis.CacheTTLSeconds = -1 }},
		{"no kafka brokers", func(c *Config) { c.Kafka.Brokers = nil }},
		{"empty kafka topic", func(c *Config) { c.Kafka.Topic = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadDefault(t)
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Validate accepted an invalid config")
			}
		})
	}
}
