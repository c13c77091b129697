package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type config struct {
	HTTPAddr          string
	RedisAddr         string
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

// fileConfig mirrors config for the optional YAML file. Durations are
// strings in time.ParseDuration syntax.
type fileConfig struct {
	HTTPAddr          string `yaml:"http_addr"`
	RedisAddr         string `yaml:"redis_addr"`
	CacheTTL          string `yaml:"cache_ttl"`
	RateLimitCapacity int    `yaml:"rate_limit_capacity"`
	RateLimitWindow   string `yaml:"rate_limit_window"`
}

// loadConfig reads env vars with defaults, then overlays the YAML file
// named by MORTGAGE_CONFIG if set.
func loadConfig() config {
	cfg := config{
		HTTPAddr:          getenvDefault("HTTP_ADDR", ":8080"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		CacheTTL:          getenvDuration("CACHE_TTL", time.Hour),
		RateLimitCapacity: getenvIntDefault("RATE_LIMIT_CAPACITY", 30),
		RateLimitWindow:   getenvDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if path := os.Getenv("MORTGAGE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("config file error: %v", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			log.Fatalf("config parse error: %v", err)
		}
		if fc.HTTPAddr != "" {
			cfg.HTTPAddr = fc.HTTPAddr
		}
		if fc.RedisAddr != "" {
			cfg.RedisAddr = fc.RedisAddr
		}
		if fc.CacheTTL != "" {
			d, err := time.ParseDuration(fc.CacheTTL)
			if err != nil {
				log.Fatalf("config cache_ttl error: %v", err)
			}
			cfg.CacheTTL = d
		}
		if fc.RateLimitCapacity > 0 {
			cfg.RateLimitCapacity = fc.RateLimitCapacity
		}
		if fc.RateLimitWindow != "" {
			d, err := time.ParseDuration(fc.RateLimitWindow)
			if err != nil {
				log.Fatalf("config rate_limit_window error: %v", err)
			}
			cfg.RateLimitWindow = d
		}
	}

	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
