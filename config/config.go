package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Sources   SourcesConfig   `yaml:"sources"`
	Weather   WeatherConfig   `yaml:"weather"`
	Database  DatabaseConfig  `yaml:"database"`
	Spotlight SpotlightConfig `yaml:"spotlight"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port" env:"CHAMBER_PORT"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" env:"CHAMBER_RATE_LIMIT"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
	DefaultTheme    string  `yaml:"default_theme"`
	ImagesDir       string  `yaml:"images_dir" env:"CHAMBER_IMAGES_DIR"`
}

// SourcesConfig points at the static JSON fixtures. Each source may be a
// local file path or an http(s) URL.
type SourcesConfig struct {
	Members        string        `yaml:"members" env:"CHAMBER_MEMBERS_SOURCE"`
	Attractions    string        `yaml:"attractions" env:"CHAMBER_ATTRACTIONS_SOURCE"`
	HTTPProxy      string        `yaml:"http_proxy" env:"CHAMBER_HTTP_PROXY"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// WeatherConfig describes the weather widget's upstream and cache.
type WeatherConfig struct {
	URL              string        `yaml:"url" env:"CHAMBER_WEATHER_URL"`
	APIKey           string        `yaml:"api_key" env:"CHAMBER_WEATHER_API_KEY"`
	Lat              float64       `yaml:"lat"`
	Lon              float64       `yaml:"lon"`
	Units            string        `yaml:"units"`
	CacheKey         string        `yaml:"cache_key"`
	FreshnessMinutes int           `yaml:"freshness_minutes"`
	Freshness        time.Duration `yaml:"-"`
	// WarmIntervalMinutes > 0 starts a background read-through on that period.
	WarmIntervalMinutes int           `yaml:"warm_interval_minutes" env:"CHAMBER_WEATHER_WARM_MINUTES"`
	WarmInterval        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the key-value store connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver" env:"CHAMBER_DB_DRIVER"`
	DSN                    string `yaml:"dsn" env:"CHAMBER_DB_DSN"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SpotlightConfig controls the home page spotlight rotator. A zero seed
// means a fresh random source per process.
type SpotlightConfig struct {
	Count int    `yaml:"count"`
	Seed  uint64 `yaml:"seed" env:"CHAMBER_SPOTLIGHT_SEED"`
}

// Load reads the configuration from the given path, then applies
// CHAMBER_* environment overrides and defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills unset fields and derives durations.
func (cfg *Config) ApplyDefaults() {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}
	if cfg.Server.DefaultTheme != "dark" {
		cfg.Server.DefaultTheme = "light"
	}

	if cfg.Sources.Members == "" {
		cfg.Sources.Members = "data/members.json"
	}
	if cfg.Sources.Attractions == "" {
		cfg.Sources.Attractions = "data/attractions.json"
	}
	if cfg.Sources.TimeoutSeconds <= 0 {
		cfg.Sources.TimeoutSeconds = 30
	}
	cfg.Sources.Timeout = time.Duration(cfg.Sources.TimeoutSeconds) * time.Second

	if cfg.Weather.Units == "" {
		cfg.Weather.Units = "metric"
	}
	if cfg.Weather.CacheKey == "" {
		cfg.Weather.CacheKey = "weatherData"
	}
	if cfg.Weather.FreshnessMinutes <= 0 {
		cfg.Weather.FreshnessMinutes = 10
	}
	cfg.Weather.Freshness = time.Duration(cfg.Weather.FreshnessMinutes) * time.Minute
	cfg.Weather.WarmInterval = time.Duration(cfg.Weather.WarmIntervalMinutes) * time.Minute

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		log.Printf("database.dsn is not set; defaulting to chamber.db")
		cfg.Database.DSN = "chamber.db"
	}

	if cfg.Spotlight.Count <= 0 {
		cfg.Spotlight.Count = 4
	}
}
