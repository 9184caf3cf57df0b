package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	RaisePercent float64
	// Sections lists the demo sections to run. Empty means all of them.
	Sections []string
	LogLevel string
	Env      string
	// ResetRoster replaces the stored roster with the sample employees on
	// start. When false the sample is only stored into an empty database.
	ResetRoster bool
}

const (
	defaultDBPath       = "employees.db"
	defaultRaisePercent = 10.0
	defaultLogLevel     = "info"
)

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function so callers can supply
// something other than the process environment.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := &Config{
		DBPath:       defaultDBPath,
		RaisePercent: defaultRaisePercent,
		LogLevel:     defaultLogLevel,
		Env:          "development",
		ResetRoster:  true,
	}
	if v, ok := lookup("DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup("RAISE_PERCENT"); ok && v != "" {
		p, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrInvalidValue{Key: "RAISE_PERCENT", Value: v}
		}
		cfg.RaisePercent = p
	}
	if v, ok := lookup("DEMO_SECTIONS"); ok {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Sections = append(cfg.Sections, strings.ToLower(s))
			}
		}
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("RESET_ROSTER"); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return nil, ErrInvalidValue{Key: "RESET_ROSTER", Value: v}
		}
		cfg.ResetRoster = b
	}
	if v, ok := lookup("APP_ENV"); ok && v != "" {
		cfg.Env = v
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

type ErrInvalidValue struct {
	Key   string
	Value string
}

func (e ErrInvalidValue) Error() string {
	return e.Key + ": invalid value " + strconv.Quote(e.Value)
}
