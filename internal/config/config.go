package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"dbglog"
)

// AppConfig holds the logger settings read from the YAML file.
type AppConfig struct {
	LogTag       string `yaml:"log_tag"`
	LogLevel     string `yaml:"log_level"`
	TimeLayout   string `yaml:"time_layout"`
	OmitCaller   bool   `yaml:"omit_caller"`
	ForceEnabled bool   `yaml:"force_enabled"`
}

// Default returns the configuration used when no file is present.
func Default() AppConfig {
	cfg := AppConfig{}
	applyDefaults(&cfg)
	return cfg
}

// LoadConfig reads the YAML configuration and fills in defaults for
// missing values.
func LoadConfig(path string) (AppConfig, error) {
	var cfg AppConfig

	file, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, err
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// ApplyEnv overrides configuration values from DBGLOG_* environment
// variables. Unset variables leave the file values untouched.
func ApplyEnv(cfg *AppConfig) {
	cfg.LogTag = getString("DBGLOG_TAG", cfg.LogTag)
	cfg.LogLevel = getString("DBGLOG_LEVEL", cfg.LogLevel)
	cfg.TimeLayout = getString("DBGLOG_TIME_LAYOUT", cfg.TimeLayout)
	if on, ok := getBool("DBGLOG_ENABLED"); ok {
		cfg.ForceEnabled = on
	}
	if on, ok := getBool("DBGLOG_CALLER"); ok {
		cfg.OmitCaller = !on
	}
}

// Severity maps the configured log_level string to its rank.
func (c AppConfig) Severity() dbglog.Severity {
	return dbglog.ParseSeverity(c.LogLevel)
}

func applyDefaults(cfg *AppConfig) {
	if cfg.LogTag == "" {
		cfg.LogTag = "dbglog"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TimeLayout == "" {
		cfg.TimeLayout = dbglog.TimeLayout
	}
}

func getString(key, fallback string) string {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return val
}

func getBool(key string) (bool, bool) {
	val, exists := os.LookupEnv(key)
	if !exists {
		return false, false
	}
	on, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return on, true
}
