package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/smith3v/lcurve/pkg/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultTimezone               = "UTC"
	DefaultRefreshIntervalSeconds = 60
)

type Config struct {
	Database  DatabaseConfig  `json:"database"`
	Logging   LoggingConfig   `json:"logging"`
	Selection SelectionConfig `json:"selection"`
}

type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Path     string `json:"path"` // sqlite only
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	GormLevel string `json:"gorm_level"`
}

type SelectionConfig struct {
	// Timezone whose calendar date seeds the daily shuffle.
	Timezone               string `json:"timezone"`
	RefreshIntervalSeconds int    `json:"refresh_interval_seconds"`
}

var AppConfig Config

func LoadConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		logger.Debug("failed to open config file", "path", filename, "error", err)
		return err
	}
	defer file.Close()

	var cfg Config
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		logger.Error("failed to decode config file", "path", filename, "error", err)
		return err
	}

	cfg.ApplyDefaults()
	AppConfig = cfg
	return nil
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	if c.Database.Driver == "" {
		c.Database.Driver = DriverSQLite
	}
	if c.Database.Driver == DriverSQLite {
		if strings.TrimSpace(c.Database.Path) == "" {
			c.Database.Path = defaultDatabasePath()
		} else {
			c.Database.Path = expandHome(c.Database.Path)
		}
	}
	if c.Database.Driver == DriverPostgres {
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
	if strings.TrimSpace(c.Selection.Timezone) == "" {
		c.Selection.Timezone = DefaultTimezone
	}
	if c.Selection.RefreshIntervalSeconds <= 0 {
		c.Selection.RefreshIntervalSeconds = DefaultRefreshIntervalSeconds
	}
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lcurve.db"
	}
	return filepath.Join(home, ".lcurve", "lcurve.db")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
