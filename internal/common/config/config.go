package config

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/amoylab/toolshop-datagen/pkg/helper"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	// Config is the root configuration of the datagen tool
	Config struct {
		Generator GeneratorConfig `yaml:"generator" toml:"generator"`
		Logger    LoggerConfig    `yaml:"logger" toml:"logger"`
		Database  DatabaseConfig  `yaml:"database" toml:"database"`
		Metrics   MetricsConfig   `yaml:"metrics" toml:"metrics"`
		Report    ReportConfig    `yaml:"report" toml:"report"`
		SQL       SQLConfig       `yaml:"sql" toml:"sql"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level" toml:"level"`             // debug, info, warn, error
		Format     string `yaml:"format" toml:"format"`           // json, console
		Output     string `yaml:"output" toml:"output"`           // stdout, file
		FilePath   string `yaml:"file_path" toml:"file_path"`     // path to log file when output is file
		MaxSize    int    `yaml:"max_size" toml:"max_size"`       // max size of log file in MB
		MaxBackups int    `yaml:"max_backups" toml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age" toml:"max_age"`         // max age of backup files in days
		Compress   bool   `yaml:"compress" toml:"compress"`       // whether to compress backup files
		Color      bool   `yaml:"color" toml:"color"`             // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace" toml:"stacktrace"`   // whether to include stacktrace in error logs
		TimeZone   string `yaml:"time_zone" toml:"time_zone"`     // time zone for log timestamps, e.g., "UTC", default is local
		TimeFormat string `yaml:"time_format" toml:"time_format"` // time format for log timestamps, default is "2006-01-02 15:04:05"
	}

	// MetricsConfig controls the Prometheus textfile written after a run
	MetricsConfig struct {
		Enabled   bool      `yaml:"enabled" toml:"enabled"`
		Namespace string    `yaml:"namespace" toml:"namespace"`
		Textfile  string    `yaml:"textfile" toml:"textfile"` // relative paths resolve against the output directory
		Buckets   []float64 `yaml:"buckets" toml:"buckets"`
	}

	// ReportConfig controls the Markdown run summary
	ReportConfig struct {
		Enabled  bool   `yaml:"enabled" toml:"enabled"`
		FileName string `yaml:"file_name" toml:"file_name"`
	}

	// SQLConfig controls INSERT script generation
	SQLConfig struct {
		Enabled           bool   `yaml:"enabled" toml:"enabled"`     // also write scripts during generate
		Dialect           string `yaml:"dialect" toml:"dialect"`     // mysql, postgresql, sqlite
		Directory         string `yaml:"directory" toml:"directory"` // relative paths resolve against the output directory
		BatchSize         int    `yaml:"batch_size" toml:"batch_size"`
		Transactions      bool   `yaml:"transactions" toml:"transactions"`
		Comments          bool   `yaml:"comments" toml:"comments"`
		OnDuplicateUpdate bool   `yaml:"on_duplicate_update" toml:"on_duplicate_update"`
	}
)

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Generator: DefaultGenerator(),
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
			Color:  true,
		},
		Database: DatabaseConfig{
			Type:      "sqlite",
			DBName:    "./data/toolshop.db",
			SSLMode:   "disable",
			BatchSize: 500,
		},
		Metrics: MetricsConfig{
			Namespace: "toolshop_datagen",
			Textfile:  "metrics.prom",
		},
		Report: ReportConfig{
			FileName: "REPORT.md",
		},
		SQL: SQLConfig{
			Dialect:      "mysql",
			Directory:    "sql",
			BatchSize:    100,
			Transactions: true,
			Comments:     true,
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file with environment
// variable support. Keys missing from the file keep their default values.
func LoadConfig(filename string) (*Config, string, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := Default()
	cfgPath := helper.GetCfgPath(filename)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, cfgPath, err
	}

	// Resolve environment variables
	data = resolveEnv(data)
	if err := decode(cfgPath, data, cfg); err != nil {
		return nil, cfgPath, err
	}
	return cfg, cfgPath, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
		return err
	default:
		return yaml.Unmarshal(data, cfg)
	}
}

var envPattern = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// resolveEnv replaces environment variable placeholders in the file content
func resolveEnv(content []byte) []byte {
	return envPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		matches := envPattern.FindSubmatch(match)
		envKey := string(matches[1])
		var defaultValue string

		if len(matches) > 2 {
			defaultValue = string(matches[2])
		}

		if value, exists := os.LookupEnv(envKey); exists {
			return []byte(value)
		}
		return []byte(defaultValue)
	})
}
