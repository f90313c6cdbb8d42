package config

import (
	"fmt"
)

// DatabaseConfig describes the database CSV fixtures are imported into
type DatabaseConfig struct {
	Type      string `yaml:"type" toml:"type"`             // mysql, postgres, sqlite
	Host      string `yaml:"host" toml:"host"`             // localhost
	Port      int    `yaml:"port" toml:"port"`             // 3306 (for mysql), 5432 (for postgres)
	User      string `yaml:"user" toml:"user"`             // root (for mysql), postgres (for postgres)
	Password  string `yaml:"password" toml:"password"`     // password
	DBName    string `yaml:"dbname" toml:"dbname"`         // database name, file path for sqlite
	SSLMode   string `yaml:"sslmode" toml:"sslmode"`       // disable (for postgres)
	BatchSize int    `yaml:"batch_size" toml:"batch_size"` // rows per INSERT during import
	Reset     bool   `yaml:"reset" toml:"reset"`           // delete existing rows before import
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return c.getPostgresDSN()
	case "mysql":
		return c.getMySQLDSN()
	case "sqlite":
		return c.DBName // For SQLite, DBName is the file path
	default:
		return ""
	}
}

// getPostgresDSN returns PostgreSQL connection string
func (c *DatabaseConfig) getPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getMySQLDSN returns MySQL connection string
func (c *DatabaseConfig) getMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
