package config

import (
	"fmt"
)

// PostgresConfig represents the database connection configuration.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"CLINIC_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"CLINIC_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"CLINIC_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"CLINIC_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"CLINIC_POSTGRES_DB" env-default:"clinic"`
	MinConn  int    `yaml:"min_conn" env:"CLINIC_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"CLINIC_POSTGRES_MAX_CONN" env-default:"10"`
	// MigrationsPath is a filesystem path (relative or absolute) or a
	// ready source URL such as file:///srv/migrations.
	MigrationsPath string `yaml:"migrations_path" env:"CLINIC_POSTGRES_MIGRATIONS_PATH" env-default:"migrations/clinic"`
}

// GetDSN returns the keyword/value connection string.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL returns the URL form used by migrations.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
