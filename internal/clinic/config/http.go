package config

import (
	"fmt"
	"time"
)

// HTTPConfig represents the HTTP server configuration.
type HTTPConfig struct {
	Host            string        `yaml:"host" env:"CLINIC_HTTP_HOST" env-default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"CLINIC_HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"CLINIC_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"CLINIC_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CLINIC_HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// GetAddress returns the listen address in host:port form.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
