package config

import (
	"clinicdesk/pkg/logger"
)

// LoggingConfig represents the logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level" env:"CLINIC_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"CLINIC_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment maps the mode string to a logger.Environment.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if l.Mode == "production" {
		return logger.Production
	}
	return logger.Development
}
