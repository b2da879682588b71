package config

import "time"

// Storage backends selectable via CLINIC_STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRest     = "rest"
)

// StorageConfig selects the repository backend.
type StorageConfig struct {
	Backend string        `yaml:"backend" env:"CLINIC_STORAGE_BACKEND" env-default:"memory"`
	Latency time.Duration `yaml:"latency" env:"CLINIC_STORAGE_LATENCY" env-default:"0s"`
}
