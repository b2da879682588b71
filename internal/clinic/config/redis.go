package config

import (
	"fmt"
	"time"
)

// RedisConfig represents the response cache configuration.
type RedisConfig struct {
	Enabled         bool          `yaml:"enabled" env:"CLINIC_REDIS_ENABLED" env-default:"false"`
	Host            string        `yaml:"host" env:"CLINIC_REDIS_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"CLINIC_REDIS_PORT" env-default:"6379"`
	Password        string        `yaml:"password" env:"CLINIC_REDIS_PASSWORD" env-default:""`
	DB              int           `yaml:"db" env:"CLINIC_REDIS_DB" env-default:"0"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"CLINIC_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"CLINIC_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"CLINIC_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize        int           `yaml:"pool_size" env:"CLINIC_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle         int           `yaml:"min_idle" env:"CLINIC_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"CLINIC_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime" env:"CLINIC_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL      time.Duration `yaml:"default_ttl" env:"CLINIC_REDIS_DEFAULT_TTL" env-default:"1m"`
}

// GetAddress returns the redis address in host:port form.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
