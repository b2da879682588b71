package config

import "time"

// UpstreamConfig represents the remote API used by the rest storage backend.
type UpstreamConfig struct {
	BaseURL        string        `yaml:"base_url" env:"CLINIC_UPSTREAM_BASE_URL" env-default:"http://localhost:8081/api/v1"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"CLINIC_UPSTREAM_REQUEST_TIMEOUT" env-default:"10s"`
	AuthToken      string        `yaml:"auth_token" env:"CLINIC_UPSTREAM_AUTH_TOKEN" env-default:""`
}
