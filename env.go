package s3probe

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/s3types"
)

// EnvConfig is the probe configuration read from the environment.
type EnvConfig struct {
	// Profile selects the shared config profile. Unset or empty means DefaultProfile.
	Profile string `env:"AWS_PROFILE" envDefault:"default"`

	// LogLevel is the level of diagnostic logs on stderr.
	LogLevel slog.Level `env:"S3PROBE_LOG_LEVEL" envDefault:"WARN"`

	// Endpoint overrides the S3 endpoint, for S3-compatible services.
	Endpoint string `env:"S3PROBE_ENDPOINT"`

	// ForcePathStyle addresses the bucket in the URL path instead of the host name.
	ForcePathStyle bool `env:"S3PROBE_FORCE_PATH_STYLE" envDefault:"false"`
}

// Options converts the environment into client options.
func (c EnvConfig) Options() []s3types.Option {
	opts := []s3types.Option{WithProfile(c.Profile)}
	if c.Endpoint != "" {
		opts = append(opts, WithEndpoint(c.Endpoint))
	}
	if c.ForcePathStyle {
		opts = append(opts, WithForcePathStyle(true))
	}
	return opts
}

// LoadEnv reads EnvConfig from the process environment.
// The profile name is used verbatim when set.
func LoadEnv() (EnvConfig, error) {
	cfg, err := env.ParseAs[EnvConfig]()
	if err != nil {
		return EnvConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	return cfg, nil
}
