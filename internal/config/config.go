package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AuthFlowUserPassword      = "USER_PASSWORD_AUTH"
	AuthFlowAdminUserPassword = "ADMIN_USER_PASSWORD_AUTH"

	MetricsBackendCloudWatch = "cloudwatch"
	MetricsBackendPrometheus = "prometheus"
	MetricsBackendNone       = "none"
)

// Config holds the application configuration.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8081"` // local server only

	AWSRegion string `envconfig:"AWS_REGION"`

	// Cognito app client. ClientID may also come from a Docker secret or
	// Secrets Manager, see ResolveClientID.
	ClientID   string `envconfig:"CLIENT_ID"`
	UserPoolID string `envconfig:"USER_POOL_ID"`
	AuthFlow   string `envconfig:"AUTH_FLOW" default:"USER_PASSWORD_AUTH"`
	SecretName string `envconfig:"SECRET_NAME" default:"userapp/env-variables"`
	// Secret field without an envconfig tag
	ClientSecret string

	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"Custom/Login"`
	MetricsBackend   string `envconfig:"METRICS_BACKEND" default:"cloudwatch"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

// GetAllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) GetAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	// USER_POOL_ID for the admin flow may still arrive from Secrets Manager,
	// so it is checked when the provider is built.
	switch c.AuthFlow {
	case AuthFlowUserPassword, AuthFlowAdminUserPassword:
	default:
		return fmt.Errorf("unsupported AUTH_FLOW %q", c.AuthFlow)
	}

	switch c.MetricsBackend {
	case MetricsBackendCloudWatch, MetricsBackendPrometheus, MetricsBackendNone:
	default:
		return fmt.Errorf("unsupported METRICS_BACKEND %q", c.MetricsBackend)
	}
	return nil
}

// LoadConfig loads an optional .env file, then environment variables, then
// optional secrets. It does not resolve a missing client id; call
// ResolveClientID once AWS clients exist.
func LoadConfig(envFilePath string) (*Config, error) {
	if envFilePath != "" {
		if _, err := os.Stat(envFilePath); err == nil {
			if err := godotenv.Load(envFilePath); err != nil {
				log.Printf("Warning: Could not load %s file: %v", envFilePath, err)
			} else {
				log.Printf("Loaded configuration from %s", envFilePath)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("Warning: Error checking %s file: %v", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	// Optional: only app clients created with a secret need it.
	if secret, err := ReadSecret("client_secret"); err == nil {
		cfg.ClientSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
