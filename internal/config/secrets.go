package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// ErrClientIDMissing means no source provided a Cognito client id.
var ErrClientIDMissing = errors.New("cognito client id is not configured")

// secretsDir is the Docker secrets mount point.
var secretsDir = "/run/secrets"

// ReadSecret reads a Docker secret file and trims surrounding whitespace.
func ReadSecret(secretName string) (string, error) {
	filePath := filepath.Join(secretsDir, secretName)
	secretBytes, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", filePath, err)
	}
	secret := strings.TrimSpace(string(secretBytes))
	if secret == "" {
		return "", fmt.Errorf("secret file %s is empty", filePath)
	}
	return secret, nil
}

// SecretsManagerAPI is the part of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// poolSecret is the JSON layout of the shared environment secret.
type poolSecret struct {
	UserPoolID       string `json:"USER_POOL_ID"`
	UserPoolClientID string `json:"USER_POOL_CLIENT_ID"`
	ClientID         string `json:"CLIENT_ID"`
}

// ResolveClientID fills ClientID when the environment left it empty: first
// from the client_id Docker secret, then from the JSON secret SecretName in
// Secrets Manager, which may also supply UserPoolID. sm may be nil.
func (c *Config) ResolveClientID(ctx context.Context, sm SecretsManagerAPI) error {
	if c.ClientID != "" {
		return nil
	}

	if id, err := ReadSecret("client_id"); err == nil {
		c.ClientID = id
		log.Println("Client id loaded from secret file.")
		return nil
	}

	if sm == nil || c.SecretName == "" {
		return ErrClientIDMissing
	}

	out, err := sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(c.SecretName),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch secret %s: %w", c.SecretName, err)
	}

	var secret poolSecret
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &secret); err != nil {
		return fmt.Errorf("failed to decode secret %s: %w", c.SecretName, err)
	}

	c.ClientID = secret.UserPoolClientID
	if c.ClientID == "" {
		c.ClientID = secret.ClientID
	}
	if c.UserPoolID == "" {
		c.UserPoolID = secret.UserPoolID
	}
	if c.ClientID == "" {
		return fmt.Errorf("secret %s: %w", c.SecretName, ErrClientIDMissing)
	}
	log.Printf("Client id loaded from secret %s.", c.SecretName)
	return nil
}
