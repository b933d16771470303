// Package app builds the AWS clients and the handler shared by the Lambda
// entrypoints and the local server.
package app

import (
	"context"
	"fmt"

	"userapp/internal/config"
	"userapp/internal/handler"
	"userapp/internal/identity"
	"userapp/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// LoadAWSConfig loads the default AWS configuration. Retries are disabled:
// one failed provider or metrics call is final.
func LoadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load aws config: %w", err)
	}
	return awsCfg, nil
}

// NewAuthHandler resolves the client id and wires provider and emitter. reg
// is optional; when set, login counters are also exported to Prometheus.
func NewAuthHandler(ctx context.Context, cfg *config.Config, awsCfg aws.Config, reg prometheus.Registerer, logger *zap.Logger) (*handler.AuthHandler, error) {
	if err := cfg.ResolveClientID(ctx, secretsmanager.NewFromConfig(awsCfg)); err != nil {
		return nil, err
	}

	provider, err := identity.NewCognitoProvider(
		cip.NewFromConfig(awsCfg),
		identity.CognitoConfig{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			UserPoolID:   cfg.UserPoolID,
			AuthFlow:     types.AuthFlowType(cfg.AuthFlow),
		},
		logger.Named("CognitoProvider"),
	)
	if err != nil {
		return nil, err
	}

	emitter := NewEmitter(cfg, cloudwatch.NewFromConfig(awsCfg), reg, logger)

	logger.Info("Auth handler initialized",
		zap.String("authFlow", cfg.AuthFlow),
		zap.String("metricsBackend", cfg.MetricsBackend),
		zap.Bool("clientSecret", cfg.ClientSecret != ""),
	)
	return handler.NewAuthHandler(provider, emitter, logger.Named("AuthHandler")), nil
}

// NewEmitter picks the metrics backend from cfg.MetricsBackend.
func NewEmitter(cfg *config.Config, cw metrics.CloudWatchAPI, reg prometheus.Registerer, logger *zap.Logger) metrics.Emitter {
	var emitters metrics.Multi

	switch cfg.MetricsBackend {
	case config.MetricsBackendCloudWatch:
		emitters = append(emitters, metrics.NewCloudWatchEmitter(cw, cfg.MetricsNamespace, logger.Named("CloudWatchEmitter")))
	case config.MetricsBackendPrometheus:
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
	}
	if reg != nil {
		emitters = append(emitters, metrics.NewPrometheusEmitter(reg, cfg.MetricsNamespace))
	}

	switch len(emitters) {
	case 0:
		return metrics.Nop{}
	case 1:
		return emitters[0]
	default:
		return emitters
	}
}
