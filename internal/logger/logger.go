package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EncodingJSON    = "json"
	EncodingConsole = "console"

	lambdaFunctionNameEnv    = "AWS_LAMBDA_FUNCTION_NAME"
	lambdaFunctionVersionEnv = "AWS_LAMBDA_FUNCTION_VERSION"
)

// Config holds logger settings.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // json or console, empty means json
	OutputPath string // empty means stdout
	Service    string // empty means the binary name
}

// ForEnv picks settings for service from the ENV and LOG_LEVEL values.
// Inside Lambda the output is always JSON; a local development run gets the
// console encoder.
func ForEnv(env, level, service string) Config {
	cfg := Config{Level: level, Encoding: EncodingJSON, Service: service}
	if env == "development" && !InLambda() {
		cfg.Encoding = EncodingConsole
	}
	return cfg
}

// InLambda reports whether the process runs inside the Lambda runtime.
func InLambda() bool {
	return os.Getenv(lambdaFunctionNameEnv) != ""
}

// New builds a zap.Logger from cfg. Every entry carries the service name and,
// inside Lambda, the function name and version.
func New(cfg Config) (*zap.Logger, error) {
	level, levelErr := parseLevel(cfg.Level)

	encoding := strings.ToLower(cfg.Encoding)
	switch encoding {
	case EncodingJSON, EncodingConsole:
	case "":
		encoding = EncodingJSON
	default:
		return nil, fmt.Errorf("unsupported log encoding %q", cfg.Encoding)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stdout"
	}

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields:     initialFields(cfg.Service),
	}

	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if levelErr != nil {
		log.Warn("Invalid log level, using info", zap.String("logLevel", cfg.Level), zap.Error(levelErr))
	}
	return log, nil
}

func parseLevel(raw string) (zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if raw == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		level.SetLevel(zap.InfoLevel)
		return level, err
	}
	return level, nil
}

func initialFields(service string) map[string]interface{} {
	if service == "" {
		service = filepath.Base(os.Args[0])
	}
	fields := map[string]interface{}{"service": service}

	if name := os.Getenv(lambdaFunctionNameEnv); name != "" {
		fields["function"] = name
		if version := os.Getenv(lambdaFunctionVersionEnv); version != "" {
			fields["functionVersion"] = version
		}
	}
	return fields
}
