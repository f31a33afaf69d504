package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap/zapcore"
)

var (
	errEnvVarNotFound    error = errors.New("environment variable not found")
	errJWTSecretTooShort error = errors.New("jwt secret too short")
	errInvalidTokenTTL   error = errors.New("invalid token ttl")
)

const (
	apiPortEnvKey   = "API_PORT"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	tokenTTLEnvKey  = "TOKEN_TTL"
	logLevelEnvKey  = "LOG_LEVEL"

	minJWTSecretLen = 32 // bytes

	defaultTokenTTL = 15 * time.Minute
)

type App struct {
	Port            string
	DBConnectionURL string
	JWTSecret       string
	TokenTTL        time.Duration
	LogLevel        zapcore.Level
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}
	if len(jwtSecret) < minJWTSecretLen {
		return App{}, fmt.Errorf("%w: %s must be at least %d bytes", errJWTSecretTooShort, jwtSecretEnvKey, minJWTSecretLen)
	}

	tokenTTL := defaultTokenTTL
	if raw, ok := os.LookupEnv(tokenTTLEnvKey); ok {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return App{}, fmt.Errorf("%w: %s: %w", errInvalidTokenTTL, tokenTTLEnvKey, err)
		}
		if ttl <= 0 {
			return App{}, fmt.Errorf("%w: %s must be positive", errInvalidTokenTTL, tokenTTLEnvKey)
		}
		tokenTTL = ttl
	}

	logLevel := zapcore.InfoLevel
	if raw, ok := os.LookupEnv(logLevelEnvKey); ok {
		lvl, err := zapcore.ParseLevel(raw)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
		logLevel = lvl
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		TokenTTL:        tokenTTL,
		LogLevel:        logLevel,
	}, nil
}
