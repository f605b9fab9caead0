package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultToolkitURL    = "http://127.0.0.1:8000"
	defaultServerAddress = ":8080"
)

type Config struct {
	ToolkitURL    string
	ServerAddress string
	logger        *zap.Logger
}

var (
	configInstance *Config
	once           sync.Once
)

func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		} else {
			logger.Debug("Successfully loaded .env file")
		}

		configInstance = &Config{
			ToolkitURL:    getEnv("TOOLKIT_URL", defaultToolkitURL),
			ServerAddress: getEnv("SERVER_ADDRESS", defaultServerAddress),
			logger:        logger,
		}
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
