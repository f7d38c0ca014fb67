package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	APIAddr  string `env:"LOCALEATS_API_ADDRESS" envDefault:"https://api.localeats.example"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"localeats.log"`
}

// APIConfig модель настроек работы с сервером Local Eats
type APIConfig struct {
	APIAddr        string
	RequestTimeout time.Duration
	PollInterval   time.Duration
}

// ClientConfig модель настроек клиента
type ClientConfig struct {
	LogLevel string
	LogFile  string
}

// Config модель настроек приложения
type Config struct {
	Client ClientConfig
	API    APIConfig
}

func NewConfig() Config {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		api      = pflag.StringP("api", "a", args.APIAddr, "Local Eats API address.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		logFile  = pflag.StringP("log_file", "f", args.LogFile, "Log file path.")
	)
	pflag.Parse()

	return Config{
		Client: ClientConfig{
			LogLevel: *logLevel,
			LogFile:  *logFile,
		},
		API: APIConfig{
			APIAddr:        *api,
			RequestTimeout: 10 * time.Second,
			PollInterval:   20 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Client: ClientConfig{
			LogLevel: "info",
			LogFile:  "",
		},
		API: APIConfig{
			APIAddr:        "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			PollInterval:   20 * time.Second,
		},
	}
}
