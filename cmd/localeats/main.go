package main

import (
	"fmt"

	"github.com/localeats/localeats-cli/internal/app"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Client.LogLevel, config.Client.LogFile); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// запуск приложения
	app.Run(config)
}
