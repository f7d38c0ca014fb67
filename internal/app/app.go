package app

import (
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/services"
	"github.com/localeats/localeats-cli/internal/session"
	"github.com/localeats/localeats-cli/internal/views"
)

func Run(config config.Config) {
	userSession := session.NewSession()
	store := cache.NewCache()

	api := client.NewClient(config.API.APIAddr, &http.Client{}, userSession)

	deps := views.Deps{
		Config:    config,
		Session:   userSession,
		API:       api,
		Identity:  services.NewIdentity(api, store, userSession),
		Orders:    services.NewOrders(api, store, userSession),
		Favorites: services.NewFavorites(api, store, userSession),
		Catalog:   services.NewCatalog(api, store),
		Profile:   services.NewProfile(api, store, userSession),
	}

	logger.Info("Starting Local Eats client, server:", config.API.APIAddr)

	program := tea.NewProgram(views.NewShell(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("error running program", err.Error())
	}
	logger.Info("Client stopped")
}
