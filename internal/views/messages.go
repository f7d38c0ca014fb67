package views

import (
	"context"
	"time"

	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/services"
	"github.com/localeats/localeats-cli/internal/session"
)

// Deps - зависимости представлений, передаются явно при создании
type Deps struct {
	Config    config.Config
	Session   *session.Session
	API       client.API
	Identity  services.IdentityService
	Orders    services.OrdersService
	Favorites services.FavoritesService
	Catalog   services.CatalogService
	Profile   services.ProfileService
}

// requestContext - контекст с таймаутом для команды запроса
func (d Deps) requestContext() (context.Context, context.CancelFunc) {
	timeout := d.Config.API.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Сообщения уровня приложения
type (
	// showToastMsg - показать всплывающее уведомление
	showToastMsg struct {
		text  string
		isErr bool
	}

	// authDoneMsg - пользователь вошёл, открываем основной интерфейс
	authDoneMsg struct{}

	// logoutDoneMsg - сессия закрыта, возврат на экран входа
	logoutDoneMsg struct{}

	// openTrackingMsg - открыть отслеживание заказа поверх истории
	openTrackingMsg struct {
		orderID string
	}

	// closeTrackingMsg - закрыть отслеживание заказа
	closeTrackingMsg struct{}

	// unreadCountMsg - количество непрочитанных уведомлений для навигации
	unreadCountMsg struct {
		count int
	}
)
