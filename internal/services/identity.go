package services

import (
	"context"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
)

type IdentityService interface {
	Signup(ctx context.Context, request models.SignupRequest) error
	Login(ctx context.Context, email string, password string) error
	Logout(ctx context.Context)
	RequestPasswordReset(ctx context.Context, email string) error
}

type Identity struct {
	API     client.API
	Cache   *cache.Cache
	Session *session.Session
}

// Создание сервиса
func NewIdentity(api client.API, store *cache.Cache, userSession *session.Session) IdentityService {
	return &Identity{API: api, Cache: store, Session: userSession}
}

// Signup - регистрация нового пользователя, сессия открывается сразу
func (i *Identity) Signup(ctx context.Context, request models.SignupRequest) error {
	logger.Info("Signup user:", request.Email)

	response, err := i.API.Signup(ctx, request)
	if err != nil {
		logger.Error("Error signup user", request.Email, err)
		return err
	}
	i.Session.SetToken(response.Token)
	i.Session.SetUser(&response.User)
	return nil
}

// Login - аутентификация пользователя
func (i *Identity) Login(ctx context.Context, email string, password string) error {
	logger.Info("Authenticate user", email)

	response, err := i.API.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		logger.Warn("Authentication failed", email, err)
		return err
	}
	i.Session.SetToken(response.Token)
	i.Session.SetUser(&response.User)
	logger.Info("User authenticated", email)
	return nil
}

// Logout - выход из системы. Запрос к серверу выполняется по возможности:
// локальная сессия и кэш сбрасываются независимо от его результата.
func (i *Identity) Logout(ctx context.Context) {
	if err := i.API.Logout(ctx); err != nil {
		logger.Warn("Logout request failed, proceeding with local teardown", err)
	}
	i.Session.Reset()
	i.Cache.Clear()
	logger.Info("Session closed")
}

// RequestPasswordReset - запрос письма для сброса пароля
func (i *Identity) RequestPasswordReset(ctx context.Context, email string) error {
	if err := i.API.RequestPasswordReset(ctx, email); err != nil {
		logger.Error("Error requesting password reset", email, err)
		return err
	}
	return nil
}
