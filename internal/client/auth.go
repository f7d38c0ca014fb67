package client

import (
	"context"
	"net/http"

	"github.com/localeats/localeats-cli/internal/models"
)

// Signup - регистрация нового пользователя
func (c *Client) Signup(ctx context.Context, request models.SignupRequest) (*models.AuthResponse, error) {
	var response models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Login - аутентификация пользователя
func (c *Client) Login(ctx context.Context, request models.LoginRequest) (*models.AuthResponse, error) {
	var response models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Logout - завершение сессии на сервере
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// RequestPasswordReset - запрос письма для сброса пароля
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	request := models.PasswordResetRequest{Email: email}
	return c.do(ctx, http.MethodPost, "/auth/password-reset", nil, request, nil)
}
