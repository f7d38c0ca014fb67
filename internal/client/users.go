package client

import (
	"context"
	"net/http"

	"github.com/localeats/localeats-cli/internal/models"
)

// GetMe - профиль текущего пользователя
func (c *Client) GetMe(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetStatistics - статистика заказов пользователя
func (c *Client) GetStatistics(ctx context.Context) (*models.UserStatistics, error) {
	var statistics models.UserStatistics
	if err := c.do(ctx, http.MethodGet, "/users/me/statistics", nil, nil, &statistics); err != nil {
		return nil, err
	}
	return &statistics, nil
}

// GetBadges - достижения пользователя
func (c *Client) GetBadges(ctx context.Context) ([]models.Badge, error) {
	var response struct {
		Badges []models.Badge `json:"badges"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me/badges", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Badges, nil
}

// GetReviews - отзывы пользователя
func (c *Client) GetReviews(ctx context.Context) ([]models.Review, error) {
	var response struct {
		Reviews []models.Review `json:"reviews"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/me/reviews", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Reviews, nil
}

// GetNotifications - уведомления пользователя
func (c *Client) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	var response struct {
		Notifications []models.Notification `json:"notifications"`
	}
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Notifications, nil
}
