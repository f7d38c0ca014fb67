package services

import (
	"context"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
)

type ProfileService interface {
	GetMe(ctx context.Context, force bool) (*models.User, error)
	GetStatistics(ctx context.Context) (*models.UserStatistics, error)
	GetBadges(ctx context.Context) ([]models.Badge, error)
	GetReviews(ctx context.Context) ([]models.Review, error)
	GetNotifications(ctx context.Context, force bool) ([]models.Notification, error)
	UnreadCount(notifications []models.Notification) int
}

type Profile struct {
	API     client.API
	Cache   *cache.Cache
	Session *session.Session
}

// Создание сервиса
func NewProfile(api client.API, store *cache.Cache, userSession *session.Session) ProfileService {
	return &Profile{API: api, Cache: store, Session: userSession}
}

// GetMe - профиль текущего пользователя, результат сохраняется в сессию
func (s *Profile) GetMe(ctx context.Context, force bool) (*models.User, error) {
	if !force {
		if user := s.Session.User(); user != nil {
			return user, nil
		}
	}
	user, err := s.API.GetMe(ctx)
	if err != nil {
		logger.Error("Failed to get profile", err)
		return nil, err
	}
	s.Session.SetUser(user)
	return user, nil
}

// GetStatistics - статистика заказов пользователя
func (s *Profile) GetStatistics(ctx context.Context) (*models.UserStatistics, error) {
	if cached, ok := s.Cache.Get("users/me/statistics"); ok {
		return cached.(*models.UserStatistics), nil
	}
	statistics, err := s.API.GetStatistics(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set("users/me/statistics", statistics)
	return statistics, nil
}

// GetBadges - достижения пользователя
func (s *Profile) GetBadges(ctx context.Context) ([]models.Badge, error) {
	if cached, ok := s.Cache.Get("users/me/badges"); ok {
		return cached.([]models.Badge), nil
	}
	badges, err := s.API.GetBadges(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set("users/me/badges", badges)
	return badges, nil
}

// GetReviews - отзывы пользователя
func (s *Profile) GetReviews(ctx context.Context) ([]models.Review, error) {
	if cached, ok := s.Cache.Get("users/me/reviews"); ok {
		return cached.([]models.Review), nil
	}
	reviews, err := s.API.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set("users/me/reviews", reviews)
	return reviews, nil
}

// GetNotifications - уведомления пользователя
func (s *Profile) GetNotifications(ctx context.Context, force bool) ([]models.Notification, error) {
	if !force {
		if cached, ok := s.Cache.Get("notifications"); ok {
			return cached.([]models.Notification), nil
		}
	}
	notifications, err := s.API.GetNotifications(ctx)
	if err != nil {
		logger.Error("Failed to get notifications", err)
		return nil, err
	}
	s.Cache.Set("notifications", notifications)
	return notifications, nil
}

// UnreadCount - количество непрочитанных уведомлений для панели навигации
func (s *Profile) UnreadCount(notifications []models.Notification) int {
	count := 0
	for _, notification := range notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}
