package services

import (
	"context"
	"net/url"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
)

type CatalogService interface {
	GetRestaurants(ctx context.Context, query url.Values, force bool) (*models.RestaurantsPage, error)
	GetSuggestions(ctx context.Context, prefix string) ([]models.Suggestion, error)
	GetRecentQueries(ctx context.Context) ([]models.RecentQuery, error)
	GetWeeklyPicks(ctx context.Context) ([]models.WeeklyPick, error)
	GetRecommendations(ctx context.Context) ([]models.Restaurant, error)
}

type Catalog struct {
	API   client.API
	Cache *cache.Cache
}

// Создание сервиса
func NewCatalog(api client.API, store *cache.Cache) CatalogService {
	return &Catalog{API: api, Cache: store}
}

// GetRestaurants - список ресторанов, кэш по ресурсу и параметрам запроса
func (s *Catalog) GetRestaurants(ctx context.Context, query url.Values, force bool) (*models.RestaurantsPage, error) {
	key := cache.Key("restaurants", query)
	if !force {
		if cached, ok := s.Cache.Get(key); ok {
			return cached.(*models.RestaurantsPage), nil
		}
	}

	page, err := s.API.GetRestaurants(ctx, query)
	if err != nil {
		logger.Error("Failed to get restaurants", err)
		return nil, err
	}
	s.Cache.Set(key, page)
	return page, nil
}

// GetSuggestions - подсказки поиска, без кэша: префикс меняется с каждым вводом
func (s *Catalog) GetSuggestions(ctx context.Context, prefix string) ([]models.Suggestion, error) {
	return s.API.GetSuggestions(ctx, prefix)
}

// GetRecentQueries - недавние запросы пользователя
func (s *Catalog) GetRecentQueries(ctx context.Context) ([]models.RecentQuery, error) {
	if cached, ok := s.Cache.Get("search/recent"); ok {
		return cached.([]models.RecentQuery), nil
	}
	queries, err := s.API.GetRecentQueries(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set("search/recent", queries)
	return queries, nil
}

// GetWeeklyPicks - подборки недели
func (s *Catalog) GetWeeklyPicks(ctx context.Context) ([]models.WeeklyPick, error) {
	if cached, ok := s.Cache.Get("weekly-picks"); ok {
		return cached.([]models.WeeklyPick), nil
	}
	picks, err := s.API.GetWeeklyPicks(ctx)
	if err != nil {
		logger.Error("Failed to get weekly picks", err)
		return nil, err
	}
	s.Cache.Set("weekly-picks", picks)
	return picks, nil
}

// GetRecommendations - персональные рекомендации
func (s *Catalog) GetRecommendations(ctx context.Context) ([]models.Restaurant, error) {
	if cached, ok := s.Cache.Get("recommendations"); ok {
		return cached.([]models.Restaurant), nil
	}
	restaurants, err := s.API.GetRecommendations(ctx)
	if err != nil {
		logger.Error("Failed to get recommendations", err)
		return nil, err
	}
	s.Cache.Set("recommendations", restaurants)
	return restaurants, nil
}
