package services

import (
	"context"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
)

type FavoritesService interface {
	GetFavorites(ctx context.Context, force bool) ([]models.Favorite, error)
	Toggle(ctx context.Context, restaurantID string) (bool, error)
}

type Favorites struct {
	API     client.API
	Cache   *cache.Cache
	Session *session.Session
}

// Создание сервиса
func NewFavorites(api client.API, store *cache.Cache, userSession *session.Session) FavoritesService {
	return &Favorites{API: api, Cache: store, Session: userSession}
}

// GetFavorites - список избранных ресторанов, набор идентификаторов
// попадает в сессию для отметок в остальных представлениях
func (s *Favorites) GetFavorites(ctx context.Context, force bool) ([]models.Favorite, error) {
	if !force {
		if cached, ok := s.Cache.Get("favorites"); ok {
			return cached.([]models.Favorite), nil
		}
	}

	favorites, err := s.API.GetFavorites(ctx)
	if err != nil {
		logger.Error("Failed to get favorites", err)
		return nil, err
	}
	s.Cache.Set("favorites", favorites)

	ids := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		ids = append(ids, favorite.RestaurantID)
	}
	s.Session.SetFavorites(ids)
	return favorites, nil
}

// Toggle - оптимистичное переключение избранного в три фазы:
// локальное изменение, запрос, при ошибке - точный обратный откат.
// Возвращает итоговое состояние (true - в избранном).
func (s *Favorites) Toggle(ctx context.Context, restaurantID string) (bool, error) {
	wasFavorite := s.Session.IsFavorite(restaurantID)

	// фаза 1: предварительное локальное изменение
	if wasFavorite {
		s.Session.RemoveFavorite(restaurantID)
	} else {
		s.Session.AddFavorite(restaurantID)
	}

	// фаза 2: запрос на сервер
	var err error
	if wasFavorite {
		err = s.API.RemoveFavorite(ctx, restaurantID)
	} else {
		err = s.API.AddFavorite(ctx, restaurantID)
	}

	// фаза 3: откат при ошибке
	if err != nil {
		logger.Warn("Favorite toggle failed, reverting", restaurantID, err)
		if wasFavorite {
			s.Session.AddFavorite(restaurantID)
		} else {
			s.Session.RemoveFavorite(restaurantID)
		}
		return wasFavorite, err
	}

	s.Cache.Invalidate("favorites")
	return !wasFavorite, nil
}
