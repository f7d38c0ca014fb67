package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/localeats/localeats-cli/internal/models"
)

// GetRestaurants - список ресторанов с фильтрами, сортировкой и пагинацией
func (c *Client) GetRestaurants(ctx context.Context, query url.Values) (*models.RestaurantsPage, error) {
	var page models.RestaurantsPage
	if err := c.do(ctx, http.MethodGet, "/restaurants", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetRestaurant - карточка ресторана
func (c *Client) GetRestaurant(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID, nil, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetFavorites - избранные рестораны пользователя
func (c *Client) GetFavorites(ctx context.Context) ([]models.Favorite, error) {
	var response struct {
		Favorites []models.Favorite `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Favorites, nil
}

// AddFavorite - добавление ресторана в избранное
func (c *Client) AddFavorite(ctx context.Context, restaurantID string) error {
	request := struct {
		RestaurantID string `json:"restaurant_id"`
	}{RestaurantID: restaurantID}
	return c.do(ctx, http.MethodPost, "/favorites", nil, request, nil)
}

// RemoveFavorite - удаление ресторана из избранного
func (c *Client) RemoveFavorite(ctx context.Context, restaurantID string) error {
	return c.do(ctx, http.MethodDelete, "/favorites/"+restaurantID, nil, nil, nil)
}

// GetSuggestions - подсказки поиска по префиксу
func (c *Client) GetSuggestions(ctx context.Context, prefix string) ([]models.Suggestion, error) {
	query := url.Values{}
	query.Set("q", prefix)
	var response struct {
		Suggestions []models.Suggestion `json:"suggestions"`
	}
	if err := c.do(ctx, http.MethodGet, "/search/suggestions", query, nil, &response); err != nil {
		return nil, err
	}
	return response.Suggestions, nil
}

// GetRecentQueries - недавние поисковые запросы пользователя
func (c *Client) GetRecentQueries(ctx context.Context) ([]models.RecentQuery, error) {
	var response struct {
		Queries []models.RecentQuery `json:"queries"`
	}
	if err := c.do(ctx, http.MethodGet, "/search/recent", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Queries, nil
}

// GetWeeklyPicks - подборки недели для главной страницы
func (c *Client) GetWeeklyPicks(ctx context.Context) ([]models.WeeklyPick, error) {
	var response struct {
		Picks []models.WeeklyPick `json:"picks"`
	}
	if err := c.do(ctx, http.MethodGet, "/weekly-picks", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Picks, nil
}

// GetRecommendations - персональные рекомендации ресторанов
func (c *Client) GetRecommendations(ctx context.Context) ([]models.Restaurant, error) {
	var response struct {
		Restaurants []models.Restaurant `json:"restaurants"`
	}
	if err := c.do(ctx, http.MethodGet, "/recommendations", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Restaurants, nil
}
