package client

import (
	"context"
	"net/url"

	"github.com/localeats/localeats-cli/internal/models"
)

// API - контракт сервера Local Eats, потребляемый сервисами клиента
type API interface {
	// авторизация
	Signup(ctx context.Context, request models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error

	// заказы
	GetOrders(ctx context.Context, query url.Values) (*models.OrdersPage, error)
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID string, reason string) (*models.Order, error)
	Reorder(ctx context.Context, orderID string) ([]models.OrderItem, error)

	// рестораны и избранное
	GetRestaurants(ctx context.Context, query url.Values) (*models.RestaurantsPage, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*models.Restaurant, error)
	GetFavorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, restaurantID string) error
	RemoveFavorite(ctx context.Context, restaurantID string) error

	// поиск
	GetSuggestions(ctx context.Context, prefix string) ([]models.Suggestion, error)
	GetRecentQueries(ctx context.Context) ([]models.RecentQuery, error)

	// профиль и лента
	GetMe(ctx context.Context) (*models.User, error)
	GetStatistics(ctx context.Context) (*models.UserStatistics, error)
	GetBadges(ctx context.Context) ([]models.Badge, error)
	GetReviews(ctx context.Context) ([]models.Review, error)
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetWeeklyPicks(ctx context.Context) ([]models.WeeklyPick, error)
	GetRecommendations(ctx context.Context) ([]models.Restaurant, error)
}
