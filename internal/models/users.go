package models

import "time"

// User - модель пользователя
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupRequest - запрос регистрации нового пользователя
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
}

// LoginRequest - запрос аутентификации
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse - ответ на регистрацию/аутентификацию
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// PasswordResetRequest - запрос сброса пароля
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// UserStatistics - статистика заказов пользователя
type UserStatistics struct {
	TotalOrders        int    `json:"total_orders"`
	FavoriteCuisine    string `json:"favorite_cuisine"`
	RestaurantsVisited int    `json:"restaurants_visited"`
}

// Badge - достижение пользователя
type Badge struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

// Review - отзыв пользователя о ресторане
type Review struct {
	ID             string    `json:"id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Rating         int       `json:"rating"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// Notification - уведомление пользователя
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
