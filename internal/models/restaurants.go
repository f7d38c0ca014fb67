package models

import "github.com/shopspring/decimal"

// Restaurant - модель ресторана
type Restaurant struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Cuisine      string          `json:"cuisine"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	PriceLevel   int             `json:"price_level"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	DeliveryETA  string          `json:"delivery_eta"`
	Address      string          `json:"address"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	DistanceKm   float64         `json:"distance_km"`
	IsOpen       bool            `json:"is_open"`
	HasPromotion bool            `json:"has_promotion"`
}

// RestaurantsPage - страница списка ресторанов
type RestaurantsPage struct {
	Restaurants []Restaurant `json:"restaurants"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
}

// WeeklyPick - подборка недели на главной
type WeeklyPick struct {
	Restaurant Restaurant `json:"restaurant"`
	Headline   string     `json:"headline"`
}

// Favorite - избранный ресторан пользователя
type Favorite struct {
	RestaurantID string     `json:"restaurant_id"`
	Restaurant   Restaurant `json:"restaurant"`
}
