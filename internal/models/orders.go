package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы заказов
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Статусы заказов
const (
	OrderStatusReceived       = "order_received"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Order - модель заказа пользователя
type Order struct {
	ID                 string          `json:"id"`
	RestaurantID       string          `json:"restaurant_id"`
	OrderType          string          `json:"order_type"`
	OrderStatus        string          `json:"order_status"`
	PlacedAt           *time.Time      `json:"placed_at"`
	PreparingAt        *time.Time      `json:"preparing_at"`
	ReadyAt            *time.Time      `json:"ready_at"`
	OutForDeliveryAt   *time.Time      `json:"out_for_delivery_at"`
	DeliveredAt        *time.Time      `json:"delivered_at"`
	CancelledAt        *time.Time      `json:"cancelled_at"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Discount           decimal.Decimal `json:"discount"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	Tax                decimal.Decimal `json:"tax"`
	Tip                decimal.Decimal `json:"tip"`
	Total              decimal.Decimal `json:"total"`
	Items              []OrderItem     `json:"items"`
	Restaurant         *Restaurant     `json:"restaurant,omitempty"`
}

// OrderItem - позиция заказа
type OrderItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Terminal - проверка, что заказ находится в конечном статусе
func (o *Order) Terminal() bool {
	return o.OrderStatus == OrderStatusDelivered || o.OrderStatus == OrderStatusCancelled
}

// Cancellable - проверка, что заказ ещё можно отменить
func (o *Order) Cancellable() bool {
	return o.OrderStatus == OrderStatusReceived
}

// CancelOrderRequest - запрос отмены заказа
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// OrdersPage - страница истории заказов
type OrdersPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
}
