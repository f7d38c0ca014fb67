package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
)

var (
	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
)

type OrdersService interface {
	GetOrders(ctx context.Context, query url.Values, force bool) (*models.OrdersPage, error)
	GetOrder(ctx context.Context, orderID string, force bool) (*models.Order, error)
	CancelOrder(ctx context.Context, orderID string, reason string) (*models.Order, error)
	Reorder(ctx context.Context, orderID string) error
}

type Orders struct {
	API     client.API
	Cache   *cache.Cache
	Session *session.Session
}

// Создание сервиса
func NewOrders(api client.API, store *cache.Cache, userSession *session.Session) OrdersService {
	return &Orders{API: api, Cache: store, Session: userSession}
}

// GetOrders - история заказов, force пропускает кэш
func (s *Orders) GetOrders(ctx context.Context, query url.Values, force bool) (*models.OrdersPage, error) {
	key := cache.Key("orders", query)
	if !force {
		if cached, ok := s.Cache.Get(key); ok {
			return cached.(*models.OrdersPage), nil
		}
	}

	page, err := s.API.GetOrders(ctx, query)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return nil, err
	}
	s.Cache.Set(key, page)
	return page, nil
}

// GetOrder - заказ с позициями и рестораном, force пропускает кэш
func (s *Orders) GetOrder(ctx context.Context, orderID string, force bool) (*models.Order, error) {
	key := "orders/" + orderID
	if !force {
		if cached, ok := s.Cache.Get(key); ok {
			return cached.(*models.Order), nil
		}
	}

	order, err := s.API.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("Failed to get order", orderID, err)
		return nil, err
	}
	s.Cache.Set(key, order)
	return order, nil
}

// CancelOrder - отмена заказа. Возможна только в статусе order_received;
// успех инвалидирует кэш заказа, при ошибке состояние не меняется
// (оптимистичного обновления нет, откатывать нечего).
func (s *Orders) CancelOrder(ctx context.Context, orderID string, reason string) (*models.Order, error) {
	order, err := s.GetOrder(ctx, orderID, false)
	if err != nil {
		return nil, err
	}
	if !order.Cancellable() {
		logger.Warn("Cancel rejected, wrong status", orderID, order.OrderStatus)
		return nil, ErrOrderNotCancellable
	}

	cancelled, err := s.API.CancelOrder(ctx, orderID, reason)
	if err != nil {
		logger.Error("Failed to cancel order", orderID, err)
		return nil, err
	}

	s.Cache.Invalidate("orders/" + orderID)
	s.Cache.InvalidateResource("orders")
	s.Cache.Set("orders/"+orderID, cancelled)
	return cancelled, nil
}

// Reorder - повтор заказа: позиции от сервера добавляются в корзину
func (s *Orders) Reorder(ctx context.Context, orderID string) error {
	items, err := s.API.Reorder(ctx, orderID)
	if err != nil {
		logger.Error("Failed to reorder", orderID, err)
		return err
	}
	s.Session.AddToCart(items...)
	logger.Info("Reorder added items to cart", orderID, len(items))
	return nil
}
