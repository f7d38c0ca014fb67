package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/localeats/localeats-cli/internal/models"
)

// GetOrders - получение истории заказов пользователя
func (c *Client) GetOrders(ctx context.Context, query url.Values) (*models.OrdersPage, error) {
	var page models.OrdersPage
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder - получение заказа с позициями и рестораном
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder - запрос отмены заказа с необязательной причиной
func (c *Client) CancelOrder(ctx context.Context, orderID string, reason string) (*models.Order, error) {
	request := models.CancelOrderRequest{Reason: reason}
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+orderID+"/cancel", nil, request, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Reorder - повтор заказа, сервер возвращает позиции для корзины
func (c *Client) Reorder(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var response struct {
		Items []models.OrderItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders/"+orderID+"/reorder", nil, nil, &response); err != nil {
		return nil, err
	}
	return response.Items, nil
}
