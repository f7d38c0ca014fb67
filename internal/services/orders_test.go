package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/client/mocks"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
	"go.uber.org/mock/gomock"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Client.LogLevel, ""); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func TestOrdersService_GetOrderCaching(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	order := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusPreparing}
	// единственный запрос к серверу, второе чтение из кэша
	mockAPI.EXPECT().GetOrder(gomock.Any(), "order-1").Return(order, nil).Times(1)

	orders := NewOrders(mockAPI, cache.NewCache(), session.NewSession())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	first, err := orders.GetOrder(ctx, "order-1", false)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	second, err := orders.GetOrder(ctx, "order-1", false)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if first != second {
		t.Error("Expected cached order on second read")
	}
}

func TestOrdersService_CancelOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	testCases := []struct {
		TestName       string
		OrderID        string
		Reason         string
		SetupMocks     func()
		ExpectedError  error
		ExpectedStatus string
	}{
		{
			TestName: "Success. Cancel with reason #1",
			OrderID:  "order-1",
			Reason:   "changed my mind",
			SetupMocks: func() {
				received := &models.Order{ID: "order-1", OrderStatus: models.OrderStatusReceived}
				cancelled := &models.Order{ID: "order-1", OrderStatus: models.OrderStatusCancelled, CancellationReason: "changed my mind"}
				mockAPI.EXPECT().GetOrder(gomock.Any(), "order-1").Return(received, nil)
				mockAPI.EXPECT().CancelOrder(gomock.Any(), "order-1", "changed my mind").Return(cancelled, nil)
			},
			ExpectedError:  nil,
			ExpectedStatus: models.OrderStatusCancelled,
		},
		{
			TestName: "Error. Already preparing #2",
			OrderID:  "order-2",
			Reason:   "",
			SetupMocks: func() {
				preparing := &models.Order{ID: "order-2", OrderStatus: models.OrderStatusPreparing}
				mockAPI.EXPECT().GetOrder(gomock.Any(), "order-2").Return(preparing, nil)
			},
			ExpectedError: ErrOrderNotCancellable,
		},
		{
			TestName: "Error. Server rejects cancellation #3",
			OrderID:  "order-3",
			Reason:   "",
			SetupMocks: func() {
				received := &models.Order{ID: "order-3", OrderStatus: models.OrderStatusReceived}
				mockAPI.EXPECT().GetOrder(gomock.Any(), "order-3").Return(received, nil)
				mockAPI.EXPECT().CancelOrder(gomock.Any(), "order-3", "").
					Return(nil, &client.APIError{StatusCode: 409, Message: "cannot cancel at this stage"})
			},
			ExpectedError: &client.APIError{StatusCode: 409, Message: "cannot cancel at this stage"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			orders := NewOrders(mockAPI, cache.NewCache(), session.NewSession())
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			cancelled, err := orders.CancelOrder(ctx, tc.OrderID, tc.Reason)

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got '%v'", err)
				}
				if cancelled.OrderStatus != tc.ExpectedStatus {
					t.Errorf("Expected status '%s', got '%s'", tc.ExpectedStatus, cancelled.OrderStatus)
				}
				if cancelled.CancellationReason != tc.Reason {
					t.Errorf("Expected reason '%s', got '%s'", tc.Reason, cancelled.CancellationReason)
				}
			} else if err == nil {
				t.Error("Expected error, got none")
			} else if err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestOrdersService_CancelInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	received := &models.Order{ID: "order-1", OrderStatus: models.OrderStatusReceived}
	cancelled := &models.Order{ID: "order-1", OrderStatus: models.OrderStatusCancelled, CancellationReason: "changed my mind"}
	mockAPI.EXPECT().GetOrder(gomock.Any(), "order-1").Return(received, nil).Times(1)
	mockAPI.EXPECT().CancelOrder(gomock.Any(), "order-1", "changed my mind").Return(cancelled, nil)

	orders := NewOrders(mockAPI, cache.NewCache(), session.NewSession())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := orders.CancelOrder(ctx, "order-1", "changed my mind"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}

	// последующее чтение отдаёт отменённый заказ с причиной, без запроса
	order, err := orders.GetOrder(ctx, "order-1", false)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if order.OrderStatus != models.OrderStatusCancelled {
		t.Errorf("Expected status '%s', got '%s'", models.OrderStatusCancelled, order.OrderStatus)
	}
	if order.CancellationReason != "changed my mind" {
		t.Errorf("Expected reason to be kept verbatim, got '%s'", order.CancellationReason)
	}
}

func TestOrdersService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	items := []models.OrderItem{
		{ID: "item-1", Name: "Pad Thai", Quantity: 2},
		{ID: "item-2", Name: "Spring Rolls", Quantity: 1},
	}
	mockAPI.EXPECT().Reorder(gomock.Any(), "order-1").Return(items, nil)

	userSession := session.NewSession()
	orders := NewOrders(mockAPI, cache.NewCache(), userSession)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := orders.Reorder(ctx, "order-1"); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if cart := userSession.Cart(); len(cart) != 2 {
		t.Errorf("Expected 2 items in cart, got %d", len(cart))
	}

	reorderErr := errors.New("restaurant closed")
	mockAPI.EXPECT().Reorder(gomock.Any(), "order-2").Return(nil, reorderErr)
	if err := orders.Reorder(ctx, "order-2"); err == nil {
		t.Error("Expected error, got none")
	}
	if cart := userSession.Cart(); len(cart) != 2 {
		t.Errorf("Expected cart untouched on error, got %d items", len(cart))
	}
}
