package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localeats/localeats-cli/internal/client/mocks"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/localeats/localeats-cli/internal/models"
	"go.uber.org/mock/gomock"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Client.LogLevel, ""); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}
}

func TestPoller_StopsAfterTerminalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	preparing := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusPreparing}
	delivered := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusDelivered}

	// ровно две выборки: после delivered новый таймер не взводится,
	// третий вызов провалил бы мок
	gomock.InOrder(
		mockAPI.EXPECT().GetOrder(gomock.Any(), "order-1").Return(preparing, nil),
		mockAPI.EXPECT().GetOrder(gomock.Any(), "order-1").Return(delivered, nil),
	)

	poller := NewPoller(mockAPI, "order-1", 20*time.Millisecond)
	poller.Start(context.Background())
	defer poller.Stop()

	first := <-poller.Updates()
	if first.Err != nil || first.Order.OrderStatus != models.OrderStatusPreparing {
		t.Fatalf("Expected preparing snapshot, got %+v", first)
	}
	if poller.State() != StatePolling {
		t.Errorf("Expected state '%s', got '%s'", StatePolling, poller.State())
	}

	second := <-poller.Updates()
	if second.Err != nil || second.Order.OrderStatus != models.OrderStatusDelivered {
		t.Fatalf("Expected delivered snapshot, got %+v", second)
	}

	// выдерживаем несколько интервалов: опрос не возобновляется
	time.Sleep(100 * time.Millisecond)
	if poller.State() != StateIdle {
		t.Errorf("Expected state '%s' after terminal status, got '%s'", StateIdle, poller.State())
	}
}

func TestPoller_StopClosesUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	preparing := &models.Order{ID: "order-4", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusPreparing}
	mockAPI.EXPECT().GetOrder(gomock.Any(), "order-4").Return(preparing, nil)

	poller := NewPoller(mockAPI, "order-4", time.Minute)
	poller.Start(context.Background())

	// читатель в стиле представления: ждёт очередной снимок из канала
	done := make(chan struct{})
	go func() {
		for range poller.Updates() {
		}
		close(done)
	}()

	poller.Stop()

	// после Stop канал закрыт и читатель завершается, а не виснет
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected the snapshot reader to unblock after Stop")
	}
}

func TestPoller_ErrorGoesIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	mockAPI.EXPECT().GetOrder(gomock.Any(), "order-2").Return(nil, errors.New("connection refused"))

	poller := NewPoller(mockAPI, "order-2", 20*time.Millisecond)
	poller.Start(context.Background())
	defer poller.Stop()

	snapshot := <-poller.Updates()
	if snapshot.Err == nil {
		t.Fatal("Expected error snapshot, got none")
	}

	// ошибка переводит контроллер в Idle, автоматических повторов нет
	time.Sleep(100 * time.Millisecond)
	if poller.State() != StateIdle {
		t.Errorf("Expected state '%s' after fetch error, got '%s'", StateIdle, poller.State())
	}
}

func TestPoller_ManualRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	delivered := &models.Order{ID: "order-3", OrderType: models.OrderTypePickup, OrderStatus: models.OrderStatusDelivered}
	gomock.InOrder(
		mockAPI.EXPECT().GetOrder(gomock.Any(), "order-3").Return(nil, errors.New("connection refused")),
		mockAPI.EXPECT().GetOrder(gomock.Any(), "order-3").Return(delivered, nil),
	)

	poller := NewPoller(mockAPI, "order-3", time.Minute)
	poller.Start(context.Background())
	defer poller.Stop()

	snapshot := <-poller.Updates()
	if snapshot.Err == nil {
		t.Fatal("Expected error snapshot, got none")
	}

	// ручное "Try Again" запускает новую выборку
	poller.Refetch()
	snapshot = <-poller.Updates()
	if snapshot.Err != nil || snapshot.Order.OrderStatus != models.OrderStatusDelivered {
		t.Fatalf("Expected delivered snapshot after refetch, got %+v", snapshot)
	}
}
