package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/config"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/tracking"
)

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestTracking_CancelGatedOnStatus(t *testing.T) {
	initTestLogger(t)

	testCases := []struct {
		TestName           string
		Status             string
		ExpectedCancelMode bool
	}{
		{
			TestName:           "Success. Just received order can be cancelled #1",
			Status:             models.OrderStatusReceived,
			ExpectedCancelMode: true,
		},
		{
			TestName:           "Error. Preparing order cannot be cancelled #2",
			Status:             models.OrderStatusPreparing,
			ExpectedCancelMode: false,
		},
		{
			TestName:           "Error. Delivered order cannot be cancelled #3",
			Status:             models.OrderStatusDelivered,
			ExpectedCancelMode: false,
		},
		{
			TestName:           "Error. Cancelled order cannot be cancelled again #4",
			Status:             models.OrderStatusCancelled,
			ExpectedCancelMode: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			model := NewTracking(Deps{Config: config.DefaultConfig()}, "order-1")
			order := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: tc.Status}
			model, _ = model.Update(trackSnapshotMsg{snapshot: tracking.Snapshot{Order: order}})

			model, _ = model.Update(keyMsg("c"))
			if model.cancelMode != tc.ExpectedCancelMode {
				t.Errorf("Expected cancelMode=%v for status '%s', got %v",
					tc.ExpectedCancelMode, tc.Status, model.cancelMode)
			}
		})
	}
}

func TestTracking_CancelErrorShownInline(t *testing.T) {
	initTestLogger(t)

	model := NewTracking(Deps{Config: config.DefaultConfig()}, "order-1")
	order := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusReceived}
	model, _ = model.Update(trackSnapshotMsg{snapshot: tracking.Snapshot{Order: order}})

	model, _ = model.Update(keyMsg("c"))
	if !model.cancelMode {
		t.Fatal("Expected cancel mode to open")
	}

	// бизнес-отказ сервера: сообщение рядом с действием, заказ не тронут
	serverErr := &client.APIError{StatusCode: 409, Message: "cannot cancel at this stage"}
	model, cmd := model.Update(cancelResultMsg{err: serverErr})
	if cmd != nil {
		t.Error("Expected no toast on cancel failure")
	}
	if model.cancelErr != "cannot cancel at this stage" {
		t.Errorf("Expected inline error message, got '%s'", model.cancelErr)
	}
	if !model.cancelMode {
		t.Error("Expected cancel mode to stay open after failure")
	}
	if model.order.OrderStatus != models.OrderStatusReceived {
		t.Errorf("Expected order status untouched, got '%s'", model.order.OrderStatus)
	}
}

func TestTracking_CancelSuccess(t *testing.T) {
	initTestLogger(t)

	model := NewTracking(Deps{Config: config.DefaultConfig()}, "order-1")
	order := &models.Order{ID: "order-1", OrderType: models.OrderTypeDelivery, OrderStatus: models.OrderStatusReceived}
	model, _ = model.Update(trackSnapshotMsg{snapshot: tracking.Snapshot{Order: order}})

	model, _ = model.Update(keyMsg("c"))

	cancelled := &models.Order{
		ID:                 "order-1",
		OrderType:          models.OrderTypeDelivery,
		OrderStatus:        models.OrderStatusCancelled,
		CancellationReason: "changed my mind",
	}
	model, cmd := model.Update(cancelResultMsg{order: cancelled})
	if model.cancelMode {
		t.Error("Expected cancel mode to close on success")
	}
	if model.order.OrderStatus != models.OrderStatusCancelled {
		t.Errorf("Expected cancelled order, got status '%s'", model.order.OrderStatus)
	}
	if cmd == nil {
		t.Fatal("Expected toast command")
	}
	toast, ok := cmd().(showToastMsg)
	if !ok {
		t.Fatal("Expected showToastMsg")
	}
	if toast.text != "Order cancelled" {
		t.Errorf("Expected toast 'Order cancelled', got '%s'", toast.text)
	}
}

func TestTracking_SnapshotErrorKeepsListening(t *testing.T) {
	initTestLogger(t)

	model := NewTracking(Deps{Config: config.DefaultConfig()}, "order-1")
	model, cmd := model.Update(trackSnapshotMsg{snapshot: tracking.Snapshot{Err: client.ErrServiceUnavailable}})

	if model.err == nil {
		t.Error("Expected fetch error to surface")
	}
	if cmd == nil {
		t.Error("Expected model to keep waiting for snapshots")
	}
}
