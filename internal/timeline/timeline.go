package timeline

import (
	"time"

	"github.com/localeats/localeats-cli/internal/models"
)

// Состояния узла временной шкалы заказа
const (
	StateCompleted = "completed"
	StateActive    = "active"
	StateFuture    = "future"
)

// Этапы шкалы (этап "picked_up" существует только на шкале,
// сервер для него присылает статус delivered)
const (
	StageReceived       = "order_received"
	StagePreparing      = "preparing"
	StageReady          = "ready"
	StageOutForDelivery = "out_for_delivery"
	StageDelivered      = "delivered"
	StagePickedUp       = "picked_up"
)

// StatusNode - отображаемый узел шкалы статусов заказа
type StatusNode struct {
	Stage     string
	Label     string
	Icon      string
	Timestamp *time.Time
	State     string
}

// stageIndex - позиция статуса заказа на шкале его типа.
// Статус вне последовательности (ready у доставки, cancelled) даёт -1:
// активного узла нет, завершённость определяется только метками времени.
func stageIndex(order *models.Order) int {
	sequence := []string{
		models.OrderStatusReceived,
		models.OrderStatusPreparing,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
	}
	if order.OrderType == models.OrderTypePickup {
		sequence = []string{
			models.OrderStatusReceived,
			models.OrderStatusPreparing,
			models.OrderStatusReady,
			models.OrderStatusDelivered,
		}
	}
	for i, status := range sequence {
		if order.OrderStatus == status {
			return i
		}
	}
	return -1
}

// Build - строит шкалу из ровно четырёх узлов по данным заказа.
// Чистая функция: одинаковый заказ всегда даёт одинаковую шкалу,
// все метки времени могут отсутствовать (заказ только что создан).
func Build(order *models.Order) []StatusNode {
	nodes := []StatusNode{
		{Stage: StageReceived, Label: "Order Placed", Icon: "🧾", Timestamp: order.PlacedAt},
		{Stage: StagePreparing, Label: "Preparing", Icon: "🍳", Timestamp: order.PreparingAt},
	}

	if order.OrderType == models.OrderTypePickup {
		// для самовывоза метка "Picked Up" берётся из delivered_at,
		// при его отсутствии подставляется ready_at, чтобы конечный
		// узел не остался пустым
		pickedUpAt := order.DeliveredAt
		if pickedUpAt == nil {
			pickedUpAt = order.ReadyAt
		}
		nodes = append(nodes,
			StatusNode{Stage: StageReady, Label: "Ready for Pickup", Icon: "🛍️", Timestamp: order.ReadyAt},
			StatusNode{Stage: StagePickedUp, Label: "Picked Up", Icon: "✅", Timestamp: pickedUpAt},
		)
	} else {
		nodes = append(nodes,
			StatusNode{Stage: StageOutForDelivery, Label: "Out for Delivery", Icon: "🛵", Timestamp: order.OutForDeliveryAt},
			StatusNode{Stage: StageDelivered, Label: "Delivered", Icon: "✅", Timestamp: order.DeliveredAt},
		)
	}

	current := stageIndex(order)
	for i := range nodes {
		switch {
		case i == current:
			nodes[i].State = StateActive
		case i < current || nodes[i].Timestamp != nil:
			nodes[i].State = StateCompleted
		default:
			nodes[i].State = StateFuture
		}
	}
	return nodes
}
