package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/timeline"
	"github.com/localeats/localeats-cli/internal/tracking"
)

type (
	// trackSnapshotMsg - очередной снимок заказа от контроллера опроса
	trackSnapshotMsg struct {
		snapshot tracking.Snapshot
	}

	// cancelResultMsg - результат запроса отмены заказа
	cancelResultMsg struct {
		order *models.Order
		err   error
	}
)

// TrackingModel - отслеживание заказа: шкала статусов, опрос в фоне,
// отмена с необязательной причиной
type TrackingModel struct {
	deps    Deps
	orderID string
	poller  *tracking.Poller

	loading bool
	err     error
	order   *models.Order

	// режим отмены заказа
	cancelMode  bool
	cancelling  bool
	cancelErr   string
	reasonInput textinput.Model
}

// NewTracking - создание представления, контроллер опроса ещё не запущен
func NewTracking(deps Deps, orderID string) TrackingModel {
	input := textinput.New()
	input.Placeholder = "Reason (optional)"
	input.CharLimit = 120
	return TrackingModel{
		deps:        deps,
		orderID:     orderID,
		poller:      tracking.NewPoller(deps.API, orderID, deps.Config.API.PollInterval),
		loading:     true,
		reasonInput: input,
	}
}

func (m *TrackingModel) Init() tea.Cmd {
	m.poller.Start(context.Background())
	return m.waitForSnapshot()
}

// Close - остановка контроллера опроса; обязательна при уходе
// с представления, иначе таймер останется взведённым
func (m *TrackingModel) Close() {
	m.poller.Stop()
}

// waitForSnapshot - команда ожидания следующего снимка заказа
func (m *TrackingModel) waitForSnapshot() tea.Cmd {
	poller := m.poller
	return func() tea.Msg {
		snapshot, ok := <-poller.Updates()
		if !ok {
			return nil
		}
		return trackSnapshotMsg{snapshot: snapshot}
	}
}

// submitCancel - запрос отмены заказа с набранной причиной
func (m *TrackingModel) submitCancel() tea.Cmd {
	deps := m.deps
	orderID := m.orderID
	reason := strings.TrimSpace(m.reasonInput.Value())
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		order, err := deps.Orders.CancelOrder(ctx, orderID, reason)
		return cancelResultMsg{order: order, err: err}
	}
}

func (m TrackingModel) Update(msg tea.Msg) (TrackingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case trackSnapshotMsg:
		m.loading = false
		if msg.snapshot.Err != nil {
			m.err = msg.snapshot.Err
		} else {
			m.err = nil
			m.order = msg.snapshot.Order
		}
		// продолжаем слушать канал независимо от содержимого снимка
		return m, m.waitForSnapshot()

	case cancelResultMsg:
		m.cancelling = false
		if msg.err != nil {
			// бизнес-отказ сервера показывается рядом с действием,
			// состояние заказа не трогаем
			m.cancelErr = msg.err.Error()
			return m, nil
		}
		m.cancelMode = false
		m.cancelErr = ""
		m.order = msg.order
		return m, func() tea.Msg {
			return showToastMsg{text: "Order cancelled"}
		}

	case tea.KeyMsg:
		if m.cancelMode {
			switch msg.Type {
			case tea.KeyEsc:
				m.cancelMode = false
				m.cancelErr = ""
				return m, nil
			case tea.KeyEnter:
				if !m.cancelling {
					m.cancelling = true
					return m, m.submitCancel()
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.reasonInput, cmd = m.reasonInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return closeTrackingMsg{} }
		case "t":
			if m.err != nil {
				m.loading = true
				m.err = nil
				m.poller.Refetch()
			}
			return m, nil
		case "c":
			// отмена доступна только пока заказ принят и не готовится
			if m.order != nil && m.order.Cancellable() {
				m.cancelMode = true
				m.cancelErr = ""
				m.reasonInput.SetValue("")
				m.reasonInput.Focus()
				return m, textinput.Blink
			}
			return m, nil
		}
	}
	return m, nil
}

func (m TrackingModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order Tracking"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("We can't reach the kitchen right now.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nt: try again • esc: back"))
		return b.String()
	}
	if m.loading || m.order == nil {
		b.WriteString(subtleStyle.Render("Loading order..."))
		return b.String()
	}

	if m.order.Restaurant != nil {
		b.WriteString(m.order.Restaurant.Name)
		b.WriteString("\n")
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("order %s · %s", m.order.ID, m.order.OrderType)))
	b.WriteString("\n\n")

	if m.order.OrderStatus == models.OrderStatusCancelled {
		b.WriteString(errorBannerStyle.Render(m.cancelledBanner()))
		b.WriteString("\n\n")
	}

	b.WriteString(m.timelineView())
	b.WriteString("\n")
	b.WriteString(m.itemsView())
	b.WriteString(m.totalsView())

	if m.cancelMode {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render("Cancel this order?\n" + m.reasonInput.View() + "\nenter: confirm • esc: keep order"))
		if m.cancelErr != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.cancelErr))
		}
	} else if m.order.Cancellable() {
		b.WriteString(helpStyle.Render("\nc: cancel order • esc: back"))
	} else {
		b.WriteString(helpStyle.Render("\nesc: back"))
	}
	return b.String()
}

// cancelledBanner - плашка отменённого заказа с причиной, если она была
func (m TrackingModel) cancelledBanner() string {
	if m.order.CancellationReason != "" {
		return "Order cancelled: " + m.order.CancellationReason
	}
	return "Order cancelled"
}

// timelineView - отрисовка четырёх узлов шкалы статусов
func (m TrackingModel) timelineView() string {
	var b strings.Builder
	for _, node := range timeline.Build(m.order) {
		marker := "○"
		style := nodeFutureStyle
		switch node.State {
		case timeline.StateCompleted:
			marker = "●"
			style = nodeCompletedStyle
		case timeline.StateActive:
			marker = "◉"
			style = nodeActiveStyle
		}
		line := fmt.Sprintf("%s %s %s", marker, node.Icon, node.Label)
		if node.Timestamp != nil {
			line += subtleStyle.Render("  " + node.Timestamp.Local().Format("15:04"))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// itemsView - позиции заказа
func (m TrackingModel) itemsView() string {
	if len(m.order.Items) == 0 {
		return ""
	}
	var b strings.Builder
	for _, item := range m.order.Items {
		b.WriteString(listItemStyle.Render(fmt.Sprintf("%d × %s  $%s",
			item.Quantity, item.Name, item.UnitPrice.StringFixed(2))))
		b.WriteString("\n")
	}
	return b.String()
}

// totalsView - денежная разбивка заказа
func (m TrackingModel) totalsView() string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render(fmt.Sprintf("subtotal $%s", m.order.Subtotal.StringFixed(2))))
	if !m.order.Discount.IsZero() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf(" · discount -$%s", m.order.Discount.StringFixed(2))))
	}
	if !m.order.DeliveryFee.IsZero() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf(" · delivery $%s", m.order.DeliveryFee.StringFixed(2))))
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf(" · tax $%s", m.order.Tax.StringFixed(2))))
	if !m.order.Tip.IsZero() {
		b.WriteString(subtleStyle.Render(fmt.Sprintf(" · tip $%s", m.order.Tip.StringFixed(2))))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("total $%s", m.order.Total.StringFixed(2)))
	b.WriteString("\n")
	return b.String()
}
