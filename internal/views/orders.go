package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
)

type (
	// ordersLoadedMsg - страница истории заказов
	ordersLoadedMsg struct {
		page *models.OrdersPage
		err  error
	}

	// reorderDoneMsg - результат повтора заказа
	reorderDoneMsg struct {
		err error
	}
)

// OrdersModel - история заказов, вход в отслеживание и повтор заказа
type OrdersModel struct {
	deps Deps

	pageNum int
	loading bool
	loaded  bool
	err     error

	page   *models.OrdersPage
	cursor int
}

func NewOrders(deps Deps) OrdersModel {
	return OrdersModel{deps: deps, pageNum: 1}
}

func (m OrdersModel) Init() tea.Cmd {
	// история перечитывается при входе: статусы меняются на сервере
	return m.load(true)
}

func (m OrdersModel) load(force bool) tea.Cmd {
	deps := m.deps
	pageNum := m.pageNum
	return func() tea.Msg {
		query := url.Values{}
		if pageNum > 1 {
			query.Set("page", strconv.Itoa(pageNum))
		}
		ctx, cancel := deps.requestContext()
		defer cancel()
		page, err := deps.Orders.GetOrders(ctx, query, force)
		return ordersLoadedMsg{page: page, err: err}
	}
}

// reorder - позиции прошлого заказа добавляются в корзину
func (m OrdersModel) reorder(orderID string) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		return reorderDoneMsg{err: deps.Orders.Reorder(ctx, orderID)}
	}
}

func (m OrdersModel) Update(msg tea.Msg) (OrdersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.err = nil
		m.page = msg.page
		if m.cursor >= len(msg.page.Orders) {
			m.cursor = 0
		}
		return m, nil

	case reorderDoneMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return showToastMsg{text: "Reorder failed: " + msg.err.Error(), isErr: true}
			}
		}
		total := m.deps.Session.CartTotal()
		return m, func() tea.Msg {
			return showToastMsg{text: fmt.Sprintf("Items added to your cart · $%s", total.StringFixed(2))}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.page != nil && m.cursor < len(m.page.Orders)-1 {
				m.cursor++
			}
		case "enter":
			if m.page != nil && m.cursor < len(m.page.Orders) {
				orderID := m.page.Orders[m.cursor].ID
				return m, func() tea.Msg { return openTrackingMsg{orderID: orderID} }
			}
		case "R":
			if m.page != nil && m.cursor < len(m.page.Orders) {
				return m, m.reorder(m.page.Orders[m.cursor].ID)
			}
		case "n":
			if m.page != nil && m.pageNum*pageSize < m.page.Total {
				m.pageNum++
				m.loading = true
				return m, m.load(false)
			}
		case "p":
			if m.pageNum > 1 {
				m.pageNum--
				m.loading = true
				return m, m.load(false)
			}
		case "r":
			if m.err != nil {
				m.loading = true
				m.err = nil
				return m, m.load(true)
			}
		}
	}
	return m, nil
}

func (m OrdersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Order History"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("Could not load your orders.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nr: try again"))
		return b.String()
	}
	if m.loading || !m.loaded {
		b.WriteString(subtleStyle.Render("Loading orders..."))
		return b.String()
	}
	if m.page == nil || len(m.page.Orders) == 0 {
		b.WriteString("No orders yet.\n")
		b.WriteString(subtleStyle.Render("Hungry? Find something on the Feed tab."))
		return b.String()
	}

	for i, order := range m.page.Orders {
		name := order.RestaurantID
		if order.Restaurant != nil {
			name = order.Restaurant.Name
		}
		status := order.OrderStatus
		if order.OrderStatus == models.OrderStatusCancelled {
			status = errorStyle.Render(status)
		} else if order.OrderStatus == models.OrderStatusDelivered {
			status = okStyle.Render(status)
		}
		row := fmt.Sprintf("%s · %s · $%s", name, status, order.Total.StringFixed(2))
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("") + row + "\n")
		} else {
			b.WriteString(listItemStyle.Render(row) + "\n")
		}
	}
	b.WriteString(subtleStyle.Render(fmt.Sprintf("\npage %d · %d orders", m.pageNum, m.page.Total)))
	b.WriteString(helpStyle.Render("\nenter: track • R: reorder • n/p: page"))
	return b.String()
}
