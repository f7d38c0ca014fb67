package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/logger"
)

// Tab - вкладка панели навигации
type Tab int

const (
	TabFeed Tab = iota
	TabSearch
	TabNearby
	TabFavorites
	TabOrders
	TabProfile
)

var tabTitles = []string{"Feed", "Search", "Nearby", "Favorites", "Orders", "Profile"}

// Shell - корневая модель приложения: панель навигации, экран входа,
// вкладки и наложенное поверх истории отслеживание заказа
type Shell struct {
	deps Deps

	width  int
	height int

	auth   AuthModel
	authed bool

	tab       Tab
	feed      FeedModel
	search    SearchModel
	nearby    NearbyModel
	favorites FavoritesModel
	orders    OrdersModel
	profile   ProfileModel

	// отслеживание заказа открывается поверх вкладки Orders
	tracking *TrackingModel

	toast  Toast
	unread int
}

// NewShell - создание корневой модели
func NewShell(deps Deps) Shell {
	return Shell{
		deps:      deps,
		auth:      NewAuth(deps),
		feed:      NewFeed(deps),
		search:    NewSearch(deps),
		nearby:    NewNearby(deps),
		favorites: NewFavorites(deps),
		orders:    NewOrders(deps),
		profile:   NewProfile(deps),
	}
}

func (m Shell) Init() tea.Cmd {
	if !m.deps.Session.Authenticated() {
		return m.auth.Init()
	}
	m.authed = true
	return tea.Batch(m.feed.Init(), m.fetchUnread())
}

// fetchUnread - счётчик непрочитанных уведомлений для панели навигации
func (m Shell) fetchUnread() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		notifications, err := deps.Profile.GetNotifications(ctx, false)
		if err != nil {
			// бейдж не критичен, ошибку не показываем
			logger.Warn("Failed to fetch unread count", err)
			return unreadCountMsg{count: 0}
		}
		return unreadCountMsg{count: deps.Profile.UnreadCount(notifications)}
	}
}

func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if m.tracking != nil {
				m.tracking.Close()
			}
			return m, tea.Quit
		}

	case showToastMsg:
		return m, m.toast.Show(msg.text, msg.isErr)

	case toastExpiredMsg:
		m.toast.Update(msg)
		return m, nil

	case unreadCountMsg:
		m.unread = msg.count
		return m, nil

	case authDoneMsg:
		m.authed = true
		m.tab = TabFeed
		return m, tea.Batch(m.feed.Init(), m.fetchUnread())

	case logoutDoneMsg:
		if m.tracking != nil {
			m.tracking.Close()
			m.tracking = nil
		}
		m.authed = false
		m.auth = NewAuth(m.deps)
		return m, m.auth.Init()

	case openTrackingMsg:
		tracking := NewTracking(m.deps, msg.orderID)
		m.tracking = &tracking
		return m, m.tracking.Init()

	case closeTrackingMsg:
		if m.tracking != nil {
			m.tracking.Close()
			m.tracking = nil
		}
		return m, nil
	}

	if !m.authed {
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(msg)
		return m, cmd
	}

	// глобальное переключение вкладок, когда ввод не захвачен полем
	if key, ok := msg.(tea.KeyMsg); ok && m.tracking == nil && !m.capturesText() {
		switch key.String() {
		case "tab":
			m.tab = (m.tab + 1) % Tab(len(tabTitles))
			return m, m.initTab()
		case "shift+tab":
			m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
			return m, m.initTab()
		case "q":
			return m, tea.Quit
		}
	}

	if m.tracking != nil {
		var cmd tea.Cmd
		*m.tracking, cmd = m.tracking.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.tab {
	case TabFeed:
		m.feed, cmd = m.feed.Update(msg)
	case TabSearch:
		m.search, cmd = m.search.Update(msg)
	case TabNearby:
		m.nearby, cmd = m.nearby.Update(msg)
	case TabFavorites:
		m.favorites, cmd = m.favorites.Update(msg)
	case TabOrders:
		m.orders, cmd = m.orders.Update(msg)
	case TabProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

// capturesText - активная вкладка сейчас принимает текстовый ввод
func (m Shell) capturesText() bool {
	switch m.tab {
	case TabSearch:
		return m.search.capturesText()
	case TabProfile:
		return false
	}
	return false
}

// initTab - первичная загрузка данных вкладки при переходе на неё
func (m Shell) initTab() tea.Cmd {
	switch m.tab {
	case TabFeed:
		return m.feed.Init()
	case TabSearch:
		return m.search.Init()
	case TabNearby:
		return m.nearby.Init()
	case TabFavorites:
		return m.favorites.Init()
	case TabOrders:
		return m.orders.Init()
	case TabProfile:
		return m.profile.Init()
	}
	return nil
}

func (m Shell) View() string {
	if !m.authed {
		return m.auth.View()
	}

	var b strings.Builder
	b.WriteString(m.navView())
	b.WriteString("\n\n")

	if m.tracking != nil {
		b.WriteString(m.tracking.View())
	} else {
		switch m.tab {
		case TabFeed:
			b.WriteString(m.feed.View())
		case TabSearch:
			b.WriteString(m.search.View())
		case TabNearby:
			b.WriteString(m.nearby.View())
		case TabFavorites:
			b.WriteString(m.favorites.View())
		case TabOrders:
			b.WriteString(m.orders.View())
		case TabProfile:
			b.WriteString(m.profile.View())
		}
	}

	if toast := m.toast.View(); toast != "" {
		b.WriteString("\n")
		b.WriteString(toast)
	}
	b.WriteString(helpStyle.Render("\ntab: switch view • q: quit"))
	return b.String()
}

// navView - панель навигации с бейджем непрочитанных уведомлений
func (m Shell) navView() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		label := title
		if Tab(i) == TabProfile && m.unread > 0 {
			label = fmt.Sprintf("%s (%d)", title, m.unread)
		}
		if Tab(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return titleStyle.Render("Local Eats") + "  " + strings.Join(tabs, " ")
}
