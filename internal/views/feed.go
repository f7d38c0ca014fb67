package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
)

// promoBannerFlag - флаг сессии "баннер акции скрыт"
const promoBannerFlag = "promo_banner_dismissed"

// feedLoadedMsg - результат загрузки главной страницы
type feedLoadedMsg struct {
	picks []models.WeeklyPick
	recs  []models.Restaurant
	err   error
}

// favoriteToggledMsg - результат переключения избранного
type favoriteToggledMsg struct {
	restaurantID string
	favorite     bool
	err          error
}

// FeedModel - главная страница: подборки недели и рекомендации
type FeedModel struct {
	deps Deps

	loading bool
	loaded  bool
	err     error
	spin    spinner.Model

	picks  []models.WeeklyPick
	recs   []models.Restaurant
	cursor int
}

func NewFeed(deps Deps) FeedModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return FeedModel{deps: deps, spin: s, loading: true}
}

func (m FeedModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.load())
}

// load - загрузка подборок недели и рекомендаций
func (m FeedModel) load() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		picks, err := deps.Catalog.GetWeeklyPicks(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		recs, err := deps.Catalog.GetRecommendations(ctx)
		if err != nil {
			return feedLoadedMsg{err: err}
		}
		return feedLoadedMsg{picks: picks, recs: recs}
	}
}

// toggleFavorite - команда оптимистичного переключения избранного:
// сессия уже изменена сервисом, сообщение несёт итог или откат
func toggleFavorite(deps Deps, restaurantID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		favorite, err := deps.Favorites.Toggle(ctx, restaurantID)
		return favoriteToggledMsg{restaurantID: restaurantID, favorite: favorite, err: err}
	}
}

func (m FeedModel) Update(msg tea.Msg) (FeedModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case feedLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.err = nil
		m.picks = msg.picks
		m.recs = msg.recs
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			// сервис уже откатил сессию, остаётся показать ошибку
			return m, func() tea.Msg {
				return showToastMsg{text: "Could not update favorites: " + msg.err.Error(), isErr: true}
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.recs)-1 {
				m.cursor++
			}
		case "f":
			if m.cursor < len(m.recs) {
				return m, toggleFavorite(m.deps, m.recs[m.cursor].ID)
			}
		case "d":
			m.deps.Session.SetFlag(promoBannerFlag, true)
		case "r":
			if m.err != nil {
				m.loading = true
				m.err = nil
				return m, tea.Batch(m.spin.Tick, m.load())
			}
		}
	}
	return m, nil
}

func (m FeedModel) View() string {
	if m.err != nil {
		return errorBannerStyle.Render("Could not load your feed.\n"+subtleStyle.Render(m.err.Error())) +
			helpStyle.Render("\nr: try again")
	}
	if m.loading || !m.loaded {
		return m.spin.View() + " Loading your feed..."
	}

	var b strings.Builder
	if !m.deps.Session.Flag(promoBannerFlag) {
		b.WriteString(bannerStyle.Render("🎉 Free delivery on your first three orders!  (d: dismiss)"))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Weekly Picks"))
	b.WriteString("\n")
	if len(m.picks) == 0 {
		b.WriteString(subtleStyle.Render("  Nothing picked this week yet.\n"))
	}
	for _, pick := range m.picks {
		b.WriteString(fmt.Sprintf("  %s — %s\n", pick.Restaurant.Name, subtleStyle.Render(pick.Headline)))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recommended for You"))
	b.WriteString("\n")
	if len(m.recs) == 0 {
		b.WriteString(subtleStyle.Render("  Order a few times and we'll learn your taste."))
	}
	for i, restaurant := range m.recs {
		b.WriteString(renderRestaurantRow(m.deps, restaurant, i == m.cursor))
	}
	b.WriteString(helpStyle.Render("\nf: toggle favorite"))
	return b.String()
}

// renderRestaurantRow - строка списка ресторанов с отметкой избранного
func renderRestaurantRow(deps Deps, restaurant models.Restaurant, selected bool) string {
	heart := " "
	if deps.Session.IsFavorite(restaurant.ID) {
		heart = "♥"
	}
	status := ""
	if !restaurant.IsOpen {
		status = subtleStyle.Render(" (closed)")
	}
	row := fmt.Sprintf("%s %s  %.1f★ · %s · %s%s",
		heart, restaurant.Name, restaurant.Rating, restaurant.Cuisine, restaurant.DeliveryETA, status)
	if selected {
		return selectedItemStyle.Render("") + row + "\n"
	}
	return listItemStyle.Render(row) + "\n"
}
