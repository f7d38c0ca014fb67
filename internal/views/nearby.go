package views

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
)

// nearbyLoadedMsg - результат загрузки ближайших ресторанов
type nearbyLoadedMsg struct {
	radius int
	page   *models.RestaurantsPage
	err    error
}

// NearbyModel - ближайшие рестораны: список по расстоянию,
// радиус поиска меняется клавишами (картографию рисует сервер)
type NearbyModel struct {
	deps Deps

	radiusKm int
	loading  bool
	loaded   bool
	err      error

	page   *models.RestaurantsPage
	cursor int
}

func NewNearby(deps Deps) NearbyModel {
	return NearbyModel{deps: deps, radiusKm: 3}
}

func (m NearbyModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.load()
}

// load - список ресторанов в радиусе, сортировка по расстоянию
func (m NearbyModel) load() tea.Cmd {
	deps := m.deps
	radius := m.radiusKm
	return func() tea.Msg {
		query := url.Values{}
		query.Set("sort", "distance")
		query.Set("radius_km", strconv.Itoa(radius))
		ctx, cancel := deps.requestContext()
		defer cancel()
		page, err := deps.Catalog.GetRestaurants(ctx, query, false)
		return nearbyLoadedMsg{radius: radius, page: page, err: err}
	}
}

func (m NearbyModel) Update(msg tea.Msg) (NearbyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case nearbyLoadedMsg:
		// ответ для уже изменённого радиуса отбрасывается
		if msg.radius != m.radiusKm {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.err = nil
		m.page = msg.page
		if m.page != nil && m.cursor >= len(m.page.Restaurants) {
			m.cursor = 0
		}
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
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
			if m.page != nil && m.cursor < len(m.page.Restaurants)-1 {
				m.cursor++
			}
		case "f":
			if m.page != nil && m.cursor < len(m.page.Restaurants) {
				return m, toggleFavorite(m.deps, m.page.Restaurants[m.cursor].ID)
			}
		case "+":
			if m.radiusKm < 10 {
				m.radiusKm++
				m.loading = true
				return m, m.load()
			}
		case "-":
			if m.radiusKm > 1 {
				m.radiusKm--
				m.loading = true
				return m, m.load()
			}
		case "r":
			if m.err != nil {
				m.loading = true
				m.err = nil
				return m, m.load()
			}
		}
	}
	return m, nil
}

func (m NearbyModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Nearby · within %d km", m.radiusKm)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("Could not load nearby places.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nr: try again"))
		return b.String()
	}
	if m.loading || m.page == nil {
		b.WriteString(subtleStyle.Render("Finding places around you..."))
		return b.String()
	}
	if len(m.page.Restaurants) == 0 {
		b.WriteString("Nothing open within this radius.\n")
		b.WriteString(subtleStyle.Render("Widen the search with +."))
		return b.String()
	}

	for i, restaurant := range m.page.Restaurants {
		heart := " "
		if m.deps.Session.IsFavorite(restaurant.ID) {
			heart = "♥"
		}
		row := fmt.Sprintf("%s %s  %.1f km · %.1f★ · %s",
			heart, restaurant.Name, restaurant.DistanceKm, restaurant.Rating, restaurant.Cuisine)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("") + row + "\n")
		} else {
			b.WriteString(listItemStyle.Render(row) + "\n")
		}
	}
	b.WriteString(helpStyle.Render("\nf: favorite • +/-: radius"))
	return b.String()
}
