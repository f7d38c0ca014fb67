package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
)

// favoritesLoadedMsg - результат загрузки избранного
type favoritesLoadedMsg struct {
	favorites []models.Favorite
	err       error
}

// FavoritesModel - избранные рестораны с оптимистичным снятием отметки
type FavoritesModel struct {
	deps Deps

	loading bool
	loaded  bool
	err     error

	favorites []models.Favorite
	cursor    int
}

func NewFavorites(deps Deps) FavoritesModel {
	return FavoritesModel{deps: deps}
}

func (m FavoritesModel) Init() tea.Cmd {
	// список перечитывается при каждом входе: отметки могли
	// измениться из других представлений
	return m.load(false)
}

func (m FavoritesModel) load(force bool) tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		favorites, err := deps.Favorites.GetFavorites(ctx, force)
		return favoritesLoadedMsg{favorites: favorites, err: err}
	}
}

func (m FavoritesModel) Update(msg tea.Msg) (FavoritesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.err = nil
		m.favorites = msg.favorites
		if m.cursor >= len(m.favorites) {
			m.cursor = 0
		}
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			// сессия откатена сервисом; список возвращаем как был
			return m, tea.Batch(m.load(false), func() tea.Msg {
				return showToastMsg{text: "Could not update favorites: " + msg.err.Error(), isErr: true}
			})
		}
		return m, m.load(true)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.favorites)-1 {
				m.cursor++
			}
		case "f", "x":
			if m.cursor < len(m.favorites) {
				return m, toggleFavorite(m.deps, m.favorites[m.cursor].RestaurantID)
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

func (m FavoritesModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Favorites"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("Could not load favorites.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nr: try again"))
		return b.String()
	}
	if m.loading || !m.loaded {
		b.WriteString(subtleStyle.Render("Loading favorites..."))
		return b.String()
	}
	if len(m.favorites) == 0 {
		b.WriteString("No favorites yet.\n")
		b.WriteString(subtleStyle.Render("Press f on any restaurant to save it here."))
		return b.String()
	}

	for i, favorite := range m.favorites {
		b.WriteString(renderRestaurantRow(m.deps, favorite.Restaurant, i == m.cursor))
	}
	b.WriteString(helpStyle.Render("\nx: remove from favorites"))
	return b.String()
}
