package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/viewstate"
)

// debounceDelay - пауза тишины ввода перед запросом поиска
const debounceDelay = 300 * time.Millisecond

type (
	// searchDebounceMsg - сработал таймер тишины; seq отсеивает таймеры,
	// обесцененные последующими нажатиями
	searchDebounceMsg struct {
		seq int
	}

	// suggestionsMsg - подсказки для текущего префикса
	suggestionsMsg struct {
		seq         int
		suggestions []models.Suggestion
		err         error
	}

	// recentQueriesMsg - недавние запросы пользователя
	recentQueriesMsg struct {
		queries []models.RecentQuery
	}

	// searchResultsMsg - страница результатов; key защищает от устаревших
	// ответов перекрывающихся запросов
	searchResultsMsg struct {
		key  string
		page *models.RestaurantsPage
		err  error
	}
)

// SearchModel - поиск ресторанов: ввод с дебаунсом, подсказки,
// фильтры с кодированием в строку запроса, пагинация
type SearchModel struct {
	deps Deps

	input textinput.Model
	seq   int // поколение дебаунса

	query   viewstate.Query
	loading bool
	err     error

	suggestions []models.Suggestion
	recent      []models.RecentQuery
	results     *models.RestaurantsPage
	cursor      int
}

func NewSearch(deps Deps) SearchModel {
	input := textinput.New()
	input.Placeholder = "Search restaurants, cuisines, dishes..."
	input.Prompt = "🔍 "
	input.CharLimit = 80
	input.Focus()
	return SearchModel{
		deps:  deps,
		input: input,
		query: viewstate.Query{Sort: viewstate.SortRecommended, Page: 1},
	}
}

func (m SearchModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadRecent())
}

// capturesText - поле ввода забирает клавиатуру, пока в фокусе
func (m SearchModel) capturesText() bool {
	return m.input.Focused()
}

// loadRecent - недавние запросы для пустого поля
func (m SearchModel) loadRecent() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		queries, err := deps.Catalog.GetRecentQueries(ctx)
		if err != nil {
			// не критично, просто не показываем блок
			return recentQueriesMsg{}
		}
		return recentQueriesMsg{queries: queries}
	}
}

// debounce - перезапуск таймера тишины после изменения значения
func (m *SearchModel) debounce() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// fetchSuggestions - подсказки для набранного префикса
func (m SearchModel) fetchSuggestions(prefix string) tea.Cmd {
	deps := m.deps
	seq := m.seq
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		suggestions, err := deps.Catalog.GetSuggestions(ctx, prefix)
		return suggestionsMsg{seq: seq, suggestions: suggestions, err: err}
	}
}

// fetchResults - страница результатов для текущего состояния фильтров
func (m SearchModel) fetchResults(force bool) tea.Cmd {
	deps := m.deps
	query := m.query
	key := query.Encode().Encode()
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		page, err := deps.Catalog.GetRestaurants(ctx, query.Encode(), force)
		return searchResultsMsg{key: key, page: page, err: err}
	}
}

func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		// устаревший таймер: значение менялось после его взвода
		if msg.seq != m.seq {
			return m, nil
		}
		m.query.Search = strings.TrimSpace(m.input.Value())
		m.query.Page = 1
		if m.query.Search == "" {
			m.suggestions = nil
			m.results = nil
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, tea.Batch(m.fetchSuggestions(m.query.Search), m.fetchResults(false))

	case suggestionsMsg:
		if msg.seq != m.seq || msg.err != nil {
			return m, nil
		}
		m.suggestions = msg.suggestions
		return m, nil

	case recentQueriesMsg:
		m.recent = msg.queries
		return m, nil

	case searchResultsMsg:
		// в кэше побеждает последний разрешившийся ответ; представление
		// принимает только страницу текущего состояния фильтров
		if msg.key != m.query.Encode().Encode() {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.results = msg.page
		if m.cursor >= len(msg.page.Restaurants) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.Type {
			case tea.KeyEsc:
				m.input.Blur()
				return m, nil
			case tea.KeyEnter:
				m.input.Blur()
				return m, nil
			}
			before := m.input.Value()
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			if m.input.Value() != before {
				return m, tea.Batch(cmd, m.debounce())
			}
			return m, cmd
		}

		switch msg.String() {
		case "/", "i":
			m.input.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.results != nil && m.cursor < len(m.results.Restaurants)-1 {
				m.cursor++
			}
		case "f":
			if m.results != nil && m.cursor < len(m.results.Restaurants) {
				return m, toggleFavorite(m.deps, m.results.Restaurants[m.cursor].ID)
			}
		case "o":
			m.query.OpenNow = !m.query.OpenNow
			return m, m.refresh()
		case "P":
			m.query.HasPromotion = !m.query.HasPromotion
			return m, m.refresh()
		case "+":
			if m.query.MinRating < 4.5 {
				m.query.MinRating += 0.5
			}
			return m, m.refresh()
		case "-":
			if m.query.MinRating > 0 {
				m.query.MinRating -= 0.5
			}
			return m, m.refresh()
		case "s":
			m.query.Sort = nextSort(m.query.Sort)
			return m, m.refresh()
		case "n":
			if m.results != nil && m.query.Page*pageSize < m.results.Total {
				m.query.Page++
				return m, m.refreshKeepPage()
			}
		case "p":
			if m.query.Page > 1 {
				m.query.Page--
				return m, m.refreshKeepPage()
			}
		case "r":
			if m.err != nil {
				m.loading = true
				m.err = nil
				return m, m.fetchResults(true)
			}
		}

	case favoriteToggledMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return showToastMsg{text: "Could not update favorites: " + msg.err.Error(), isErr: true}
			}
		}
		return m, nil
	}

	return m, nil
}

// pageSize - размер страницы результатов, задаётся сервером
const pageSize = 20

// refresh - смена фильтра сбрасывает страницу и перезапрашивает результаты
func (m *SearchModel) refresh() tea.Cmd {
	m.query.Page = 1
	if m.query.Search == "" && m.query.ActiveFilterCount() == 0 {
		m.results = nil
		return nil
	}
	m.loading = true
	return m.fetchResults(false)
}

// refreshKeepPage - перезапрос без сброса страницы (пагинация)
func (m *SearchModel) refreshKeepPage() tea.Cmd {
	m.loading = true
	return m.fetchResults(false)
}

// nextSort - циклический перебор вариантов сортировки
func nextSort(current string) string {
	order := []string{
		viewstate.SortRecommended,
		viewstate.SortRating,
		viewstate.SortDeliveryFee,
		viewstate.SortDistance,
	}
	for i, sort := range order {
		if sort == current {
			return order[(i+1)%len(order)]
		}
	}
	return viewstate.SortRecommended
}

func (m SearchModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// строка состояния фильтров с количеством действующих
	filters := fmt.Sprintf("sort: %s", m.query.Sort)
	if count := m.query.ActiveFilterCount(); count > 0 {
		filters += fmt.Sprintf(" · filters: %d", count)
	}
	if encoded := m.query.Encode().Encode(); encoded != "" {
		filters += subtleStyle.Render("  ?" + encoded)
	}
	b.WriteString(subtleStyle.Render(filters))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("Search is unavailable right now.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nr: try again"))
		return b.String()
	}

	if m.input.Value() == "" && m.results == nil {
		if len(m.recent) > 0 {
			b.WriteString(titleStyle.Render("Recent Searches"))
			b.WriteString("\n")
			for _, recent := range m.recent {
				b.WriteString(listItemStyle.Render(recent.Query) + "\n")
			}
		} else {
			b.WriteString(subtleStyle.Render("Start typing to search."))
		}
		return b.String()
	}

	if len(m.suggestions) > 0 && m.input.Focused() {
		b.WriteString(titleStyle.Render("Suggestions"))
		b.WriteString("\n")
		for _, suggestion := range m.suggestions {
			b.WriteString(listItemStyle.Render(suggestion.Text+subtleStyle.Render(" · "+suggestion.Kind)) + "\n")
		}
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(subtleStyle.Render("Searching..."))
		return b.String()
	}

	if m.results != nil {
		if len(m.results.Restaurants) == 0 {
			// пустой результат - не ошибка, отдельное состояние с призывом
			b.WriteString("No places match your search.\n")
			b.WriteString(subtleStyle.Render("Try fewer filters or a different cuisine."))
			return b.String()
		}
		for i, restaurant := range m.results.Restaurants {
			b.WriteString(renderRestaurantRow(m.deps, restaurant, i == m.cursor))
		}
		b.WriteString(subtleStyle.Render(fmt.Sprintf("\npage %d · %d places", m.query.Page, m.results.Total)))
	}

	b.WriteString(helpStyle.Render("\n/: edit query • f: favorite • o: open now • +/-: rating • s: sort • n/p: page"))
	return b.String()
}
