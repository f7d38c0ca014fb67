package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
)

// profileLoadedMsg - профиль со всеми подресурсами
type profileLoadedMsg struct {
	user          *models.User
	statistics    *models.UserStatistics
	badges        []models.Badge
	reviews       []models.Review
	notifications []models.Notification
	err           error
}

// ProfileModel - профиль: статистика, достижения, отзывы, уведомления
type ProfileModel struct {
	deps Deps

	loading bool
	loaded  bool
	err     error

	user          *models.User
	statistics    *models.UserStatistics
	badges        []models.Badge
	reviews       []models.Review
	notifications []models.Notification
}

func NewProfile(deps Deps) ProfileModel {
	return ProfileModel{deps: deps}
}

func (m ProfileModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.load()
}

// load - профиль и подресурсы одним заходом
func (m ProfileModel) load() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()

		user, err := deps.Profile.GetMe(ctx, false)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		statistics, err := deps.Profile.GetStatistics(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		badges, err := deps.Profile.GetBadges(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		reviews, err := deps.Profile.GetReviews(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		notifications, err := deps.Profile.GetNotifications(ctx, false)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{
			user:          user,
			statistics:    statistics,
			badges:        badges,
			reviews:       reviews,
			notifications: notifications,
		}
	}
}

// logout - выход: запрос к серверу по возможности, локальный сброс всегда
func (m ProfileModel) logout() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := deps.requestContext()
		defer cancel()
		deps.Identity.Logout(ctx)
		return logoutDoneMsg{}
	}
}

func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.err = nil
		m.user = msg.user
		m.statistics = msg.statistics
		m.badges = msg.badges
		m.reviews = msg.reviews
		m.notifications = msg.notifications
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "L":
			return m, m.logout()
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

func (m ProfileModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Profile"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorBannerStyle.Render("Could not load your profile.\n" + subtleStyle.Render(m.err.Error())))
		b.WriteString(helpStyle.Render("\nr: try again"))
		return b.String()
	}
	if m.loading || !m.loaded {
		b.WriteString(subtleStyle.Render("Loading profile..."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s  %s\n", m.user.Name, subtleStyle.Render(m.user.Email)))
	if m.statistics != nil {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%d orders · %d restaurants · loves %s",
			m.statistics.TotalOrders, m.statistics.RestaurantsVisited, m.statistics.FavoriteCuisine)))
		b.WriteString("\n")
	}

	if len(m.badges) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Badges"))
		b.WriteString("\n")
		for _, badge := range m.badges {
			mark := subtleStyle.Render("○")
			if badge.Earned {
				mark = okStyle.Render("●")
			}
			b.WriteString(listItemStyle.Render(mark+" "+badge.Name) + "\n")
		}
	}

	if len(m.reviews) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Your Reviews"))
		b.WriteString("\n")
		for _, review := range m.reviews {
			b.WriteString(listItemStyle.Render(fmt.Sprintf("%s · %d★ · %s",
				review.RestaurantName, review.Rating, review.Text)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Notifications"))
	b.WriteString("\n")
	if len(m.notifications) == 0 {
		b.WriteString(subtleStyle.Render("  All caught up."))
		b.WriteString("\n")
	}
	for _, notification := range m.notifications {
		mark := " "
		if !notification.Read {
			mark = "•"
		}
		b.WriteString(listItemStyle.Render(fmt.Sprintf("%s %s — %s",
			mark, notification.Title, subtleStyle.Render(notification.Body))) + "\n")
	}

	b.WriteString(helpStyle.Render("\nL: log out"))
	return b.String()
}
