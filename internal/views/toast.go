package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDismissDelay - время показа всплывающего уведомления
const toastDismissDelay = 3 * time.Second

// toastExpiredMsg - сигнал скрытия уведомления; seq отсеивает
// таймеры от уже заменённых уведомлений
type toastExpiredMsg struct {
	seq int
}

// Toast - всплывающее уведомление с автоскрытием
type Toast struct {
	text  string
	isErr bool
	seq   int
}

// Show - показать уведомление, прежний таймер обесценивается ростом seq
func (t *Toast) Show(text string, isErr bool) tea.Cmd {
	t.text = text
	t.isErr = isErr
	t.seq++
	seq := t.seq
	return tea.Tick(toastDismissDelay, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// Update - обработка сигнала скрытия
func (t *Toast) Update(msg tea.Msg) {
	if expired, ok := msg.(toastExpiredMsg); ok && expired.seq == t.seq {
		t.text = ""
	}
}

// View - отрисовка уведомления
func (t *Toast) View() string {
	if t.text == "" {
		return ""
	}
	if t.isErr {
		return errorBannerStyle.Render(t.text)
	}
	return bannerStyle.Render(t.text)
}
