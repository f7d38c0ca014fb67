package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/validators"
)

// Режимы экрана авторизации
type authMode int

const (
	modeLogin authMode = iota
	modeSignup
	modeForgot
)

// resendCooldown - пауза перед повторной отправкой письма сброса пароля
const resendCooldown = 60

type (
	// authResultMsg - результат входа или регистрации
	authResultMsg struct {
		err error
	}

	// resetSentMsg - результат запроса письма сброса пароля
	resetSentMsg struct {
		err error
	}

	// countdownTickMsg - секундный тик обратного отсчёта повторной
	// отправки; seq отсеивает тики прежних отсчётов
	countdownTickMsg struct {
		seq int
	}
)

// Поля форм по режимам
const (
	fieldEmail = iota
	fieldPassword
	fieldName
	fieldPhone
)

// AuthModel - экраны входа, регистрации и сброса пароля.
// Проверка полей выполняется локально, невалидная форма не отправляется.
type AuthModel struct {
	deps Deps
	mode authMode

	inputs    []textinput.Model
	order     []int // поля текущего режима в порядке обхода
	focus     int
	fieldErrs map[int]string

	submitting bool
	submitErr  string

	// сброс пароля
	resetSent    bool
	countdown    int
	countdownSeq int
}

func NewAuth(deps Deps) AuthModel {
	inputs := make([]textinput.Model, 4)

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.CharLimit = 80
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 80
	inputs[fieldPassword] = password

	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = "Name     > "
	name.CharLimit = 50
	inputs[fieldName] = name

	phone := textinput.New()
	phone.Placeholder = "+1 555 000 0000 (optional)"
	phone.Prompt = "Phone    > "
	phone.CharLimit = 20
	inputs[fieldPhone] = phone

	m := AuthModel{
		deps:      deps,
		inputs:    inputs,
		fieldErrs: make(map[int]string),
	}
	m.setMode(modeLogin)
	return m
}

func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// setMode - переключение режима с сбросом ошибок и фокуса
func (m *AuthModel) setMode(mode authMode) {
	m.mode = mode
	m.fieldErrs = make(map[int]string)
	m.submitErr = ""
	m.focus = 0
	switch mode {
	case modeLogin:
		m.order = []int{fieldEmail, fieldPassword}
	case modeSignup:
		m.order = []int{fieldName, fieldEmail, fieldPhone, fieldPassword}
	case modeForgot:
		m.order = []int{fieldEmail}
	}
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.order[0]].Focus()
}

// validate - локальная проверка полей текущего режима,
// ошибки отображаются построчно и на сервер не уходят
func (m *AuthModel) validate() bool {
	m.fieldErrs = make(map[int]string)
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())

	if err := validators.CheckEmail(email); err != nil {
		m.fieldErrs[fieldEmail] = err.Error()
	}
	if m.mode == modeLogin || m.mode == modeSignup {
		if err := validators.CheckPassword(m.inputs[fieldPassword].Value(), email); err != nil {
			m.fieldErrs[fieldPassword] = err.Error()
		}
	}
	if m.mode == modeSignup {
		if err := validators.CheckName(m.inputs[fieldName].Value()); err != nil {
			m.fieldErrs[fieldName] = err.Error()
		}
		if err := validators.CheckPhone(m.inputs[fieldPhone].Value()); err != nil {
			m.fieldErrs[fieldPhone] = err.Error()
		}
	}
	return len(m.fieldErrs) == 0
}

// submit - отправка формы текущего режима
func (m *AuthModel) submit() tea.Cmd {
	deps := m.deps
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	switch m.mode {
	case modeLogin:
		return func() tea.Msg {
			ctx, cancel := deps.requestContext()
			defer cancel()
			return authResultMsg{err: deps.Identity.Login(ctx, email, password)}
		}
	case modeSignup:
		request := models.SignupRequest{
			Email:    email,
			Password: password,
			Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
			Phone:    strings.TrimSpace(m.inputs[fieldPhone].Value()),
		}
		return func() tea.Msg {
			ctx, cancel := deps.requestContext()
			defer cancel()
			return authResultMsg{err: deps.Identity.Signup(ctx, request)}
		}
	default:
		return func() tea.Msg {
			ctx, cancel := deps.requestContext()
			defer cancel()
			return resetSentMsg{err: deps.Identity.RequestPasswordReset(ctx, email)}
		}
	}
}

// startCountdown - запуск обратного отсчёта повторной отправки
func (m *AuthModel) startCountdown() tea.Cmd {
	m.countdown = resendCooldown
	m.countdownSeq++
	seq := m.countdownSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{seq: seq}
	})
}

func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.submitErr = msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return authDoneMsg{} }

	case resetSentMsg:
		m.submitting = false
		if msg.err != nil {
			m.submitErr = msg.err.Error()
			return m, nil
		}
		m.submitErr = ""
		m.resetSent = true
		return m, m.startCountdown()

	case countdownTickMsg:
		// тик прежнего отсчёта после перезапуска игнорируется
		if msg.seq != m.countdownSeq || m.countdown == 0 {
			return m, nil
		}
		m.countdown--
		if m.countdown == 0 {
			return m, nil
		}
		seq := m.countdownSeq
		return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return countdownTickMsg{seq: seq}
		})

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyTab, tea.KeyDown:
			m.moveFocus(1)
			return m, textinput.Blink
		case tea.KeyShiftTab, tea.KeyUp:
			m.moveFocus(-1)
			return m, textinput.Blink
		case tea.KeyEnter:
			if m.submitting {
				return m, nil
			}
			if m.mode == modeForgot && m.resetSent && m.countdown > 0 {
				// повторная отправка закрыта до конца отсчёта
				return m, nil
			}
			if !m.validate() {
				return m, nil
			}
			m.submitting = true
			m.submitErr = ""
			return m, m.submit()
		case tea.KeyCtrlS:
			if m.mode == modeSignup {
				m.setMode(modeLogin)
			} else {
				m.setMode(modeSignup)
			}
			return m, textinput.Blink
		case tea.KeyCtrlR:
			if m.mode == modeForgot {
				m.setMode(modeLogin)
			} else {
				m.setMode(modeForgot)
				m.resetSent = false
				m.countdown = 0
			}
			return m, textinput.Blink
		}

		field := m.order[m.focus]
		var cmd tea.Cmd
		m.inputs[field], cmd = m.inputs[field].Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveFocus - переход между полями формы
func (m *AuthModel) moveFocus(delta int) {
	m.inputs[m.order[m.focus]].Blur()
	m.focus = (m.focus + delta + len(m.order)) % len(m.order)
	m.inputs[m.order[m.focus]].Focus()
}

func (m AuthModel) View() string {
	var b strings.Builder
	switch m.mode {
	case modeLogin:
		b.WriteString(titleStyle.Render("Local Eats · Sign In"))
	case modeSignup:
		b.WriteString(titleStyle.Render("Local Eats · Create Account"))
	case modeForgot:
		b.WriteString(titleStyle.Render("Local Eats · Reset Password"))
	}
	b.WriteString("\n\n")

	for _, field := range m.order {
		b.WriteString(m.inputs[field].View())
		b.WriteString("\n")
		if fieldErr, ok := m.fieldErrs[field]; ok {
			b.WriteString(errorStyle.Render("  " + fieldErr))
			b.WriteString("\n")
		}
	}

	if m.submitErr != "" {
		b.WriteString("\n")
		b.WriteString(errorBannerStyle.Render(m.submitErr))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString(subtleStyle.Render("\nWorking..."))
	}

	if m.mode == modeForgot && m.resetSent {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("If that address exists, a reset link is on its way."))
		if m.countdown > 0 {
			b.WriteString(subtleStyle.Render(fmt.Sprintf("\nResend available in %ds", m.countdown)))
		} else {
			b.WriteString(subtleStyle.Render("\nenter: resend"))
		}
	}

	switch m.mode {
	case modeLogin:
		b.WriteString(helpStyle.Render("\nenter: sign in • ctrl+s: create account • ctrl+r: forgot password"))
	case modeSignup:
		b.WriteString(helpStyle.Render("\nenter: create account • ctrl+s: back to sign in"))
	case modeForgot:
		b.WriteString(helpStyle.Render("\nenter: send reset link • ctrl+r: back to sign in"))
	}
	return b.String()
}
