package validators

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrWeakPassword    = errors.New("password must be at least 8 characters with a letter and a digit")
	ErrInvalidName     = errors.New("name contains invalid characters")
	ErrInvalidPhone    = errors.New("invalid phone format")
	ErrEmptyField      = errors.New("field is required")
	ErrPasswordObvious = errors.New("password must not contain the email")
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[\p{L}][\p{L} '\-]{1,49}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,19}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// CheckEmail проверяет формат адреса электронной почты
func CheckEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyField
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// CheckPassword проверяет сложность пароля: минимум 8 символов,
// хотя бы одна буква и одна цифра, без адреса почты внутри
func CheckPassword(password string, email string) error {
	if password == "" {
		return ErrEmptyField
	}
	if len(password) < 8 || !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return ErrWeakPassword
	}
	if email != "" {
		local := strings.SplitN(email, "@", 2)[0]
		if len(local) >= 4 && strings.Contains(strings.ToLower(password), strings.ToLower(local)) {
			return ErrPasswordObvious
		}
	}
	return nil
}

// CheckName проверяет имя пользователя: буквы, пробелы, дефис, апостроф
func CheckName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyField
	}
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// CheckPhone проверяет формат телефона, пустое значение допустимо
func CheckPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}
