package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrUnauthorized       = errors.New("authorization required")
	ErrNotFound           = errors.New("resource not found")
	ErrServiceUnavailable = errors.New("localeats service unavailable")
)

// APIError - ошибка бизнес-логики, возвращённая сервером (4xx c полем message)
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request rejected with status %d", e.StatusCode)
}

// errorEnvelope - стандартный конверт ошибки сервера
type errorEnvelope struct {
	Message string `json:"message"`
}

// HandleErrorResponse - преобразует неуспешный HTTP-ответ в ошибку клиента
func HandleErrorResponse(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case resp.StatusCode >= 500:
		return ErrServiceUnavailable
	default:
		// 4xx с сообщением от сервера
		var envelope errorEnvelope
		body, err := io.ReadAll(resp.Body)
		if err == nil {
			_ = json.Unmarshal(body, &envelope)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}
}
