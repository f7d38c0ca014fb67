package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/localeats/localeats-cli/internal/logger"
	"github.com/sethvargo/go-retry"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource - источник токена авторизации (сессия пользователя)
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
	tokens     TokenSource
}

func NewClient(baseURL string, httpClient HTTPClient, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    NewRateLimiter(),
		tokens:     tokens,
	}
}

// retryDelay - пауза перед единственным повтором неудачного запроса
const retryDelay = 500 * time.Millisecond

// do - выполняет запрос к серверу: авторизация, один встроенный повтор,
// разбор JSON-ответа в out (если out != nil)
func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body interface{}, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = data
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}
	// ключ идемпотентности один на все попытки запроса
	idempotencyKey := ""
	if method != http.MethodGet {
		idempotencyKey = uuid.NewString()
	}

	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
		if err != nil {
			return err
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if idempotencyKey != "" {
			req.Header.Set("Idempotency-Key", idempotencyKey)
		}
		if c.tokens != nil {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// сетевая ошибка, запрос можно повторить
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			err := HandleErrorResponse(resp)
			if rateLimitErr, ok := err.(*RateLimitError); ok {
				logger.Warn("Too many requests:", method, path)
				c.limiter.BlockFor(rateLimitErr.RetryAfter)
				return err
			}
			if errors.Is(err, ErrServiceUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}

		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return err
		}
		return nil
	})
}
