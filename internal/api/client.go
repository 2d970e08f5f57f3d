package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/model"
)

const requestTimeout = 30 * time.Second

// Client выполняет HTTP запросы к бэкенду сокращения URL.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New создает новый клиент бэкенда.
func New(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// Shorten отправляет запрос на сокращение URL без кастомного алиаса.
// bearer может быть пустым: эндпоинт доступен анонимно.
func (c *Client) Shorten(ctx context.Context, longURL, bearer string) (string, error) {
	body, err := c.post(ctx, "/shorten", bearer, nil, model.ShortenRequest{LongURL: longURL})
	if err != nil {
		return "", err
	}

	var response model.ShortenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode shorten response: %w", err)
	}

	return response.ShortURL, nil
}

// ShortenCustom отправляет запрос на сокращение URL с кастомным алиасом.
// Флаг overwrite передается как query-параметр и разрешает перезапись
// существующего алиаса, принадлежащего этому же пользователю.
func (c *Client) ShortenCustom(ctx context.Context, bearer string, request model.CustomShortenRequest, overwrite bool) (string, error) {
	query := url.Values{"overwrite": []string{strconv.FormatBool(overwrite)}}

	body, err := c.post(ctx, "/shorten/custom", bearer, query, request)
	if err != nil {
		return "", err
	}

	var response model.ShortenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode shorten response: %w", err)
	}

	return response.ShortURL, nil
}

// LinkAccount отправляет запрос на связывание вторичной учётной записи
// с основной. Возвращает сообщение бэкенда об успехе.
func (c *Client) LinkAccount(ctx context.Context, bearer string, request model.LinkRequest) (string, error) {
	body, err := c.post(ctx, "/api/link-account", bearer, nil, request)
	if err != nil {
		return "", err
	}

	var response model.LinkResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to decode link response: %w", err)
	}

	return response.Message, nil
}

// post выполняет POST запрос и возвращает тело успешного ответа.
// Неуспешный статус превращается в *StatusError, отсутствие ответа — в ErrNoResponse.
func (c *Client) post(ctx context.Context, path, bearer string, query url.Values, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoResponse, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := parseStatusError(resp.StatusCode, body)
		c.logger.Debug("backend returned error status",
			zap.String("path", path),
			zap.Int("status", statusErr.Status),
			zap.String("detail", statusErr.Detail),
			zap.Bool("can_overwrite", statusErr.CanOverwrite),
		)
		return nil, statusErr
	}

	return body, nil
}

// parseStatusError разбирает тело ошибки бэкенда. Поле detail полиморфно:
// объект {can_overwrite, ...} для конфликтов алиасов или обычная строка;
// эндпоинт связывания вместо detail возвращает message.
func parseStatusError(status int, body []byte) *StatusError {
	statusErr := &StatusError{Status: status}

	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.IsObject():
		statusErr.CanOverwrite = detail.Get("can_overwrite").Bool()
		if message := detail.Get("message"); message.Exists() {
			statusErr.Detail = message.String()
		} else {
			statusErr.Detail = detail.Raw
		}
	case detail.Exists():
		statusErr.Detail = detail.String()
	default:
		if message := gjson.GetBytes(body, "message"); message.Exists() {
			statusErr.Detail = message.String()
		} else {
			statusErr.Detail = strings.TrimSpace(string(body))
		}
	}

	return statusErr
}
