package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/api"
	"github.com/avc-dev/shortlink-client/internal/model"
)

const overwritePrompt = "This alias already exists. Overwrite it?"

// SubmitInput описывает один запрос на сокращение URL.
type SubmitInput struct {
	LongURL  string
	Alias    string
	UserName string
}

// ShortenUsecase реализует отправку запросов на сокращение URL:
// валидацию, получение токена, выбор эндпоинта, разбор конфликтов
// и подтверждение перезаписи алиаса.
type ShortenUsecase struct {
	api     ShortenerAPI
	tokens  TokenProvider
	reauth  Reauthenticator
	confirm Confirmer
	logger  *zap.Logger

	mu     sync.Mutex
	busy   bool
	result string
}

// NewShortenUsecase создает новый ShortenUsecase. tokens может быть nil —
// тогда запросы отправляются анонимно, без bearer-токена.
func NewShortenUsecase(shortenerAPI ShortenerAPI, tokens TokenProvider, reauth Reauthenticator, confirm Confirmer, logger *zap.Logger) *ShortenUsecase {
	return &ShortenUsecase{
		api:     shortenerAPI,
		tokens:  tokens,
		reauth:  reauth,
		confirm: confirm,
		logger:  logger,
	}
}

// ValidateURL проверяет, что строка является абсолютным http/https URL.
func ValidateURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ErrEmptyURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// Submit выполняет один запрос на сокращение URL. При конфликте алиаса,
// который бэкенд разрешает перезаписать, запрашивает подтверждение
// и повторяет запрос ровно один раз с overwrite=true.
func (u *ShortenUsecase) Submit(ctx context.Context, input SubmitInput) (string, error) {
	if err := ValidateURL(input.LongURL); err != nil {
		return "", err
	}

	if !u.acquire() {
		return "", ErrBusy
	}
	defer u.release()

	bearer, err := u.bearerToken(ctx)
	if err != nil {
		return "", err
	}

	shortURL, err := u.submitOnce(ctx, bearer, input, false)

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusConflict && statusErr.CanOverwrite {
		if u.confirm == nil || !u.confirm.Confirm(overwritePrompt) {
			return "", ErrAliasExists
		}

		u.logger.Debug("overwrite confirmed, retrying", zap.String("alias", input.Alias))
		shortURL, err = u.submitOnce(ctx, bearer, input, true)
	}

	if err != nil {
		return "", u.classify(err)
	}

	u.setResult(shortURL)
	u.logger.Info("URL shortened", zap.String("short_url", shortURL))

	return shortURL, nil
}

// Result возвращает короткий URL последнего успешного запроса.
// Неудачные попытки результат не затирают.
func (u *ShortenUsecase) Result() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.result
}

// bearerToken получает bearer-токен текущей сессии. При невозможности
// его получить инициирует повторный вход и возвращает ErrSessionExpired.
func (u *ShortenUsecase) bearerToken(ctx context.Context) (string, error) {
	if u.tokens == nil {
		return "", nil
	}

	token, err := u.tokens.AccessToken(ctx)
	if err != nil {
		u.logger.Warn("failed to acquire access token", zap.Error(err))

		if u.reauth != nil {
			if rerr := u.reauth.Reauthenticate(ctx, nil); rerr != nil {
				u.logger.Warn("re-authentication failed", zap.Error(rerr))
			}
		}

		return "", ErrSessionExpired
	}

	return token, nil
}

func (u *ShortenUsecase) submitOnce(ctx context.Context, bearer string, input SubmitInput, overwrite bool) (string, error) {
	// Анонимный запрос без алиаса идет на простой эндпоинт
	if bearer == "" && input.Alias == "" {
		return u.api.Shorten(ctx, input.LongURL, bearer)
	}

	return u.api.ShortenCustom(ctx, bearer, model.CustomShortenRequest{
		LongURL:     input.LongURL,
		CustomAlias: input.Alias,
		UserName:    input.UserName,
	}, overwrite)
}

// classify переводит транспортные ошибки в ошибки предметной области.
func (u *ShortenUsecase) classify(err error) error {
	if errors.Is(err, api.ErrNoResponse) {
		return err
	}

	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	switch {
	case statusErr.Status == http.StatusUnauthorized:
		return ErrLoginRequired
	case statusErr.Status == http.StatusConflict && statusErr.CanOverwrite:
		return ErrAliasExists
	case statusErr.Status == http.StatusConflict:
		return ErrAliasTaken
	default:
		return &BackendError{Status: statusErr.Status, Detail: statusErr.Detail}
	}
}

func (u *ShortenUsecase) acquire() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.busy {
		return false
	}
	u.busy = true
	return true
}

func (u *ShortenUsecase) release() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
}

func (u *ShortenUsecase) setResult(shortURL string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.result = shortURL
}
