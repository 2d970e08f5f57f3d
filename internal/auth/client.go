package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/avc-dev/shortlink-client/internal/config"
	"github.com/avc-dev/shortlink-client/internal/model"
)

const defaultLoginTimeout = 5 * time.Minute

// AppState представляет application state, передаваемый через redirect:
// провайдер возвращает его обработчику завершения без изменений.
type AppState map[string]any

// RedirectHandler вызывается один раз после каждого завершённого
// redirect-логина с тем appState, который был передан в Login.
type RedirectHandler func(appState AppState)

// Client реализует redirect-аутентификацию через внешнего провайдера
// и выдачу bearer-токенов для запросов к бэкенду.
type Client struct {
	oauth        oauth2.Config
	audience     string
	callbackAddr string
	tokens       *tokenFile
	logger       *zap.Logger

	onRedirect   RedirectHandler
	openBrowser  func(url string) error
	loginTimeout time.Duration
}

// NewClient создает новый клиент провайдера аутентификации.
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	callbackAddr := cfg.CallbackAddr.String()

	return &Client{
		oauth: oauth2.Config{
			ClientID:    cfg.ClientID,
			RedirectURL: fmt.Sprintf("http://%s/callback", callbackAddr),
			Scopes:      []string{"openid", "profile", "email", "offline_access"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  fmt.Sprintf("https://%s/authorize", cfg.AuthDomain),
				TokenURL: fmt.Sprintf("https://%s/oauth/token", cfg.AuthDomain),
			},
		},
		audience:     cfg.Audience,
		callbackAddr: callbackAddr,
		tokens:       newTokenFile(cfg.TokenPath),
		logger:       logger,
		openBrowser:  OpenBrowser,
		loginTimeout: defaultLoginTimeout,
	}
}

// OnRedirect регистрирует обработчик завершения redirect-логина.
// Обработчик должен записать своё состояние до возврата: оркестратор
// связывания читает его сразу после завершения Login.
func (c *Client) OnRedirect(handler RedirectHandler) {
	c.onRedirect = handler
}

// Authenticated возвращает true, если есть сохранённая сессия.
func (c *Client) Authenticated() bool {
	record, err := c.tokens.Load()
	return err == nil && (record.AccessToken != "" || record.IDToken != "")
}

// AccessToken возвращает bearer-токен текущей сессии, обновляя его
// при необходимости через refresh-токен. Проверка истечения токена
// не дублируется на клиенте: источником истины остаётся ответ бэкенда.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	record, err := c.tokens.Load()
	if err != nil {
		return "", err
	}

	token, err := c.oauth.TokenSource(ctx, &record.Token).Token()
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}

	if token.AccessToken != record.AccessToken {
		refreshed := *record
		refreshed.Token = *token
		if saveErr := c.tokens.Save(&refreshed); saveErr != nil {
			c.logger.Warn("failed to persist refreshed token", zap.Error(saveErr))
		}
	}

	return token.AccessToken, nil
}

// IdentityClaims возвращает claims сохранённого identity-токена.
// Подпись токена не проверяется: криптографическая валидация —
// ответственность провайдера, клиент только читает claims.
func (c *Client) IdentityClaims() (jwt.MapClaims, error) {
	record, err := c.tokens.Load()
	if err != nil {
		return nil, err
	}

	if record.IDToken == "" {
		return nil, ErrNoIdentityToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(record.IDToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse identity token: %w", err)
	}

	return claims, nil
}

// Subject возвращает identity текущей сессии из claim "sub".
func (c *Client) Subject() (model.Identity, error) {
	claims, err := c.IdentityClaims()
	if err != nil {
		return "", err
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errors.New("sub claim not found in identity token")
	}

	return model.Identity(sub), nil
}

// Logout завершает сессию, удаляя сохранённые токены.
func (c *Client) Logout() error {
	return c.tokens.Delete()
}
