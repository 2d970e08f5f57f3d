package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/avc-dev/shortlink-client/internal/middleware"
)

// LoginOptions настраивает redirect-логин.
type LoginOptions struct {
	// Prompt и ScreenHint передаются провайдеру как есть
	// (например prompt=login, screen_hint=signup для входа под новой identity).
	Prompt     string
	ScreenHint string
	// MaxAge ограничивает возраст существующей сессии провайдера в секундах;
	// nil — параметр не передается.
	MaxAge *int
	// AppState возвращается обработчику завершения redirect без изменений.
	AppState AppState
	// NoBrowser отключает автоматическое открытие браузера.
	NoBrowser bool
}

// Login выполняет полный redirect-логин: поднимает локальный callback-сервер,
// открывает браузер на странице авторизации провайдера, дожидается кода,
// обменивает его на токены и сохраняет их. После сохранения вызывается
// зарегистрированный обработчик завершения redirect с переданным appState.
func (c *Client) Login(ctx context.Context, opts LoginOptions) error {
	state := uuid.New().String()
	authURL := c.oauth.AuthCodeURL(state, c.authParams(opts)...)

	code, err := c.waitForCallback(ctx, state, authURL, opts.NoBrowser)
	if err != nil {
		return err
	}

	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	// Состояние сессии сохраняется до того, как управление вернётся
	// вызывающему коду: продолжение после redirect не полагается на память.
	if err := c.tokens.Save(newTokenRecord(token)); err != nil {
		return err
	}

	c.logger.Info("login completed", zap.Bool("has_app_state", len(opts.AppState) > 0))

	if c.onRedirect != nil {
		c.onRedirect(opts.AppState)
	}

	return nil
}

// Reauthenticate инициирует повторный redirect-логин с передачей appState.
// Используется для обновления сессии провайдера после связывания аккаунтов
// и при невозможности получить токен.
func (c *Client) Reauthenticate(ctx context.Context, appState map[string]any) error {
	return c.Login(ctx, LoginOptions{AppState: appState})
}

func (c *Client) authParams(opts LoginOptions) []oauth2.AuthCodeOption {
	params := []oauth2.AuthCodeOption{}
	if c.audience != "" {
		params = append(params, oauth2.SetAuthURLParam("audience", c.audience))
	}
	if opts.Prompt != "" {
		params = append(params, oauth2.SetAuthURLParam("prompt", opts.Prompt))
	}
	if opts.ScreenHint != "" {
		params = append(params, oauth2.SetAuthURLParam("screen_hint", opts.ScreenHint))
	}
	if opts.MaxAge != nil {
		params = append(params, oauth2.SetAuthURLParam("max_age", strconv.Itoa(*opts.MaxAge)))
	}
	return params
}

// waitForCallback поднимает локальный HTTP сервер, открывает браузер
// и ждёт authorization code от провайдера.
func (c *Client) waitForCallback(ctx context.Context, state, authURL string, noBrowser bool) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	router := chi.NewRouter()
	router.Use(middleware.Logger(c.logger))
	router.Get("/callback", callbackHandler(state, codeChan, errChan))

	server := &http.Server{Addr: c.callbackAddr, Handler: router}

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- fmt.Errorf("callback server failed: %w", err):
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if noBrowser {
		fmt.Printf("Open this URL in your browser to continue:\n\n%s\n\n", authURL)
	} else if err := c.openBrowser(authURL); err != nil {
		c.logger.Warn("failed to open browser", zap.Error(err))
		fmt.Printf("Open this URL in your browser to continue:\n\n%s\n\n", authURL)
	}

	timeout := time.NewTimer(c.loginTimeout)
	defer timeout.Stop()

	select {
	case code := <-codeChan:
		return code, nil
	case err := <-errChan:
		return "", err
	case <-timeout.C:
		return "", ErrLoginTimeout
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// callbackHandler обрабатывает redirect от провайдера: сверяет state
// и извлекает authorization code.
func callbackHandler(state string, codeChan chan<- string, errChan chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if errParam := query.Get("error"); errParam != "" {
			description := query.Get("error_description")
			fmt.Fprintf(w, "Authentication failed: %s", errParam)
			sendErr(errChan, fmt.Errorf("authentication failed: %s: %s", errParam, description))
			return
		}

		if query.Get("state") != state {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "Authentication failed: state mismatch.")
			sendErr(errChan, ErrStateMismatch)
			return
		}

		code := query.Get("code")
		if code == "" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, "Authentication failed: code not found.")
			sendErr(errChan, errors.New("code not found in callback"))
			return
		}

		fmt.Fprint(w, "<html><body><h1>Authentication successful!</h1><p>You can close this window and return to the terminal.</p></body></html>")
		select {
		case codeChan <- code:
		default:
		}
	}
}

func sendErr(errChan chan<- error, err error) {
	select {
	case errChan <- err:
	default:
	}
}
