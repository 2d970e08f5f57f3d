package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/api"
	"github.com/avc-dev/shortlink-client/internal/model"
	"github.com/avc-dev/shortlink-client/internal/store"
)

// LinkOutcome описывает результат попытки разрешить отложенное связывание.
type LinkOutcome int

const (
	// LinkIdle — флаг связывания не установлен либо попытка не удалась.
	LinkIdle LinkOutcome = iota
	// LinkDone — бэкенд связал учётные записи, сессия обновлена.
	LinkDone
)

const linkedMessage = "Account linked successfully"

// LinkUsecase реализует автомат связывания вторичной identity с основной
// учётной записью. Попытка связывания переживает redirect-логин через
// сессионное состояние: флаг выставляется до перехода к провайдеру,
// а разрешается после возврата уже под вторичной identity.
type LinkUsecase struct {
	api      ShortenerAPI
	tokens   TokenProvider
	identity IdentityProvider
	reauth   Reauthenticator
	state    *store.LinkState
	logger   *zap.Logger

	mu      sync.Mutex
	busy    bool
	message string
	lastErr error
}

// NewLinkUsecase создает новый LinkUsecase.
func NewLinkUsecase(shortenerAPI ShortenerAPI, tokens TokenProvider, identity IdentityProvider, reauth Reauthenticator, state *store.LinkState, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		api:      shortenerAPI,
		tokens:   tokens,
		identity: identity,
		reauth:   reauth,
		state:    state,
		logger:   logger,
	}
}

// ObserveAuthenticated фиксирует первую аутентифицированную identity как
// основную. Повторные вызовы основную identity не меняют.
func (u *LinkUsecase) ObserveAuthenticated() error {
	subject, err := u.identity.Subject()
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}
	return u.state.EnsurePrimary(subject)
}

// ObserveLoggedOut сбрасывает всё сессионное состояние связывания.
func (u *LinkUsecase) ObserveLoggedOut() error {
	return u.state.Reset()
}

// Resolve выполняет одну попытку разрешить отложенное связывание.
// Если флаг связывания не установлен, ничего не делает. Флаг снимается
// безусловно вне зависимости от исхода попытки.
func (u *LinkUsecase) Resolve(ctx context.Context) (LinkOutcome, error) {
	if !u.state.LinkingPending() {
		return LinkIdle, nil
	}

	if !u.acquire() {
		return LinkIdle, ErrBusy
	}
	defer u.release()

	// Автомат не должен застрять в незавершённой попытке
	defer func() {
		if err := u.state.FinishLinking(); err != nil {
			u.logger.Warn("failed to clear linking flag", zap.Error(err))
		}
	}()

	u.setOutcome("", nil)

	primary, ok := u.state.PrimarySub()
	if !ok {
		return LinkIdle, u.fail(ErrMissingPrimary)
	}

	secondary, err := u.identity.Subject()
	if err != nil {
		return LinkIdle, u.fail(fmt.Errorf("failed to resolve secondary identity: %w", err))
	}

	// Связывание учётной записи с самой собой не имеет смысла,
	// запрос к бэкенду не отправляется
	if secondary == primary {
		return LinkIdle, u.fail(ErrSelfLink)
	}

	token, err := u.tokens.AccessToken(ctx)
	if err != nil {
		u.logger.Warn("failed to acquire access token for linking", zap.Error(err))

		if u.reauth != nil {
			if rerr := u.reauth.Reauthenticate(ctx, nil); rerr != nil {
				u.logger.Warn("re-authentication failed", zap.Error(rerr))
			}
		}

		return LinkIdle, u.fail(ErrSessionExpired)
	}

	provider, secondaryID := secondary.Split()
	message, err := u.api.LinkAccount(ctx, token, model.LinkRequest{
		PrimaryUserID:   primary.String(),
		SecondaryUserID: secondaryID,
		Provider:        provider,
	})
	if err != nil {
		u.logger.Warn("account linking rejected", zap.Error(err))
		return LinkIdle, u.fail(&LinkFailedError{Message: backendMessage(err)})
	}

	if message == "" {
		message = linkedMessage
	}
	u.setOutcome(message, nil)

	u.logger.Info("accounts linked",
		zap.String("primary", primary.String()),
		zap.String("provider", provider),
	)

	// Сессия провайдера обновляется под основной identity
	if err := u.reauth.Reauthenticate(ctx, map[string]any{"afterLink": true}); err != nil {
		u.logger.Warn("failed to refresh session after linking", zap.Error(err))
	}

	// Основная identity остается прежней: слияние на бэкенде аддитивно
	if err := u.state.SetPrimarySub(primary); err != nil {
		u.logger.Warn("failed to re-affirm primary identity", zap.Error(err))
	}

	return LinkDone, nil
}

// Message возвращает сообщение последнего успешного связывания.
func (u *LinkUsecase) Message() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.message
}

// Err возвращает ошибку последней неудачной попытки связывания.
func (u *LinkUsecase) Err() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// backendMessage извлекает сообщение бэкенда из транспортной ошибки.
func backendMessage(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Detail != "" {
		return statusErr.Detail
	}
	if errors.Is(err, api.ErrNoResponse) {
		return "linking failed: no response from backend"
	}
	return "linking failed"
}

func (u *LinkUsecase) fail(err error) error {
	u.setOutcome("", err)
	return err
}

func (u *LinkUsecase) setOutcome(message string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.message = message
	u.lastErr = err
}

func (u *LinkUsecase) acquire() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.busy {
		return false
	}
	u.busy = true
	return true
}

func (u *LinkUsecase) release() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.busy = false
}
