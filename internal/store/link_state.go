package store

import (
	"errors"

	"github.com/avc-dev/shortlink-client/internal/model"
)

// Ключи сессионного состояния связывания аккаунтов.
const (
	KeyLinkingFlag = "auth.linking_flag"
	KeyPrimarySub  = "auth.primary_sub"
)

// LinkState предоставляет типизированный доступ к двум сессионным флагам:
// признаку незавершённого связывания аккаунтов и identity основной
// учётной записи. Инвариант: linking_flag установлен только между
// инициированием связывания и завершением следующей попытки его разрешить.
type LinkState struct {
	store Store
}

// NewLinkState создает новый LinkState поверх сессионного хранилища.
func NewLinkState(store Store) *LinkState {
	return &LinkState{store: store}
}

// BeginLinking помечает, что связывание инициировано и ещё не разрешено.
// Вызывается до redirect-логина: состояние должно пережить навигацию.
func (l *LinkState) BeginLinking() error {
	return l.store.Set(KeyLinkingFlag, "true")
}

// LinkingPending возвращает true, если попытка связывания ещё не разрешена.
func (l *LinkState) LinkingPending() bool {
	value, err := l.store.Get(KeyLinkingFlag)
	return err == nil && value == "true"
}

// FinishLinking снимает флаг связывания. Вызывается безусловно в конце
// каждой попытки, чтобы автомат не застрял в состоянии Pending.
func (l *LinkState) FinishLinking() error {
	return l.store.Remove(KeyLinkingFlag)
}

// PrimarySub возвращает identity основной учётной записи, если она задана.
func (l *LinkState) PrimarySub() (model.Identity, bool) {
	value, err := l.store.Get(KeyPrimarySub)
	if err != nil || value == "" {
		return "", false
	}
	return model.Identity(value), true
}

// SetPrimarySub назначает identity основной учётной записи.
func (l *LinkState) SetPrimarySub(id model.Identity) error {
	if id.IsZero() {
		return errors.New("primary identity must not be empty")
	}
	return l.store.Set(KeyPrimarySub, id.String())
}

// EnsurePrimary назначает основную identity, только если она ещё не задана.
// Вызывается при каждом наблюдении аутентифицированного состояния.
func (l *LinkState) EnsurePrimary(id model.Identity) error {
	if _, ok := l.PrimarySub(); ok {
		return nil
	}
	return l.SetPrimarySub(id)
}

// Reset сбрасывает всё сессионное состояние. Вызывается при выходе
// или при наблюдении неаутентифицированного состояния.
func (l *LinkState) Reset() error {
	return l.store.Clear()
}
