package auth

import "errors"

var (
	// ErrNotAuthenticated означает, что сохранённой сессии нет и операция
	// требует входа.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoIdentityToken означает, что сессия есть, но identity-токен
	// в ней отсутствует.
	ErrNoIdentityToken = errors.New("identity token not found in session")

	// ErrLoginTimeout означает, что callback от провайдера не пришёл
	// за отведённое время.
	ErrLoginTimeout = errors.New("timed out waiting for login callback")

	// ErrStateMismatch означает, что callback пришёл с неожиданным
	// параметром state.
	ErrStateMismatch = errors.New("callback state does not match login request")
)
