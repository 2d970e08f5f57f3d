package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/api"
	"github.com/avc-dev/shortlink-client/internal/auth"
	"github.com/avc-dev/shortlink-client/internal/usecase"
)

type shortenOptions struct {
	alias string
	anon  bool
}

// cmdShorten выполняет команду сокращения URL.
func (a *App) cmdShorten(opts shortenOptions, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: shortlink shorten [flags] <url>")
	}

	var (
		tokens   usecase.TokenProvider
		reauth   usecase.Reauthenticator
		userName string
	)
	if !opts.anon && a.auth.Authenticated() {
		tokens = a.auth
		reauth = a.auth
		userName = a.displayName()
	}

	uc := usecase.NewShortenUsecase(a.backend, tokens, reauth, newStdinConfirmer(), a.logger)

	shortURL, err := uc.Submit(context.Background(), usecase.SubmitInput{
		LongURL:  args[0],
		Alias:    opts.alias,
		UserName: userName,
	})
	if err != nil {
		return userError(err)
	}

	fmt.Println(shortURL)
	return nil
}

// cmdLogin выполняет вход через провайдера аутентификации.
func (a *App) cmdLogin(noBrowser bool) error {
	if err := a.config.ValidateAuth(); err != nil {
		return err
	}

	err := a.auth.Login(context.Background(), auth.LoginOptions{NoBrowser: noBrowser})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.link.ObserveAuthenticated(); err != nil {
		a.logger.Warn("failed to record primary identity", zap.Error(err))
	}

	// Вход мог завершить начатое ранее связывание
	if err := a.resolveLinking(); err != nil {
		return err
	}

	subject, err := a.auth.Subject()
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s\n", subject)
	return nil
}

// cmdLogout завершает сессию и очищает сессионное состояние.
func (a *App) cmdLogout() error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	if err := a.link.ObserveLoggedOut(); err != nil {
		a.logger.Warn("failed to reset session state", zap.Error(err))
	}

	fmt.Println("Logged out")
	return nil
}

// cmdLink связывает новую identity с текущей учётной записью:
// помечает связывание начатым, проводит вход под новой identity
// и разрешает связывание после возврата.
func (a *App) cmdLink(noBrowser bool) error {
	if err := a.config.ValidateAuth(); err != nil {
		return err
	}
	if !a.auth.Authenticated() {
		return errors.New("you must be logged in to link an account (run: shortlink login)")
	}

	// Текущая identity становится основной, если ещё не зафиксирована
	if err := a.link.ObserveAuthenticated(); err != nil {
		return err
	}

	// Флаг выставляется до redirect: состояние обязано пережить вход
	if err := a.state.BeginLinking(); err != nil {
		return fmt.Errorf("failed to store linking flag: %w", err)
	}

	// Провайдер обязан показать выбор учётной записи заново:
	// иначе он молча вернёт текущую сессию и связывать будет нечего
	maxAge := 0
	err := a.auth.Login(context.Background(), auth.LoginOptions{
		Prompt:     "login",
		ScreenHint: "signup",
		MaxAge:     &maxAge,
		AppState:   auth.AppState{"linking": true},
		NoBrowser:  noBrowser,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return a.resolveLinking()
}

// cmdWhoami выводит identity текущей сессии.
func (a *App) cmdWhoami() error {
	subject, err := a.auth.Subject()
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			fmt.Println("Not logged in")
			return nil
		}
		return err
	}

	fmt.Printf("Identity: %s\n", subject)
	fmt.Printf("Provider: %s\n", subject.Provider())

	if name := a.displayName(); name != "" {
		fmt.Printf("Name:     %s\n", name)
	}
	if primary, ok := a.state.PrimarySub(); ok {
		fmt.Printf("Primary:  %s\n", primary)
	}

	return nil
}

// resolveLinking выполняет одну попытку разрешить отложенное связывание
// и печатает её исход.
func (a *App) resolveLinking() error {
	outcome, err := a.link.Resolve(context.Background())
	if err != nil {
		return fmt.Errorf("account linking failed: %w", err)
	}

	if outcome == usecase.LinkDone {
		fmt.Println(a.link.Message())
	}
	return nil
}

// displayName возвращает имя пользователя из claims identity-токена.
func (a *App) displayName() string {
	claims, err := a.auth.IdentityClaims()
	if err != nil {
		return ""
	}
	name, _ := claims["name"].(string)
	return name
}

// userError переводит ошибки предметной области в сообщения,
// понятные пользователю терминала.
func userError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		return errors.New("please provide a URL to shorten")
	case errors.Is(err, usecase.ErrInvalidURL):
		return errors.New("please provide a valid http or https URL")
	case errors.Is(err, usecase.ErrLoginRequired):
		return errors.New("you must be logged in to use a custom alias (run: shortlink login)")
	case errors.Is(err, usecase.ErrSessionExpired):
		return errors.New("your session has expired, please log in again")
	case errors.Is(err, usecase.ErrAliasExists):
		return errors.New("this alias already exists and was not overwritten")
	case errors.Is(err, usecase.ErrAliasTaken):
		return errors.New("this alias is taken by another user, please choose a different one")
	case errors.Is(err, api.ErrNoResponse):
		return errors.New("no response from server, please try again later")
	default:
		return err
	}
}
