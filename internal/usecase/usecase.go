package usecase

import (
	"context"

	"github.com/avc-dev/shortlink-client/internal/model"
)

// TokenProvider выдает bearer-токен текущей аутентифицированной сессии.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// IdentityProvider возвращает identity текущей сессии из claims
// identity-токена.
type IdentityProvider interface {
	Subject() (model.Identity, error)
}

// Reauthenticator инициирует повторный redirect-логин с передачей appState.
type Reauthenticator interface {
	Reauthenticate(ctx context.Context, appState map[string]any) error
}

// ShortenerAPI определяет операции бэкенда, используемые оркестраторами.
type ShortenerAPI interface {
	Shorten(ctx context.Context, longURL, bearer string) (string, error)
	ShortenCustom(ctx context.Context, bearer string, request model.CustomShortenRequest, overwrite bool) (string, error)
	LinkAccount(ctx context.Context, bearer string, request model.LinkRequest) (string, error)
}

// Confirmer запрашивает у пользователя явное подтверждение действия.
type Confirmer interface {
	Confirm(prompt string) bool
}
