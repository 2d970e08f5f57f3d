package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/api"
	"github.com/avc-dev/shortlink-client/internal/mocks"
	"github.com/avc-dev/shortlink-client/internal/model"
)

// TestValidateURL проверяет валидацию длинного URL
func TestValidateURL(t *testing.T) {
	tests := []struct {
		name        string
		rawURL      string
		expectedErr error
	}{
		{
			name:        "Valid http URL",
			rawURL:      "http://example.com/page",
			expectedErr: nil,
		},
		{
			name:        "Valid https URL",
			rawURL:      "https://example.com",
			expectedErr: nil,
		},
		{
			name:        "Surrounding whitespace",
			rawURL:      "  https://example.com  ",
			expectedErr: nil,
		},
		{
			name:        "Empty string",
			rawURL:      "",
			expectedErr: ErrEmptyURL,
		},
		{
			name:        "Whitespace only",
			rawURL:      "   ",
			expectedErr: ErrEmptyURL,
		},
		{
			name:        "No scheme",
			rawURL:      "example.com/page",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Unsupported scheme",
			rawURL:      "ftp://example.com/file",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Scheme without host",
			rawURL:      "http://",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Not a URL",
			rawURL:      "definitely not a url",
			expectedErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.rawURL)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestShortenUsecase_Submit_Anonymous проверяет анонимное сокращение
// без алиаса через простой эндпоинт
func TestShortenUsecase_Submit_Anonymous(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)

	mockAPI.EXPECT().
		Shorten(mock.Anything, "https://example.com/page", "").
		Return("http://localhost:8000/abc123", nil).
		Once()

	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	// Act
	shortURL, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/abc123", shortURL)
	assert.Equal(t, "http://localhost:8000/abc123", uc.Result())
}

// TestShortenUsecase_Submit_Authenticated проверяет, что аутентифицированный
// запрос идет на кастомный эндпоинт с bearer-токеном и именем пользователя
func TestShortenUsecase_Submit_Authenticated(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	mockTokens := mocks.NewMockTokenProvider(t)

	mockTokens.EXPECT().
		AccessToken(mock.Anything).
		Return("token-1", nil).
		Once()

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "token-1", model.CustomShortenRequest{
			LongURL:     "https://example.com/page",
			CustomAlias: "myalias",
			UserName:    "Test User",
		}, false).
		Return("http://localhost:8000/myalias", nil).
		Once()

	uc := NewShortenUsecase(mockAPI, mockTokens, nil, nil, zap.NewNop())

	// Act
	shortURL, err := uc.Submit(context.Background(), SubmitInput{
		LongURL:  "https://example.com/page",
		Alias:    "myalias",
		UserName: "Test User",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/myalias", shortURL)
}

// TestShortenUsecase_Submit_OverwriteConfirmed проверяет протокол перезаписи:
// после подтверждения запрос повторяется ровно один раз с overwrite=true
func TestShortenUsecase_Submit_OverwriteConfirmed(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	mockTokens := mocks.NewMockTokenProvider(t)
	mockConfirm := mocks.NewMockConfirmer(t)

	mockTokens.EXPECT().
		AccessToken(mock.Anything).
		Return("token-1", nil).
		Once()

	request := model.CustomShortenRequest{
		LongURL:     "https://example.com/page",
		CustomAlias: "taken",
	}

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "token-1", request, false).
		Return("", &api.StatusError{Status: http.StatusConflict, Detail: "alias exists", CanOverwrite: true}).
		Once()

	mockConfirm.EXPECT().
		Confirm(mock.Anything).
		Return(true).
		Once()

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "token-1", request, true).
		Return("http://localhost:8000/taken", nil).
		Once()

	uc := NewShortenUsecase(mockAPI, mockTokens, nil, mockConfirm, zap.NewNop())

	// Act
	shortURL, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
		Alias:   "taken",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/taken", shortURL)
}

// TestShortenUsecase_Submit_OverwriteDeclined проверяет, что отказ
// от перезаписи не порождает повторный запрос
func TestShortenUsecase_Submit_OverwriteDeclined(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	mockTokens := mocks.NewMockTokenProvider(t)
	mockConfirm := mocks.NewMockConfirmer(t)

	mockTokens.EXPECT().
		AccessToken(mock.Anything).
		Return("token-1", nil).
		Once()

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "token-1", mock.Anything, false).
		Return("", &api.StatusError{Status: http.StatusConflict, CanOverwrite: true}).
		Once()

	mockConfirm.EXPECT().
		Confirm(mock.Anything).
		Return(false).
		Once()

	uc := NewShortenUsecase(mockAPI, mockTokens, nil, mockConfirm, zap.NewNop())

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
		Alias:   "taken",
	})

	// Assert
	assert.ErrorIs(t, err, ErrAliasExists)
	assert.Empty(t, uc.Result())
}

// TestShortenUsecase_Submit_AliasTaken проверяет конфликт без права
// перезаписи: подтверждение не запрашивается
func TestShortenUsecase_Submit_AliasTaken(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	mockTokens := mocks.NewMockTokenProvider(t)
	mockConfirm := mocks.NewMockConfirmer(t)

	mockTokens.EXPECT().
		AccessToken(mock.Anything).
		Return("token-1", nil).
		Once()

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "token-1", mock.Anything, false).
		Return("", &api.StatusError{Status: http.StatusConflict, Detail: "alias belongs to another user"}).
		Once()

	uc := NewShortenUsecase(mockAPI, mockTokens, nil, mockConfirm, zap.NewNop())

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
		Alias:   "taken",
	})

	// Assert
	assert.ErrorIs(t, err, ErrAliasTaken)
}

// TestShortenUsecase_Submit_Unauthorized проверяет перевод 401
// в ошибку предметной области
func TestShortenUsecase_Submit_Unauthorized(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)

	mockAPI.EXPECT().
		ShortenCustom(mock.Anything, "", mock.Anything, false).
		Return("", &api.StatusError{Status: http.StatusUnauthorized, Detail: "Not authenticated"}).
		Once()

	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	// Act: алиас без аутентификации
	_, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
		Alias:   "myalias",
	})

	// Assert
	assert.ErrorIs(t, err, ErrLoginRequired)
}

// TestShortenUsecase_Submit_TokenFailure проверяет, что при невозможности
// получить токен инициируется повторный вход, а запрос не отправляется
func TestShortenUsecase_Submit_TokenFailure(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	mockTokens := mocks.NewMockTokenProvider(t)
	mockReauth := mocks.NewMockReauthenticator(t)

	mockTokens.EXPECT().
		AccessToken(mock.Anything).
		Return("", errors.New("refresh token revoked")).
		Once()

	mockReauth.EXPECT().
		Reauthenticate(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	uc := NewShortenUsecase(mockAPI, mockTokens, mockReauth, nil, zap.NewNop())

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{
		LongURL: "https://example.com/page",
	})

	// Assert
	assert.ErrorIs(t, err, ErrSessionExpired)
}

// TestShortenUsecase_Submit_ResultSurvivesFailure проверяет, что неудачная
// попытка не затирает результат предыдущей успешной
func TestShortenUsecase_Submit_ResultSurvivesFailure(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)

	mockAPI.EXPECT().
		Shorten(mock.Anything, "https://example.com/first", "").
		Return("http://localhost:8000/first", nil).
		Once()

	mockAPI.EXPECT().
		Shorten(mock.Anything, "https://example.com/second", "").
		Return("", fmt.Errorf("%w: connection refused", api.ErrNoResponse)).
		Once()

	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	_, err := uc.Submit(context.Background(), SubmitInput{LongURL: "https://example.com/first"})
	require.NoError(t, err)

	// Act
	_, err = uc.Submit(context.Background(), SubmitInput{LongURL: "https://example.com/second"})

	// Assert
	assert.ErrorIs(t, err, api.ErrNoResponse)
	assert.Equal(t, "http://localhost:8000/first", uc.Result())
}

// TestShortenUsecase_Submit_BackendError проверяет неожиданный статус бэкенда
func TestShortenUsecase_Submit_BackendError(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)

	mockAPI.EXPECT().
		Shorten(mock.Anything, "https://example.com/page", "").
		Return("", &api.StatusError{Status: http.StatusInternalServerError, Detail: "database unavailable"}).
		Once()

	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{LongURL: "https://example.com/page"})

	// Assert
	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusInternalServerError, backendErr.Status)
	assert.Equal(t, "database unavailable", backendErr.Detail)
}

// TestShortenUsecase_Submit_Busy проверяет защиту от параллельной отправки
func TestShortenUsecase_Submit_Busy(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	require.True(t, uc.acquire())
	defer uc.release()

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{LongURL: "https://example.com/page"})

	// Assert
	assert.ErrorIs(t, err, ErrBusy)
}

// TestShortenUsecase_Submit_InvalidURLSkipsBackend проверяет, что невалидный
// URL отклоняется до обращения к бэкенду
func TestShortenUsecase_Submit_InvalidURLSkipsBackend(t *testing.T) {
	// Arrange
	mockAPI := mocks.NewMockShortenerAPI(t)
	uc := NewShortenUsecase(mockAPI, nil, nil, nil, zap.NewNop())

	// Act
	_, err := uc.Submit(context.Background(), SubmitInput{LongURL: "not a url"})

	// Assert
	assert.ErrorIs(t, err, ErrInvalidURL)
}
