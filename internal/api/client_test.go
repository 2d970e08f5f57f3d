package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc-dev/shortlink-client/internal/model"
)

func TestClient_Shorten_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shorten", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		// Анонимный запрос идёт без Authorization
		assert.Empty(t, r.Header.Get("Authorization"))

		var request model.ShortenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "https://example.com/page", request.LongURL)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(model.ShortenResponse{ShortURL: "http://sh.rt/abc123"})
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	shortURL, err := client.Shorten(context.Background(), "https://example.com/page", "")
	require.NoError(t, err)
	assert.Equal(t, "http://sh.rt/abc123", shortURL)
}

func TestClient_ShortenCustom_SendsOverwriteAndBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shorten/custom", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("overwrite"))
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))

		var request model.CustomShortenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "myalias", request.CustomAlias)
		assert.Equal(t, "alice", request.UserName)

		json.NewEncoder(w).Encode(model.ShortenResponse{ShortURL: "http://sh.rt/myalias"})
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	request := model.CustomShortenRequest{
		LongURL:     "https://example.com",
		CustomAlias: "myalias",
		UserName:    "alice",
	}
	shortURL, err := client.ShortenCustom(context.Background(), "token123", request, true)
	require.NoError(t, err)
	assert.Equal(t, "http://sh.rt/myalias", shortURL)
}

func TestClient_ShortenCustom_ConflictDetail(t *testing.T) {
	tests := []struct {
		name                 string
		responseBody         string
		expectedCanOverwrite bool
		expectedDetail       string
	}{
		{
			name:                 "Structured detail with can_overwrite",
			responseBody:         `{"detail": {"can_overwrite": true, "message": "alias exists"}}`,
			expectedCanOverwrite: true,
			expectedDetail:       "alias exists",
		},
		{
			name:                 "Structured detail without can_overwrite",
			responseBody:         `{"detail": {"can_overwrite": false, "message": "alias taken"}}`,
			expectedCanOverwrite: false,
			expectedDetail:       "alias taken",
		},
		{
			name:                 "Plain string detail",
			responseBody:         `{"detail": "alias already taken"}`,
			expectedCanOverwrite: false,
			expectedDetail:       "alias already taken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := New(server.URL, zap.NewNop())

			_, err := client.ShortenCustom(context.Background(), "token", model.CustomShortenRequest{LongURL: "https://example.com", CustomAlias: "a"}, false)
			require.Error(t, err)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusConflict, statusErr.Status)
			assert.Equal(t, tt.expectedCanOverwrite, statusErr.CanOverwrite)
			assert.Equal(t, tt.expectedDetail, statusErr.Detail)
		})
	}
}

func TestClient_Shorten_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Not authenticated"}`))
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	_, err := client.Shorten(context.Background(), "https://example.com", "")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
	assert.Equal(t, "Not authenticated", statusErr.Detail)
}

func TestClient_Shorten_NoResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // соединение заведомо недоступно

	client := New(server.URL, zap.NewNop())

	_, err := client.Shorten(context.Background(), "https://example.com", "")
	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestClient_LinkAccount_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/link-account", r.URL.Path)
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))

		var request model.LinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "google-oauth2|1", request.PrimaryUserID)
		assert.Equal(t, "42", request.SecondaryUserID)
		assert.Equal(t, "github", request.Provider)

		json.NewEncoder(w).Encode(model.LinkResponse{Message: "Accounts linked"})
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	message, err := client.LinkAccount(context.Background(), "token123", model.LinkRequest{
		PrimaryUserID:   "google-oauth2|1",
		SecondaryUserID: "42",
		Provider:        "github",
	})
	require.NoError(t, err)
	assert.Equal(t, "Accounts linked", message)
}

func TestClient_LinkAccount_ErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "identity already linked"}`))
	}))
	defer server.Close()

	client := New(server.URL, zap.NewNop())

	_, err := client.LinkAccount(context.Background(), "token", model.LinkRequest{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Equal(t, "identity already linked", statusErr.Detail)
}

func TestParseStatusError_NonJSONBody(t *testing.T) {
	statusErr := parseStatusError(http.StatusBadGateway, []byte("upstream unavailable\n"))

	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
	assert.Equal(t, "upstream unavailable", statusErr.Detail)
	assert.False(t, statusErr.CanOverwrite)
}

func TestStatusError_Error(t *testing.T) {
	assert.Equal(t, "backend returned status 500", (&StatusError{Status: 500}).Error())
	assert.Equal(t, "backend returned status 409: alias exists", (&StatusError{Status: 409, Detail: "alias exists"}).Error())

	// StatusError различим через errors.As после оборачивания
	wrapped := errors.Join(errors.New("context"), &StatusError{Status: 409})
	var statusErr *StatusError
	assert.ErrorAs(t, wrapped, &statusErr)
}
