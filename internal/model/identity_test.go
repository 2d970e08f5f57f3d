package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity_Split(t *testing.T) {
	tests := []struct {
		name             string
		identity         Identity
		expectedProvider string
		expectedUserID   string
	}{
		{
			name:             "Standard identity",
			identity:         "google-oauth2|12345",
			expectedProvider: "google-oauth2",
			expectedUserID:   "12345",
		},
		{
			name:             "Identity with separator inside user ID",
			identity:         "auth0|abc|def",
			expectedProvider: "auth0",
			expectedUserID:   "abc|def",
		},
		{
			name:             "No separator",
			identity:         "justausername",
			expectedProvider: "justausername",
			expectedUserID:   "",
		},
		{
			name:             "Empty identity",
			identity:         "",
			expectedProvider: "",
			expectedUserID:   "",
		},
		{
			name:             "Empty local part",
			identity:         "github|",
			expectedProvider: "github",
			expectedUserID:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, userID := tt.identity.Split()

			assert.Equal(t, tt.expectedProvider, provider)
			assert.Equal(t, tt.expectedUserID, userID)
			assert.Equal(t, tt.expectedProvider, tt.identity.Provider())
			assert.Equal(t, tt.expectedUserID, tt.identity.UserID())
		})
	}
}

func TestIdentity_IsZero(t *testing.T) {
	assert.True(t, Identity("").IsZero())
	assert.False(t, Identity("auth0|1").IsZero())
}
