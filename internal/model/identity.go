package model

import "strings"

// IdentitySeparator разделяет провайдера и локальный идентификатор пользователя.
const IdentitySeparator = "|"

// Identity представляет идентификатор пользователя, выданный провайдером
// аутентификации, в формате "provider|user_id" (например "google-oauth2|12345").
// Две identity различны, если различаются их строковые значения.
type Identity string

func (i Identity) String() string {
	return string(i)
}

// IsZero проверяет, что identity не установлена.
func (i Identity) IsZero() bool {
	return i == ""
}

// Split разделяет identity на провайдера и локальный идентификатор
// по первому вхождению разделителя "|".
func (i Identity) Split() (provider, userID string) {
	provider, userID, found := strings.Cut(string(i), IdentitySeparator)
	if !found {
		return string(i), ""
	}
	return provider, userID
}

// Provider возвращает часть identity до первого "|".
func (i Identity) Provider() string {
	provider, _ := i.Split()
	return provider
}

// UserID возвращает локальную часть identity после первого "|".
func (i Identity) UserID() string {
	_, userID := i.Split()
	return userID
}
