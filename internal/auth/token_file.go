package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// tokenRecord представляет сохранённые токены сессии.
// Поверх стандартного OAuth2 токена хранится identity-токен провайдера.
type tokenRecord struct {
	oauth2.Token
	IDToken string `json:"id_token,omitempty"`
}

func newTokenRecord(token *oauth2.Token) *tokenRecord {
	record := &tokenRecord{Token: *token}
	if idToken, ok := token.Extra("id_token").(string); ok {
		record.IDToken = idToken
	}
	return record
}

// tokenFile управляет персистентным хранилищем токенов в JSON файле.
type tokenFile struct {
	filePath string
}

func newTokenFile(filePath string) *tokenFile {
	return &tokenFile{filePath: filePath}
}

// Load загружает сохранённые токены. Отсутствие файла означает
// отсутствие сессии.
func (tf *tokenFile) Load() (*tokenRecord, error) {
	data, err := os.ReadFile(tf.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var record tokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token file: %w", err)
	}

	return &record, nil
}

// Save сохраняет токены с правами доступа только для владельца.
func (tf *tokenFile) Save(record *tokenRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(tf.filePath), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(tf.filePath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Delete удаляет файл токенов. Отсутствие файла не является ошибкой.
func (tf *tokenFile) Delete() error {
	err := os.Remove(tf.filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
