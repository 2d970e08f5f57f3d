package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage управляет персистентным хранилищем сессионных флагов в JSON файле.
// Файл переживает завершение процесса на время redirect-логина.
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage.
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все флаги из файла.
func (fs *FileStorage) Load() (FlagMap, error) {
	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return FlagMap{}, nil
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return FlagMap{}, nil
	}

	var flags FlagMap
	if err := json.Unmarshal(data, &flags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return flags, nil
}

// Save сохраняет все флаги в файл.
func (fs *FileStorage) Save(flags FlagMap) error {
	data, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fs.filePath), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(fs.filePath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Delete удаляет файл состояния.
func (fs *FileStorage) Delete() error {
	err := os.Remove(fs.filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
