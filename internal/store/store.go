package store

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

var ErrNotFound = errors.New("key not found")

// Store определяет интерфейс сессионного key/value хранилища.
// Семантика повторяет sessionStorage браузера: Set перезаписывает,
// Remove идемпотентен, Clear сбрасывает всё состояние.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
	Clear() error
}

// FlagMap представляет маппинг сессионных ключей на значения.
type FlagMap = map[string]string

// MemoryStore хранит сессионные флаги в памяти процесса.
type MemoryStore struct {
	store FlagMap
	mutex sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(FlagMap),
	}
}

func (s *MemoryStore) Get(key string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	value, ok := s.store[key]

	if !ok {
		return "", fmt.Errorf("key %s: %w", key, ErrNotFound)
	}

	return value, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store[key] = value

	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.store, key)

	return nil
}

func (s *MemoryStore) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store = make(FlagMap)

	return nil
}

// InitializeWith инициализирует хранилище данными.
// Используется при загрузке состояния из файла.
func (s *MemoryStore) InitializeWith(data FlagMap) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	maps.Copy(s.store, data)
}

// Snapshot возвращает копию текущего состояния.
func (s *MemoryStore) Snapshot() FlagMap {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot := make(FlagMap, len(s.store))
	maps.Copy(snapshot, s.store)

	return snapshot
}
