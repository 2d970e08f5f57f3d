package store

import "fmt"

// FileStore декоратор над MemoryStore, который добавляет персистентность
// через файл. Каждая мутация сразу сбрасывается на диск: состояние должно
// быть записано до того, как процесс уйдёт в redirect.
type FileStore struct {
	store       *MemoryStore
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает состояние из файла.
func NewFileStore(filePath string) (*FileStore, error) {
	memory := NewMemoryStore()
	fileStorage := NewFileStorage(filePath)

	fs := &FileStore{
		store:       memory,
		fileStorage: fileStorage,
	}

	flags, err := fileStorage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session state from file: %w", err)
	}
	memory.InitializeWith(flags)

	return fs, nil
}

// Get читает значение из in-memory store.
func (fs *FileStore) Get(key string) (string, error) {
	return fs.store.Get(key)
}

// Set записывает значение и сохраняет состояние в файл.
func (fs *FileStore) Set(key, value string) error {
	if err := fs.store.Set(key, value); err != nil {
		return err
	}

	if err := fs.fileStorage.Save(fs.store.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}

	return nil
}

// Remove удаляет ключ и сохраняет состояние в файл.
func (fs *FileStore) Remove(key string) error {
	if err := fs.store.Remove(key); err != nil {
		return err
	}

	if err := fs.fileStorage.Save(fs.store.Snapshot()); err != nil {
		return fmt.Errorf("failed to persist session state: %w", err)
	}

	return nil
}

// Clear сбрасывает состояние и удаляет файл.
func (fs *FileStore) Clear() error {
	if err := fs.store.Clear(); err != nil {
		return err
	}

	return fs.fileStorage.Delete()
}
