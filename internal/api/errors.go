package api

import (
	"errors"
	"fmt"
)

// ErrNoResponse означает, что ответ от бэкенда не был получен вовсе
// (сетевая ошибка, таймаут, обрыв соединения).
var ErrNoResponse = errors.New("no response from backend")

// StatusError представляет ответ бэкенда с неуспешным HTTP статусом.
type StatusError struct {
	Status int
	Detail string
	// CanOverwrite устанавливается для 409: алиас уже существует,
	// но принадлежит текущему пользователю и может быть перезаписан.
	CanOverwrite bool
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
}
