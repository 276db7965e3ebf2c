package ds

import "github.com/google/uuid"

// IsValidID проверяет формат идентификатора записи (UUID).
// Существование самой записи не проверяется — только формат.
func IsValidID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// NewID генерирует новый идентификатор записи
func NewID() string {
	return uuid.NewString()
}
