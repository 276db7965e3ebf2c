package apperr

import (
	"fmt"
	"net/http"
)

// AppError — типизированная ошибка уровня предметной области
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// HTTPStatus возвращает HTTP статус-код для ошибки
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidID, CodeInvalidReference:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

const (
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidReference = "INVALID_REFERENCE"
	CodeNotFound         = "NOT_FOUND"
)

var (
	ErrInvalidID = &AppError{Code: CodeInvalidID, Message: "Неверный ID"}
	ErrNotFound  = &AppError{Code: CodeNotFound, Message: "Запись не найдена"}
)

// InvalidReference — ссылочное поле присутствует, но имеет неверный формат
func InvalidReference(field string) *AppError {
	return &AppError{
		Code:    CodeInvalidReference,
		Message: fmt.Sprintf("Неверный %s", field),
	}
}
