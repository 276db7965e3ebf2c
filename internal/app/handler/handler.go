package handler

import (
	"errors"
	"net/http"

	"backend/internal/app/apperr"
	"backend/internal/app/dto"
	"backend/internal/app/repository"
	"backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler содержит обработчики REST API
type Handler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
}

func NewHandler(r *repository.Repository, minioClient *storage.MinIOClient) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
	}
}

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

// handleError переводит типизированные ошибки в HTTP статусы:
// неверный ID / ссылка — 400, не найдено — 404, остальное — 500
func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		h.errorResponse(c, appErr.HTTPStatus(), appErr.Message)
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.errorResponse(c, http.StatusNotFound, apperr.ErrNotFound.Message)
		return
	}
	logrus.Error(fallback, ": ", err)
	h.errorResponse(c, http.StatusInternalServerError, fallback)
}

// requireStore отклоняет запросы, если хранилище не было инициализировано.
// Диагностика доступна через /test даже без подключения к БД.
func (h *Handler) requireStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Repository == nil {
			h.errorResponse(c, http.StatusInternalServerError, "Хранилище недоступно")
			c.Abort()
			return
		}
		c.Next()
	}
}
