package handler

import (
	"net/http"
	"os"

	"backend/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// Root возвращает сообщение о работоспособности сервиса
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Interior Design Quotation API"})
}

// TestDatabase проверяет подключение к базе данных
// @Summary Диагностика хранилища
// @Description Состояние подключения и список таблиц; недоступная БД возвращается как статус, а не ошибка
// @Tags Health
// @Produce json
// @Success 200 {object} dto.DatabaseCheckResponse
// @Router /test [get]
func (h *Handler) TestDatabase(c *gin.Context) {
	response := dto.DatabaseCheckResponse{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if os.Getenv("DB_HOST") != "" {
		response.DatabaseURL = "set"
	} else {
		response.DatabaseURL = "not set"
	}

	if h.Repository == nil {
		response.Database = "not initialized"
		c.JSON(http.StatusOK, response)
		return
	}

	if err := h.Repository.Ping(); err != nil {
		response.Database = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}

	response.Database = "connected"
	response.ConnectionStatus = "connected"
	response.DatabaseName = h.Repository.DatabaseName()

	tables, err := h.Repository.TableNames()
	if err != nil {
		response.Database = "connected, but error: " + err.Error()
	} else {
		response.Collections = tables
	}

	c.JSON(http.StatusOK, response)
}
