package handler

import (
	"io"
	"net/http"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/role"
	"backend/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GetUsers получает список пользователей
// @Summary Список пользователей
// @Description Возвращает пользователей, новые первыми, с фильтром по роли
// @Tags Users
// @Produce json
// @Param role query string false "Фильтр по роли (admin/employee)"
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/users [get]
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.Repository.GetUsers(c.Query("role"))
	if err != nil {
		h.handleError(c, err, "Ошибка получения пользователей")
		return
	}

	response := make([]dto.UserResponse, len(users))
	for i := range users {
		response[i] = dto.ToUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser создает пользователя
// @Summary Создание пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	user := ds.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      role.Role(req.Role),
		Phone:     req.Phone,
		AvatarURL: req.AvatarURL,
		IsActive:  true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.Repository.CreateUser(&user); err != nil {
		h.handleError(c, err, "Ошибка создания пользователя")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(&user))
}

// UpdateUser частично обновляет пользователя
// @Summary Обновление пользователя
// @Description Заменяет только переданные поля (merge-семантика)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body dto.UpdateUserRequest true "Поля для обновления"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	user, err := h.Repository.UpdateUser(id, req.Fields())
	if err != nil {
		h.handleError(c, err, "Ошибка обновления пользователя")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser удаляет пользователя
// @Summary Удаление пользователя
// @Tags Users
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	// Сначала получаем пользователя, чтобы убрать аватар из MinIO
	user, _ := h.Repository.GetUserByID(id)
	if user != nil && user.AvatarURL != nil && *user.AvatarURL != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*user.AvatarURL); err != nil {
			logrus.Warnf("Failed to delete avatar from MinIO: %v", err)
		}
	}

	if err := h.Repository.DeleteUser(id); err != nil {
		h.handleError(c, err, "Ошибка удаления пользователя")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

// UploadAvatar загружает аватар пользователя в MinIO
// @Summary Загрузка аватара
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID пользователя"
// @Param avatar formData file true "Файл изображения"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/users/{id}/avatar [post]
func (h *Handler) UploadAvatar(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Файловое хранилище недоступно")
		return
	}

	user, err := h.Repository.GetUserByID(id)
	if err != nil {
		h.handleError(c, err, "Ошибка получения пользователя")
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Не удалось прочитать файл")
		return
	}

	// Старый аватар удаляем, чтобы не копить мусор в бакете
	if user.AvatarURL != nil && *user.AvatarURL != "" {
		if err := h.MinIOClient.DeleteFile(*user.AvatarURL); err != nil {
			logrus.Warnf("Failed to delete old avatar: %v", err)
		}
	}

	filename, err := h.MinIOClient.UploadAvatar(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading avatar: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки файла")
		return
	}

	updated, err := h.Repository.UpdateUser(id, map[string]interface{}{"avatar_url": filename})
	if err != nil {
		h.handleError(c, err, "Ошибка обновления пользователя")
		return
	}

	// В ответе отдаем временную ссылку на файл; в базе хранится имя объекта
	response := dto.ToUserResponse(updated)
	if url, err := h.MinIOClient.GetFileURL(filename); err == nil {
		response.AvatarURL = &url
	} else {
		logrus.Warnf("Failed to presign avatar URL: %v", err)
	}

	c.JSON(http.StatusOK, response)
}
