package handler

import (
	"net/http"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/validation"

	"github.com/gin-gonic/gin"
)

// Обработчики справочников: категории жилья, подкатегории, пакеты.
// Ссылочные поля проверяются только на формат — существование записей
// по ссылкам не проверяется.

// ============ Категории жилья ============

// GetCategories получает список категорий
// @Summary Список категорий жилья
// @Tags Categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.Repository.GetCategories()
	if err != nil {
		h.handleError(c, err, "Ошибка получения категорий")
		return
	}

	response := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		response[i] = dto.ToCategoryResponse(&categories[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory создает категорию
// @Summary Создание категории жилья
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Данные категории"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	category := ds.HouseCategory{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.Repository.CreateCategory(&category); err != nil {
		h.handleError(c, err, "Ошибка создания категории")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(&category))
}

// UpdateCategory частично обновляет категорию
// @Summary Обновление категории жилья
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "ID категории"
// @Param request body dto.UpdateCategoryRequest true "Поля для обновления"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	category, err := h.Repository.UpdateCategory(id, req.Fields())
	if err != nil {
		h.handleError(c, err, "Ошибка обновления категории")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory удаляет категорию
// @Summary Удаление категории жилья
// @Description Удаление без каскада: подкатегории и пакеты остаются
// @Tags Categories
// @Produce json
// @Param id path string true "ID категории"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	if err := h.Repository.DeleteCategory(id); err != nil {
		h.handleError(c, err, "Ошибка удаления категории")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

// ============ Подкатегории ============

// GetSubcategories получает список подкатегорий
// @Summary Список подкатегорий
// @Tags Subcategories
// @Produce json
// @Param category_id query string false "Фильтр по категории"
// @Success 200 {array} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/subcategories [get]
func (h *Handler) GetSubcategories(c *gin.Context) {
	categoryID := c.Query("category_id")
	if categoryID != "" && !ds.IsValidID(categoryID) {
		h.handleError(c, apperr.ErrInvalidID, "")
		return
	}

	subcategories, err := h.Repository.GetSubcategories(categoryID)
	if err != nil {
		h.handleError(c, err, "Ошибка получения подкатегорий")
		return
	}

	response := make([]dto.SubcategoryResponse, len(subcategories))
	for i := range subcategories {
		response[i] = dto.ToSubcategoryResponse(&subcategories[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreateSubcategory создает подкатегорию
// @Summary Создание подкатегории
// @Description category_id проверяется на формат, существование категории не проверяется
// @Tags Subcategories
// @Accept json
// @Produce json
// @Param request body dto.CreateSubcategoryRequest true "Данные подкатегории"
// @Success 201 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/subcategories [post]
func (h *Handler) CreateSubcategory(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := validation.SubcategoryRefs(req.CategoryID); err != nil {
		h.handleError(c, err, "")
		return
	}

	subcategory := ds.Subcategory{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		IsActive:    true,
	}
	if req.IsActive != nil {
		subcategory.IsActive = *req.IsActive
	}

	if err := h.Repository.CreateSubcategory(&subcategory); err != nil {
		h.handleError(c, err, "Ошибка создания подкатегории")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubcategoryResponse(&subcategory))
}

// UpdateSubcategory частично обновляет подкатегорию
// @Summary Обновление подкатегории
// @Tags Subcategories
// @Accept json
// @Produce json
// @Param id path string true "ID подкатегории"
// @Param request body dto.UpdateSubcategoryRequest true "Поля для обновления"
// @Success 200 {object} dto.SubcategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/subcategories/{id} [put]
func (h *Handler) UpdateSubcategory(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	var req dto.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if req.CategoryID != nil {
		if err := validation.SubcategoryRefs(*req.CategoryID); err != nil {
			h.handleError(c, err, "")
			return
		}
	}

	subcategory, err := h.Repository.UpdateSubcategory(id, req.Fields())
	if err != nil {
		h.handleError(c, err, "Ошибка обновления подкатегории")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubcategoryResponse(subcategory))
}

// DeleteSubcategory удаляет подкатегорию
// @Summary Удаление подкатегории
// @Tags Subcategories
// @Produce json
// @Param id path string true "ID подкатегории"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/subcategories/{id} [delete]
func (h *Handler) DeleteSubcategory(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	if err := h.Repository.DeleteSubcategory(id); err != nil {
		h.handleError(c, err, "Ошибка удаления подкатегории")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

// ============ Пакеты ============

// GetPackages получает список пакетов
// @Summary Список пакетов
// @Tags Packages
// @Produce json
// @Param category_id query string false "Фильтр по категории"
// @Param subcategory_id query string false "Фильтр по подкатегории"
// @Success 200 {array} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages [get]
func (h *Handler) GetPackages(c *gin.Context) {
	categoryID := c.Query("category_id")
	subcategoryID := c.Query("subcategory_id")
	if categoryID != "" && !ds.IsValidID(categoryID) {
		h.handleError(c, apperr.ErrInvalidID, "")
		return
	}
	if subcategoryID != "" && !ds.IsValidID(subcategoryID) {
		h.handleError(c, apperr.ErrInvalidID, "")
		return
	}

	packages, err := h.Repository.GetPackages(categoryID, subcategoryID)
	if err != nil {
		h.handleError(c, err, "Ошибка получения пакетов")
		return
	}

	response := make([]dto.PackageResponse, len(packages))
	for i := range packages {
		response[i] = dto.ToPackageResponse(&packages[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreatePackage создает пакет
// @Summary Создание пакета
// @Description Ссылки category_id/subcategory_id необязательны, проверяется только формат
// @Tags Packages
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Данные пакета"
// @Success 201 {object} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req dto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := validation.PackageRefs(req.CategoryID, req.SubcategoryID); err != nil {
		h.handleError(c, err, "")
		return
	}

	pkg := ds.Package{
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Features:      req.Features,
		Price:         *req.Price,
		IsActive:      true,
	}
	if pkg.Features == nil {
		pkg.Features = []string{}
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := h.Repository.CreatePackage(&pkg); err != nil {
		h.handleError(c, err, "Ошибка создания пакета")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPackageResponse(&pkg))
}

// UpdatePackage частично обновляет пакет
// @Summary Обновление пакета
// @Tags Packages
// @Accept json
// @Produce json
// @Param id path string true "ID пакета"
// @Param request body dto.UpdatePackageRequest true "Поля для обновления"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [put]
func (h *Handler) UpdatePackage(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	var req dto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := validation.PackageRefs(req.CategoryID, req.SubcategoryID); err != nil {
		h.handleError(c, err, "")
		return
	}

	pkg, err := h.Repository.UpdatePackage(id, req.Fields())
	if err != nil {
		h.handleError(c, err, "Ошибка обновления пакета")
		return
	}

	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// DeletePackage удаляет пакет
// @Summary Удаление пакета
// @Description Сметы, ссылающиеся на пакет, не затрагиваются
// @Tags Packages
// @Produce json
// @Param id path string true "ID пакета"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/packages/{id} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	if err := h.Repository.DeletePackage(id); err != nil {
		h.handleError(c, err, "Ошибка удаления пакета")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}
