package handler

import (
	"net/http"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/validation"

	"github.com/gin-gonic/gin"
)

// GetQuotations получает список смет
// @Summary Список смет
// @Description Возвращает сметы, новые первыми; фильтры по сотруднику и статусу объединяются по И
// @Tags Quotations
// @Produce json
// @Param employee_id query string false "Фильтр по сотруднику"
// @Param status query string false "Фильтр по статусу (draft/sent/approved/rejected)"
// @Success 200 {array} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations [get]
func (h *Handler) GetQuotations(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if employeeID != "" && !ds.IsValidID(employeeID) {
		h.handleError(c, apperr.ErrInvalidID, "")
		return
	}

	quotations, err := h.Repository.GetQuotations(employeeID, c.Query("status"))
	if err != nil {
		h.handleError(c, err, "Ошибка получения смет")
		return
	}

	response := make([]dto.QuotationResponse, len(quotations))
	for i := range quotations {
		response[i] = dto.ToQuotationResponse(&quotations[i])
	}
	c.JSON(http.StatusOK, response)
}

// GetQuotation получает одну смету
// @Summary Получение сметы по ID
// @Tags Quotations
// @Produce json
// @Param id path string true "ID сметы"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [get]
func (h *Handler) GetQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	quotation, err := h.Repository.GetQuotationByID(id)
	if err != nil {
		h.handleError(c, err, "Ошибка получения сметы")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// CreateQuotation создает смету
// @Summary Создание сметы
// @Description При subtotal=0 и непустых позициях subtotal и total выводятся сервером, иначе сохраняются значения клиента
// @Tags Quotations
// @Accept json
// @Produce json
// @Param request body dto.CreateQuotationRequest true "Данные сметы"
// @Success 201 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/quotations [post]
func (h *Handler) CreateQuotation(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Вся валидация выполняется до записи в хранилище
	if err := validation.QuotationRefs(req.EmployeeID, req.HouseCategoryID, req.SubcategoryID); err != nil {
		h.handleError(c, err, "")
		return
	}

	subtotal, total := resolveTotals(&req)

	status := req.Status
	if status == "" {
		status = ds.QuotationStatusDraft
	}

	quotation := ds.Quotation{
		EmployeeID:      req.EmployeeID,
		ClientName:      req.ClientName,
		ClientContact:   req.ClientContact,
		HouseCategoryID: req.HouseCategoryID,
		SubcategoryID:   req.SubcategoryID,
		Items:           buildQuotationItems(req.Items),
		Subtotal:        subtotal,
		Discount:        req.Discount,
		Tax:             req.Tax,
		Total:           total,
		Status:          status,
		Notes:           req.Notes,
	}

	if err := h.Repository.CreateQuotation(&quotation); err != nil {
		h.handleError(c, err, "Ошибка создания сметы")
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuotationResponse(&quotation))
}

// UpdateQuotation частично обновляет смету
// @Summary Обновление сметы
// @Description Заменяет только переданные поля; итоги не пересчитываются, позиции заменяются целиком
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "ID сметы"
// @Param request body dto.UpdateQuotationRequest true "Поля для обновления"
// @Success 200 {object} dto.QuotationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [put]
func (h *Handler) UpdateQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	var req dto.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if err := validation.QuotationUpdateRefs(req.EmployeeID, req.HouseCategoryID, req.SubcategoryID); err != nil {
		h.handleError(c, err, "")
		return
	}

	var items []ds.QuotationItem
	if req.Items != nil {
		items = buildQuotationItems(*req.Items)
	}

	quotation, err := h.Repository.UpdateQuotation(id, req.Fields(), items)
	if err != nil {
		h.handleError(c, err, "Ошибка обновления сметы")
		return
	}

	c.JSON(http.StatusOK, dto.ToQuotationResponse(quotation))
}

// DeleteQuotation удаляет смету
// @Summary Удаление сметы
// @Tags Quotations
// @Produce json
// @Param id path string true "ID сметы"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quotations/{id} [delete]
func (h *Handler) DeleteQuotation(c *gin.Context) {
	id := c.Param("id")
	if err := validation.PathID(id); err != nil {
		h.handleError(c, err, "")
		return
	}

	if err := h.Repository.DeleteQuotation(id); err != nil {
		h.handleError(c, err, "Ошибка удаления сметы")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}

// GetPerformance получает показатели сотрудника
// @Summary Показатели сотрудника
// @Description Количество смет (всего и за 30 дней), выручка и средняя стоимость сметы
// @Tags Performance
// @Produce json
// @Param employee_id query string true "ID сотрудника"
// @Success 200 {object} dto.PerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/performance [get]
func (h *Handler) GetPerformance(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if err := validation.EmployeeRef(employeeID); err != nil {
		h.handleError(c, err, "")
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -30)
	summary, err := h.Repository.GetEmployeePerformance(employeeID, since)
	if err != nil {
		h.handleError(c, err, "Ошибка расчета показателей")
		return
	}

	c.JSON(http.StatusOK, dto.PerformanceResponse{
		TotalQuotations:  summary.TotalQuotations,
		Last30Quotations: summary.Last30Quotations,
		TotalRevenue:     summary.TotalRevenue,
		AvgQuoteValue:    summary.AvgQuoteValue,
	})
}
