package validation

import (
	"backend/internal/app/apperr"
	"backend/internal/app/ds"
)

// Валидаторы ссылочных полей по ресурсам.
// Проверяется только формат идентификатора — существование записи
// по ссылке не проверяется (висячие ссылки допустимы).

// PathID проверяет идентификатор из пути запроса
func PathID(id string) error {
	if !ds.IsValidID(id) {
		return apperr.ErrInvalidID
	}
	return nil
}

// SubcategoryRefs проверяет ссылки подкатегории: category_id обязателен
func SubcategoryRefs(categoryID string) error {
	if !ds.IsValidID(categoryID) {
		return apperr.InvalidReference("category_id")
	}
	return nil
}

// PackageRefs проверяет ссылки пакета: обе ссылки необязательны
func PackageRefs(categoryID, subcategoryID *string) error {
	if categoryID != nil && !ds.IsValidID(*categoryID) {
		return apperr.InvalidReference("category_id")
	}
	if subcategoryID != nil && !ds.IsValidID(*subcategoryID) {
		return apperr.InvalidReference("subcategory_id")
	}
	return nil
}

// QuotationRefs проверяет ссылки сметы: employee_id обязателен,
// house_category_id и subcategory_id — необязательны
func QuotationRefs(employeeID string, houseCategoryID, subcategoryID *string) error {
	if !ds.IsValidID(employeeID) {
		return apperr.InvalidReference("employee_id")
	}
	if houseCategoryID != nil && !ds.IsValidID(*houseCategoryID) {
		return apperr.InvalidReference("house_category_id")
	}
	if subcategoryID != nil && !ds.IsValidID(*subcategoryID) {
		return apperr.InvalidReference("subcategory_id")
	}
	return nil
}

// QuotationUpdateRefs проверяет ссылки при частичном обновлении сметы:
// здесь все три поля необязательны, проверяются только переданные
func QuotationUpdateRefs(employeeID, houseCategoryID, subcategoryID *string) error {
	if employeeID != nil && !ds.IsValidID(*employeeID) {
		return apperr.InvalidReference("employee_id")
	}
	if houseCategoryID != nil && !ds.IsValidID(*houseCategoryID) {
		return apperr.InvalidReference("house_category_id")
	}
	if subcategoryID != nil && !ds.IsValidID(*subcategoryID) {
		return apperr.InvalidReference("subcategory_id")
	}
	return nil
}

// EmployeeRef проверяет обязательную ссылку на сотрудника
func EmployeeRef(employeeID string) error {
	if !ds.IsValidID(employeeID) {
		return apperr.InvalidReference("employee_id")
	}
	return nil
}
