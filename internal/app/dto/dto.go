package dto

import (
	"time"

	"backend/internal/app/ds"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

// Все отметки времени в ответах сериализуются строкой в ISO-8601 (RFC3339)
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ============ Пользователи (Users) ============

type CreateUserRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Role      string  `json:"role" binding:"required,oneof=admin employee"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Role      *string `json:"role" binding:"omitempty,oneof=admin employee"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  *bool   `json:"is_active"`
}

// Fields возвращает карту полей для частичного обновления (merge-семантика)
func (r *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.AvatarURL != nil {
		fields["avatar_url"] = *r.AvatarURL
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

type UserResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func ToUserResponse(u *ds.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// ============ Категории жилья (House Categories) ============

type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateCategoryRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToCategoryResponse(c *ds.HouseCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

// ============ Подкатегории (Subcategories) ============

type CreateSubcategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	CategoryID  string  `json:"category_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateSubcategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *string `json:"category_id"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateSubcategoryRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

type SubcategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CategoryID  string  `json:"category_id"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func ToSubcategoryResponse(s *ds.Subcategory) SubcategoryResponse {
	return SubcategoryResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CategoryID:  s.CategoryID,
		IsActive:    s.IsActive,
		CreatedAt:   formatTime(s.CreatedAt),
		UpdatedAt:   formatTime(s.UpdatedAt),
	}
}

// ============ Пакеты (Packages) ============

type CreatePackageRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   *string  `json:"description"`
	CategoryID    *string  `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
	Features      []string `json:"features"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type UpdatePackageRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	CategoryID    *string   `json:"category_id"`
	SubcategoryID *string   `json:"subcategory_id"`
	Features      *[]string `json:"features"`
	Price         *float64  `json:"price" binding:"omitempty,gte=0"`
	IsActive      *bool     `json:"is_active"`
}

func (r *UpdatePackageRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.SubcategoryID != nil {
		fields["subcategory_id"] = *r.SubcategoryID
	}
	if r.Features != nil {
		fields["features"] = *r.Features
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.IsActive != nil {
		fields["is_active"] = *r.IsActive
	}
	return fields
}

type PackageResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	CategoryID    *string  `json:"category_id"`
	SubcategoryID *string  `json:"subcategory_id"`
	Features      []string `json:"features"`
	Price         float64  `json:"price"`
	IsActive      bool     `json:"is_active"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func ToPackageResponse(p *ds.Package) PackageResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PackageResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SubcategoryID: p.SubcategoryID,
		Features:      features,
		Price:         p.Price,
		IsActive:      p.IsActive,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

// ============ Сметы (Quotations) ============

type QuotationItemRequest struct {
	PackageID string   `json:"package_id" binding:"required"`
	Name      *string  `json:"name"`
	Quantity  int      `json:"quantity" binding:"omitempty,gte=1"` // По умолчанию 1
	UnitPrice *float64 `json:"unit_price" binding:"required,gte=0"`
	Total     *float64 `json:"total" binding:"required,gte=0"`
}

type CreateQuotationRequest struct {
	EmployeeID      string                 `json:"employee_id" binding:"required"`
	ClientName      string                 `json:"client_name" binding:"required"`
	ClientContact   *string                `json:"client_contact"`
	HouseCategoryID *string                `json:"house_category_id"`
	SubcategoryID   *string                `json:"subcategory_id"`
	Items           []QuotationItemRequest `json:"items" binding:"omitempty,dive"`
	Subtotal        float64                `json:"subtotal" binding:"gte=0"`
	Discount        float64                `json:"discount" binding:"gte=0"`
	Tax             float64                `json:"tax" binding:"gte=0"`
	Total           float64                `json:"total" binding:"gte=0"`
	Status          string                 `json:"status" binding:"omitempty,oneof=draft sent approved rejected"`
	Notes           *string                `json:"notes"`
}

type UpdateQuotationRequest struct {
	EmployeeID      *string                 `json:"employee_id"`
	ClientName      *string                 `json:"client_name"`
	ClientContact   *string                 `json:"client_contact"`
	HouseCategoryID *string                 `json:"house_category_id"`
	SubcategoryID   *string                 `json:"subcategory_id"`
	Items           *[]QuotationItemRequest `json:"items" binding:"omitempty,dive"`
	Subtotal        *float64                `json:"subtotal" binding:"omitempty,gte=0"`
	Discount        *float64                `json:"discount" binding:"omitempty,gte=0"`
	Tax             *float64                `json:"tax" binding:"omitempty,gte=0"`
	Total           *float64                `json:"total" binding:"omitempty,gte=0"`
	Status          *string                 `json:"status" binding:"omitempty,oneof=draft sent approved rejected"`
	Notes           *string                 `json:"notes"`
}

// Fields возвращает карту скалярных полей для частичного обновления.
// Позиции сметы (items) обрабатываются отдельно — заменой целиком.
// Итоги при обновлении не пересчитываются, клиент отвечает за согласованность.
func (r *UpdateQuotationRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.EmployeeID != nil {
		fields["employee_id"] = *r.EmployeeID
	}
	if r.ClientName != nil {
		fields["client_name"] = *r.ClientName
	}
	if r.ClientContact != nil {
		fields["client_contact"] = *r.ClientContact
	}
	if r.HouseCategoryID != nil {
		fields["house_category_id"] = *r.HouseCategoryID
	}
	if r.SubcategoryID != nil {
		fields["subcategory_id"] = *r.SubcategoryID
	}
	if r.Subtotal != nil {
		fields["subtotal"] = *r.Subtotal
	}
	if r.Discount != nil {
		fields["discount"] = *r.Discount
	}
	if r.Tax != nil {
		fields["tax"] = *r.Tax
	}
	if r.Total != nil {
		fields["total"] = *r.Total
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Notes != nil {
		fields["notes"] = *r.Notes
	}
	return fields
}

type QuotationItemResponse struct {
	PackageID string  `json:"package_id"`
	Name      *string `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

type QuotationResponse struct {
	ID              string                  `json:"id"`
	EmployeeID      string                  `json:"employee_id"`
	ClientName      string                  `json:"client_name"`
	ClientContact   *string                 `json:"client_contact"`
	HouseCategoryID *string                 `json:"house_category_id"`
	SubcategoryID   *string                 `json:"subcategory_id"`
	Items           []QuotationItemResponse `json:"items"`
	Subtotal        float64                 `json:"subtotal"`
	Discount        float64                 `json:"discount"`
	Tax             float64                 `json:"tax"`
	Total           float64                 `json:"total"`
	Status          string                  `json:"status"`
	Notes           *string                 `json:"notes"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

func ToQuotationResponse(q *ds.Quotation) QuotationResponse {
	items := make([]QuotationItemResponse, len(q.Items))
	for i, item := range q.Items {
		items[i] = QuotationItemResponse{
			PackageID: item.PackageID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		}
	}
	return QuotationResponse{
		ID:              q.ID,
		EmployeeID:      q.EmployeeID,
		ClientName:      q.ClientName,
		ClientContact:   q.ClientContact,
		HouseCategoryID: q.HouseCategoryID,
		SubcategoryID:   q.SubcategoryID,
		Items:           items,
		Subtotal:        q.Subtotal,
		Discount:        q.Discount,
		Tax:             q.Tax,
		Total:           q.Total,
		Status:          q.Status,
		Notes:           q.Notes,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

// ============ Показатели сотрудника (Performance) ============

type PerformanceResponse struct {
	TotalQuotations  int64   `json:"total_quotations"`
	Last30Quotations int64   `json:"last30_quotations"`
	TotalRevenue     float64 `json:"total_revenue"`
	AvgQuoteValue    float64 `json:"avg_quote_value"`
}

// ============ Диагностика (Health) ============

type DatabaseCheckResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
