package ds

import (
	"time"

	"gorm.io/gorm"
)

// Статусы сметы
const (
	QuotationStatusDraft    = "draft"
	QuotationStatusSent     = "sent"
	QuotationStatusApproved = "approved"
	QuotationStatusRejected = "rejected"
)

// 5. Таблица смет
// Ссылочные поля проверяются только на формат, существование записей не проверяется
type Quotation struct {
	ID              string          `gorm:"type:uuid;primaryKey"`
	EmployeeID      string          `gorm:"type:uuid;not null;index"` // Сотрудник, оформивший смету
	ClientName      string          `gorm:"type:varchar(100);not null"`
	ClientContact   *string         `gorm:"type:varchar(100)"` // Телефон или email
	HouseCategoryID *string         `gorm:"type:uuid"`
	SubcategoryID   *string         `gorm:"type:uuid"`
	Items           []QuotationItem `gorm:"foreignKey:QuotationID"`
	Subtotal        float64         `gorm:"type:decimal(12,2);not null;default:0"`
	Discount        float64         `gorm:"type:decimal(12,2);not null;default:0"`
	Tax             float64         `gorm:"type:decimal(12,2);not null;default:0"`
	Total           float64         `gorm:"type:decimal(12,2);not null;default:0"`
	Status          string          `gorm:"type:varchar(20);not null;default:'draft';index"` // draft, sent, approved, rejected
	Notes           *string         `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = NewID()
	}
	return nil
}

// 6. Таблица позиций сметы (вложенные строки, не самостоятельный ресурс)
type QuotationItem struct {
	ID          uint    `gorm:"primaryKey"`
	QuotationID string  `gorm:"type:uuid;not null;index"`
	PackageID   string  `gorm:"type:uuid;not null"`
	Name        *string `gorm:"type:varchar(100)"`             // Название пакета на момент оформления
	Quantity    int     `gorm:"type:int;not null;default:1"`   // Количество, минимум 1
	UnitPrice   float64 `gorm:"type:decimal(12,2);not null"`   // Цена за единицу
	Total       float64 `gorm:"type:decimal(12,2);not null"`   // Сумма позиции (передается клиентом)
	Position    int     `gorm:"type:int;not null;default:0"`   // Порядок позиций в смете
}
