package ds

import (
	"time"

	"gorm.io/gorm"
)

// 4. Таблица пакетов услуг по ремонту
type Package struct {
	ID            string    `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   *string   `gorm:"type:text"`
	CategoryID    *string   `gorm:"type:uuid;index"` // Nullable ссылка на HouseCategory
	SubcategoryID *string   `gorm:"type:uuid;index"` // Nullable ссылка на Subcategory
	Features      []string  `gorm:"serializer:json;type:text"`
	Price         float64   `gorm:"type:decimal(12,2);not null"` // Базовая цена пакета
	IsActive      bool      `gorm:"type:boolean;default:true;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}
