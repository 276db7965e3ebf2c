package ds

import (
	"time"

	"gorm.io/gorm"
)

// 3. Таблица подкатегорий жилья (1BHK, 2BHK и т.д.)
// category_id проверяется только на формат, существование категории не проверяется
type Subcategory struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	CategoryID  string    `gorm:"type:uuid;not null;index"` // Ссылка на HouseCategory
	IsActive    bool      `gorm:"type:boolean;default:true;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}
