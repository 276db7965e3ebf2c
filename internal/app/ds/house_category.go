package ds

import (
	"time"

	"gorm.io/gorm"
)

// 2. Таблица категорий жилья (квартира, вилла и т.д.)
type HouseCategory struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description *string   `gorm:"type:text"`
	IsActive    bool      `gorm:"type:boolean;default:true;not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (c *HouseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
