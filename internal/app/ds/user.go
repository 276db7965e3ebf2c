package ds

import (
	"time"

	"backend/internal/app/role"

	"gorm.io/gorm"
)

// 1. Таблица пользователей (администраторы и сотрудники)
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(100);not null"`
	Role      role.Role `gorm:"type:varchar(20);not null"` // admin, employee
	Phone     *string   `gorm:"type:varchar(30)"`          // Nullable
	AvatarURL *string   `gorm:"type:varchar(255)"`         // Nullable
	IsActive  bool      `gorm:"type:boolean;default:true;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	return nil
}
