package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пользователей

func (r *Repository) CreateUser(user *ds.User) error {
	return r.db.Create(user).Error
}

// GetUsers возвращает пользователей, новые первыми; role — необязательный фильтр
func (r *Repository) GetUsers(role string) ([]ds.User, error) {
	var users []ds.User
	q := r.db.Order("created_at DESC")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *Repository) GetUserByID(id string) (*ds.User, error) {
	var user ds.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser выполняет частичное обновление: заменяются только переданные поля
func (r *Repository) UpdateUser(id string, fields map[string]interface{}) (*ds.User, error) {
	user, err := r.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err = r.db.Model(user).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetUserByID(id)
}

func (r *Repository) DeleteUser(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
