package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для категорий жилья

func (r *Repository) CreateCategory(category *ds.HouseCategory) error {
	return r.db.Create(category).Error
}

func (r *Repository) GetCategories() ([]ds.HouseCategory, error) {
	var categories []ds.HouseCategory
	err := r.db.Order("created_at DESC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *Repository) GetCategoryByID(id string) (*ds.HouseCategory, error) {
	var category ds.HouseCategory
	err := r.db.Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) UpdateCategory(id string, fields map[string]interface{}) (*ds.HouseCategory, error) {
	category, err := r.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err = r.db.Model(category).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetCategoryByID(id)
}

// DeleteCategory удаляет категорию без каскада: подкатегории и пакеты,
// ссылающиеся на неё, остаются (висячие ссылки допустимы)
func (r *Repository) DeleteCategory(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.HouseCategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
