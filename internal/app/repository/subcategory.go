package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для подкатегорий

func (r *Repository) CreateSubcategory(subcategory *ds.Subcategory) error {
	return r.db.Create(subcategory).Error
}

// GetSubcategories возвращает подкатегории, новые первыми;
// categoryID — необязательный фильтр
func (r *Repository) GetSubcategories(categoryID string) ([]ds.Subcategory, error) {
	var subcategories []ds.Subcategory
	q := r.db.Order("created_at DESC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Find(&subcategories).Error
	if err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *Repository) GetSubcategoryByID(id string) (*ds.Subcategory, error) {
	var subcategory ds.Subcategory
	err := r.db.Where("id = ?", id).First(&subcategory).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *Repository) UpdateSubcategory(id string, fields map[string]interface{}) (*ds.Subcategory, error) {
	subcategory, err := r.GetSubcategoryByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err = r.db.Model(subcategory).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetSubcategoryByID(id)
}

func (r *Repository) DeleteSubcategory(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.Subcategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
