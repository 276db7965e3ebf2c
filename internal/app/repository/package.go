package repository

import (
	"errors"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для пакетов

func (r *Repository) CreatePackage(pkg *ds.Package) error {
	return r.db.Create(pkg).Error
}

// GetPackages возвращает пакеты, новые первыми; фильтры необязательны
// и объединяются по И
func (r *Repository) GetPackages(categoryID, subcategoryID string) ([]ds.Package, error) {
	var packages []ds.Package
	q := r.db.Order("created_at DESC")
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if subcategoryID != "" {
		q = q.Where("subcategory_id = ?", subcategoryID)
	}
	err := q.Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *Repository) GetPackageByID(id string) (*ds.Package, error) {
	var pkg ds.Package
	err := r.db.Where("id = ?", id).First(&pkg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *Repository) UpdatePackage(id string, fields map[string]interface{}) (*ds.Package, error) {
	pkg, err := r.GetPackageByID(id)
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err = r.db.Model(pkg).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	return r.GetPackageByID(id)
}

func (r *Repository) DeletePackage(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.Package{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
