package repository

import (
	"errors"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для смет

func itemsOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateQuotation сохраняет смету вместе с позициями
func (r *Repository) CreateQuotation(quotation *ds.Quotation) error {
	for i := range quotation.Items {
		quotation.Items[i].Position = i
	}
	return r.db.Create(quotation).Error
}

// GetQuotations возвращает сметы, новые первыми; фильтры по сотруднику
// и статусу необязательны и объединяются по И
func (r *Repository) GetQuotations(employeeID, status string) ([]ds.Quotation, error) {
	var quotations []ds.Quotation
	q := r.db.Preload("Items", itemsOrdered).Order("created_at DESC")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&quotations).Error
	if err != nil {
		return nil, err
	}
	return quotations, nil
}

func (r *Repository) GetQuotationByID(id string) (*ds.Quotation, error) {
	var quotation ds.Quotation
	err := r.db.Preload("Items", itemsOrdered).Where("id = ?", id).First(&quotation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quotation, nil
}

// UpdateQuotation выполняет частичное обновление скалярных полей.
// Если items != nil, позиции заменяются целиком.
// Итоги не пересчитываются — сохраняется ровно то, что прислал клиент.
func (r *Repository) UpdateQuotation(id string, fields map[string]interface{}, items []ds.QuotationItem) (*ds.Quotation, error) {
	quotation, err := r.GetQuotationByID(id)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		if items != nil {
			if err := tx.Where("quotation_id = ?", quotation.ID).Delete(&ds.QuotationItem{}).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].QuotationID = quotation.ID
				items[i].Position = i
			}
			if len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		if len(fields) > 0 {
			if err := tx.Model(&ds.Quotation{ID: quotation.ID}).Updates(fields).Error; err != nil {
				return err
			}
		} else if items != nil {
			// Замена позиций без скалярных полей тоже считается обновлением сметы
			if err := tx.Model(&ds.Quotation{ID: quotation.ID}).Update("updated_at", time.Now().UTC()).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetQuotationByID(id)
}

// DeleteQuotation удаляет смету вместе с позициями
func (r *Repository) DeleteQuotation(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&ds.Quotation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return tx.Where("quotation_id = ?", id).Delete(&ds.QuotationItem{}).Error
	})
}
