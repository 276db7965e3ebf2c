package repository

import (
	"time"

	"backend/internal/app/ds"
)

// PerformanceSummary — сводка показателей сотрудника по его сметам
type PerformanceSummary struct {
	TotalQuotations  int64   `gorm:"column:total_quotations"`
	Last30Quotations int64   `gorm:"column:last30_quotations"`
	TotalRevenue     float64 `gorm:"column:total_revenue"`
	AvgQuoteValue    float64 `gorm:"column:avg_quote_value"`
}

// GetEmployeePerformance считает все четыре показателя одним запросом:
// общее число смет, число смет за окно начиная с since, суммарную выручку
// и среднюю стоимость сметы. Для сотрудника без смет все значения нулевые.
func (r *Repository) GetEmployeePerformance(employeeID string, since time.Time) (*PerformanceSummary, error) {
	var summary PerformanceSummary
	err := r.db.Model(&ds.Quotation{}).
		Select("COUNT(*) AS total_quotations, "+
			"COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0) AS last30_quotations, "+
			"COALESCE(SUM(total), 0) AS total_revenue, "+
			"COALESCE(AVG(total), 0) AS avg_quote_value", since).
		Where("employee_id = ?", employeeID).
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
