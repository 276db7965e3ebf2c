package repository

import (
	"testing"
	"time"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmployeePerformance(t *testing.T) {
	r := setupTestDB(t)
	employee := ds.NewID()
	other := ds.NewID()
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)

	t.Run("zero quotations gives all zeros", func(t *testing.T) {
		summary, err := r.GetEmployeePerformance(employee, since)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalQuotations)
		assert.Equal(t, int64(0), summary.Last30Quotations)
		assert.Equal(t, 0.0, summary.TotalRevenue)
		// Среднее по пустому множеству — 0, без деления на ноль
		assert.Equal(t, 0.0, summary.AvgQuoteValue)
	})

	t.Run("counts, revenue and average", func(t *testing.T) {
		old := newQuotation(employee, ds.QuotationStatusApproved, 300)
		old.CreatedAt = now.AddDate(0, 0, -40) // за пределами окна 30 дней
		recent := newQuotation(employee, ds.QuotationStatusSent, 100)
		recent.CreatedAt = now.AddDate(0, 0, -5)
		fresh := newQuotation(employee, ds.QuotationStatusDraft, 200)
		fresh.CreatedAt = now.Add(-time.Hour)
		foreign := newQuotation(other, ds.QuotationStatusApproved, 999)
		foreign.CreatedAt = now.Add(-time.Hour)

		for _, q := range []*ds.Quotation{old, recent, fresh, foreign} {
			require.NoError(t, r.CreateQuotation(q))
		}

		summary, err := r.GetEmployeePerformance(employee, since)
		require.NoError(t, err)

		// Чужие сметы не учитываются
		assert.Equal(t, int64(3), summary.TotalQuotations)
		assert.Equal(t, int64(2), summary.Last30Quotations)
		assert.InDelta(t, 600.0, summary.TotalRevenue, 0.001)
		assert.InDelta(t, 200.0, summary.AvgQuoteValue, 0.001)
	})
}
