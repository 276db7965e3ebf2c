package repository

import (
	"testing"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newQuotation(employeeID, status string, total float64) *ds.Quotation {
	return &ds.Quotation{
		EmployeeID: employeeID,
		ClientName: "Иванов Иван",
		Subtotal:   total,
		Total:      total,
		Status:     status,
	}
}

func TestCreateQuotation(t *testing.T) {
	r := setupTestDB(t)
	employeeID := ds.NewID()

	quotation := newQuotation(employeeID, ds.QuotationStatusDraft, 150)
	quotation.Items = []ds.QuotationItem{
		{PackageID: ds.NewID(), Quantity: 1, UnitPrice: 100, Total: 100},
		{PackageID: ds.NewID(), Quantity: 2, UnitPrice: 25, Total: 50},
	}

	require.NoError(t, r.CreateQuotation(quotation))

	// Идентификатор и отметки времени проставляет хранилище
	assert.True(t, ds.IsValidID(quotation.ID))
	assert.False(t, quotation.CreatedAt.IsZero())
	assert.False(t, quotation.UpdatedAt.IsZero())

	stored, err := r.GetQuotationByID(quotation.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 0, stored.Items[0].Position)
	assert.Equal(t, 100.0, stored.Items[0].Total)
	assert.Equal(t, 1, stored.Items[1].Position)
	assert.Equal(t, stored.ID, stored.Items[1].QuotationID)
}

func TestGetQuotationByIDNotFound(t *testing.T) {
	r := setupTestDB(t)

	_, err := r.GetQuotationByID(ds.NewID())
	require.Error(t, err)
	assert.Equal(t, apperr.ErrNotFound, err)
}

func TestGetQuotationsFilters(t *testing.T) {
	r := setupTestDB(t)
	employee := ds.NewID()
	other := ds.NewID()
	now := time.Now().UTC()

	older := newQuotation(employee, ds.QuotationStatusApproved, 100)
	older.CreatedAt = now.Add(-2 * time.Hour)
	newer := newQuotation(employee, ds.QuotationStatusApproved, 200)
	newer.CreatedAt = now.Add(-1 * time.Hour)
	draft := newQuotation(employee, ds.QuotationStatusDraft, 50)
	draft.CreatedAt = now.Add(-3 * time.Hour)
	foreign := newQuotation(other, ds.QuotationStatusApproved, 75)
	foreign.CreatedAt = now.Add(-30 * time.Minute)

	for _, q := range []*ds.Quotation{older, newer, draft, foreign} {
		require.NoError(t, r.CreateQuotation(q))
	}

	t.Run("no filters returns everything newest first", func(t *testing.T) {
		quotations, err := r.GetQuotations("", "")
		require.NoError(t, err)
		require.Len(t, quotations, 4)
		assert.Equal(t, foreign.ID, quotations[0].ID)
		assert.Equal(t, newer.ID, quotations[1].ID)
		assert.Equal(t, older.ID, quotations[2].ID)
		assert.Equal(t, draft.ID, quotations[3].ID)
	})

	t.Run("filters are AND-combined", func(t *testing.T) {
		quotations, err := r.GetQuotations(employee, ds.QuotationStatusApproved)
		require.NoError(t, err)
		require.Len(t, quotations, 2)
		assert.Equal(t, newer.ID, quotations[0].ID)
		assert.Equal(t, older.ID, quotations[1].ID)
	})

	t.Run("status filter alone", func(t *testing.T) {
		quotations, err := r.GetQuotations("", ds.QuotationStatusDraft)
		require.NoError(t, err)
		require.Len(t, quotations, 1)
		assert.Equal(t, draft.ID, quotations[0].ID)
	})
}

func TestUpdateQuotationMerge(t *testing.T) {
	r := setupTestDB(t)
	employee := ds.NewID()

	quotation := newQuotation(employee, ds.QuotationStatusDraft, 150)
	quotation.Notes = strPtr("первичная смета")
	quotation.Items = []ds.QuotationItem{
		{PackageID: ds.NewID(), Quantity: 1, UnitPrice: 150, Total: 150},
	}
	require.NoError(t, r.CreateQuotation(quotation))

	t.Run("updates only supplied fields", func(t *testing.T) {
		updated, err := r.UpdateQuotation(quotation.ID, map[string]interface{}{
			"status": ds.QuotationStatusSent,
		}, nil)
		require.NoError(t, err)

		assert.Equal(t, ds.QuotationStatusSent, updated.Status)
		// Остальные поля не тронуты, итоги не пересчитаны
		assert.Equal(t, quotation.ClientName, updated.ClientName)
		assert.Equal(t, 150.0, updated.Subtotal)
		assert.Equal(t, 150.0, updated.Total)
		require.NotNil(t, updated.Notes)
		assert.Equal(t, "первичная смета", *updated.Notes)
		require.Len(t, updated.Items, 1)
	})

	t.Run("replaces items wholesale when supplied", func(t *testing.T) {
		before, err := r.GetQuotationByID(quotation.ID)
		require.NoError(t, err)

		items := []ds.QuotationItem{
			{PackageID: ds.NewID(), Quantity: 3, UnitPrice: 10, Total: 30},
			{PackageID: ds.NewID(), Quantity: 1, UnitPrice: 20, Total: 20},
		}
		updated, err := r.UpdateQuotation(quotation.ID, map[string]interface{}{}, items)
		require.NoError(t, err)

		require.Len(t, updated.Items, 2)
		assert.Equal(t, 30.0, updated.Items[0].Total)
		assert.Equal(t, 1, updated.Items[1].Position)
		// Итоги при обновлении не выводятся из позиций
		assert.Equal(t, 150.0, updated.Subtotal)
		// Замена позиций без скалярных полей тоже двигает updated_at
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.UpdateQuotation(ds.NewID(), map[string]interface{}{"status": "sent"}, nil)
		assert.Equal(t, apperr.ErrNotFound, err)
	})
}

func TestDeleteQuotation(t *testing.T) {
	r := setupTestDB(t)

	quotation := newQuotation(ds.NewID(), ds.QuotationStatusDraft, 10)
	quotation.Items = []ds.QuotationItem{
		{PackageID: ds.NewID(), Quantity: 1, UnitPrice: 10, Total: 10},
	}
	require.NoError(t, r.CreateQuotation(quotation))

	require.NoError(t, r.DeleteQuotation(quotation.ID))

	_, err := r.GetQuotationByID(quotation.ID)
	assert.Equal(t, apperr.ErrNotFound, err)

	// Повторное удаление того же ID — NotFound
	err = r.DeleteQuotation(quotation.ID)
	assert.Equal(t, apperr.ErrNotFound, err)
}
