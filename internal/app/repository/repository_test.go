package repository

import (
	"testing"

	"backend/internal/app/ds"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *Repository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&ds.User{},
		&ds.HouseCategory{},
		&ds.Subcategory{},
		&ds.Package{},
		&ds.Quotation{},
		&ds.QuotationItem{},
	)
	require.NoError(t, err)

	return NewWithDB(db)
}
