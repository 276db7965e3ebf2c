package repository

import (
	"fmt"

	"backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.HouseCategory{},
		&ds.Subcategory{},
		&ds.Package{},
		&ds.Quotation{},
		&ds.QuotationItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}

// NewWithDB оборачивает готовое подключение (используется в тестах)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Close закрывает подключение к базе данных
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping проверяет доступность базы данных
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// TableNames возвращает список таблиц для диагностики
func (r *Repository) TableNames() ([]string, error) {
	return r.db.Migrator().GetTables()
}

// DatabaseName возвращает имя текущей базы данных
func (r *Repository) DatabaseName() string {
	return r.db.Migrator().CurrentDatabase()
}
