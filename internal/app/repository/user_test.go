package repository

import (
	"testing"
	"time"

	"backend/internal/app/apperr"
	"backend/internal/app/ds"
	"backend/internal/app/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	r := setupTestDB(t)
	now := time.Now().UTC()

	admin := &ds.User{Name: "Анна", Email: "anna@studio.ru", Role: role.Admin, IsActive: true}
	admin.CreatedAt = now.Add(-2 * time.Hour)
	employee := &ds.User{Name: "Борис", Email: "boris@studio.ru", Role: role.Employee, IsActive: true}
	employee.CreatedAt = now.Add(-1 * time.Hour)

	require.NoError(t, r.CreateUser(admin))
	require.NoError(t, r.CreateUser(employee))
	assert.True(t, ds.IsValidID(admin.ID))

	t.Run("list newest first with role filter", func(t *testing.T) {
		users, err := r.GetUsers("")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, employee.ID, users[0].ID)

		admins, err := r.GetUsers("admin")
		require.NoError(t, err)
		require.Len(t, admins, 1)
		assert.Equal(t, admin.ID, admins[0].ID)
	})

	t.Run("merge update leaves other fields untouched", func(t *testing.T) {
		phone := "+7 900 000-00-00"
		updated, err := r.UpdateUser(employee.ID, map[string]interface{}{"phone": phone})
		require.NoError(t, err)

		require.NotNil(t, updated.Phone)
		assert.Equal(t, phone, *updated.Phone)
		assert.Equal(t, "Борис", updated.Name)
		assert.Equal(t, "boris@studio.ru", updated.Email)
		assert.Equal(t, role.Employee, updated.Role)
		assert.True(t, updated.IsActive)
	})

	t.Run("update not found", func(t *testing.T) {
		_, err := r.UpdateUser(ds.NewID(), map[string]interface{}{"name": "x"})
		assert.Equal(t, apperr.ErrNotFound, err)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		require.NoError(t, r.DeleteUser(admin.ID))
		assert.Equal(t, apperr.ErrNotFound, r.DeleteUser(admin.ID))
	})
}

func TestCatalogCRUD(t *testing.T) {
	r := setupTestDB(t)

	category := &ds.HouseCategory{Name: "Квартира", IsActive: true}
	require.NoError(t, r.CreateCategory(category))

	subcategory := &ds.Subcategory{Name: "2BHK", CategoryID: category.ID, IsActive: true}
	require.NoError(t, r.CreateSubcategory(subcategory))

	pkg := &ds.Package{
		Name:       "Комфорт",
		CategoryID: &category.ID,
		Features:   []string{"дизайн-проект", "черновая отделка"},
		Price:      250000,
		IsActive:   true,
	}
	require.NoError(t, r.CreatePackage(pkg))

	t.Run("subcategory filter by category", func(t *testing.T) {
		subs, err := r.GetSubcategories(category.ID)
		require.NoError(t, err)
		require.Len(t, subs, 1)

		subs, err = r.GetSubcategories(ds.NewID())
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("package features survive round trip", func(t *testing.T) {
		stored, err := r.GetPackageByID(pkg.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"дизайн-проект", "черновая отделка"}, stored.Features)
	})

	t.Run("package filters are AND-combined", func(t *testing.T) {
		packages, err := r.GetPackages(category.ID, "")
		require.NoError(t, err)
		require.Len(t, packages, 1)

		packages, err = r.GetPackages(category.ID, ds.NewID())
		require.NoError(t, err)
		assert.Empty(t, packages)
	})

	t.Run("dangling reference survives category delete", func(t *testing.T) {
		// Каскада нет: подкатегория остается со ссылкой на удаленную категорию
		require.NoError(t, r.DeleteCategory(category.ID))

		stored, err := r.GetSubcategoryByID(subcategory.ID)
		require.NoError(t, err)
		assert.Equal(t, category.ID, stored.CategoryID)
	})
}
