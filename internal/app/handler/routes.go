package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все REST API маршруты
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	// Корневой и диагностический эндпоинты доступны всегда
	router.GET("/", h.Root)
	router.GET("/test", h.TestDatabase)

	api := router.Group("/api")
	api.Use(h.requireStore())

	// ============ Пользователи (Users) ============
	users := api.Group("/users")
	{
		users.GET("", h.GetUsers)                   // GET список с фильтром по роли
		users.POST("", h.CreateUser)                // POST создание
		users.PUT("/:id", h.UpdateUser)             // PUT частичное обновление
		users.DELETE("/:id", h.DeleteUser)          // DELETE удаление
		users.POST("/:id/avatar", h.UploadAvatar)   // POST загрузка аватара
	}

	// ============ Категории жилья (House Categories) ============
	categories := api.Group("/categories")
	{
		categories.GET("", h.GetCategories)
		categories.POST("", h.CreateCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	// ============ Подкатегории (Subcategories) ============
	subcategories := api.Group("/subcategories")
	{
		subcategories.GET("", h.GetSubcategories) // фильтр по category_id
		subcategories.POST("", h.CreateSubcategory)
		subcategories.PUT("/:id", h.UpdateSubcategory)
		subcategories.DELETE("/:id", h.DeleteSubcategory)
	}

	// ============ Пакеты (Packages) ============
	packages := api.Group("/packages")
	{
		packages.GET("", h.GetPackages) // фильтры по category_id и subcategory_id
		packages.POST("", h.CreatePackage)
		packages.PUT("/:id", h.UpdatePackage)
		packages.DELETE("/:id", h.DeletePackage)
	}

	// ============ Сметы (Quotations) ============
	quotations := api.Group("/quotations")
	{
		quotations.GET("", h.GetQuotations) // фильтры по employee_id и status
		quotations.GET("/:id", h.GetQuotation)
		quotations.POST("", h.CreateQuotation)
		quotations.PUT("/:id", h.UpdateQuotation)
		quotations.DELETE("/:id", h.DeleteQuotation)
	}

	// ============ Показатели сотрудника ============
	api.GET("/performance", h.GetPerformance)
}
