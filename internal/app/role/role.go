package role

// Роли пользователей системы
type Role string

const (
	Admin    Role = "admin"    // Администратор (управление справочниками)
	Employee Role = "employee" // Сотрудник (создание смет)
)
