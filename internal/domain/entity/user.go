package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa un usuario del sistema con acceso restringido por bodega.
// WarehouseIDs vacío con rol admin implica acceso a todas las bodegas.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         string
	WarehouseIDs []string
	CreatedAt    time.Time
}
