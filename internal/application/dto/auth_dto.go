package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest datos para crear un usuario.
type RegisterRequest struct {
	Username     string   `json:"username" validate:"required"`
	Password     string   `json:"password" validate:"required,min=8"`
	FullName     string   `json:"full_name"`
	Role         string   `json:"role" validate:"omitempty,oneof=admin manager"`
	WarehouseIDs []string `json:"warehouse_ids"`
}

// RegisterResponse usuario recién creado (sin hash).
type RegisterResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	Token        string   `json:"token"`
	UserID       string   `json:"user_id"`
	FullName     string   `json:"full_name"`
	Role         string   `json:"role"`
	WarehouseIDs []string `json:"warehouse_ids"`
}
