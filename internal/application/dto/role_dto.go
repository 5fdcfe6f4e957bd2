package dto

// CreateRoleRequest datos para crear un rol.
type CreateRoleRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description,omitempty"`
}

// RoleResponse representación de un rol en respuestas.
type RoleResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}
