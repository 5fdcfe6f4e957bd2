package dto

import "time"

// CreateUserRequest datos para crear un usuario. Password viaja en claro solo
// hasta el caso de uso, que lo convierte en hash bcrypt antes de persistir.
type CreateUserRequest struct {
	FullName string  `json:"full_name" validate:"required,max=120"`
	Email    string  `json:"email" validate:"required,email,max=120"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password string  `json:"password" validate:"required,min=8"`
	RoleID   int64   `json:"role_id" validate:"required,gt=0"`
}

// UpdateUserRequest datos parciales para actualizar un usuario. Los campos
// nil no se tocan.
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=120"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	RoleID   *int64  `json:"role_id,omitempty" validate:"omitempty,gt=0"`
	Active   *bool   `json:"active,omitempty"`
}

// UserResponse representación de un usuario en respuestas. Nunca incluye el hash.
type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	RoleID    int64     `json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
