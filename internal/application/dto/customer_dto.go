package dto

import "time"

// CreateCustomerRequest datos para crear un cliente.
type CreateCustomerRequest struct {
	FullName string  `json:"full_name" validate:"required,max=120"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// CustomerResponse representación de un cliente en respuestas.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
