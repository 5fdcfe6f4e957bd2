package dto

import "time"

// RegisterMovementRequest datos para registrar un movimiento de inventario
// manual (entrada por compra, ajuste). Las salidas por venta las genera
// CreateSale, no este request.
type RegisterMovementRequest struct {
	ProductID     int64   `json:"product_id" validate:"required,gt=0"`
	CreatedBy     int64   `json:"created_by" validate:"required,gt=0"`
	Type          int16   `json:"type" validate:"gte=0,lte=99"`
	Quantity      int64   `json:"quantity" validate:"required,gt=0"`
	ReferenceType int16   `json:"reference_type" validate:"gte=0,lte=99"`
	ReferenceID   *int64  `json:"reference_id,omitempty" validate:"omitempty,gt=0"`
	Notes         *string `json:"notes,omitempty"`
}

// MovementResponse representación de un movimiento en respuestas.
type MovementResponse struct {
	ID            int64     `json:"id"`
	ProductID     int64     `json:"product_id"`
	CreatedBy     int64     `json:"created_by"`
	Type          int16     `json:"type"`
	Quantity      int64     `json:"quantity"`
	ReferenceType int16     `json:"reference_type"`
	ReferenceID   *int64    `json:"reference_id,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	// StockAfter stock del producto después de aplicar el movimiento.
	StockAfter int64 `json:"stock_after"`
}
