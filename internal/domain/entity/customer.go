package entity

import "time"

// Customer representa un cliente. Entidad independiente: una venta puede no
// tener cliente (venta de mostrador).
type Customer struct {
	ID        int64
	FullName  string
	Phone     *string
	CreatedAt time.Time
}
