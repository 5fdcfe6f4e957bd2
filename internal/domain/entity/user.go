package entity

import "time"

// User representa un usuario del sistema. No puede existir sin un Role válido
// (FK obligatoria en la base de datos).
type User struct {
	ID           int64
	FullName     string
	Email        string // único
	Phone        *string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool   // default true
	RoleID       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
