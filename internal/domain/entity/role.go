package entity

// Role representa un rol de usuario del sistema. El nombre es único.
type Role struct {
	ID          int64
	Name        string
	Description *string
}

// Nombres de los roles sembrados por defecto.
const (
	RoleAdmin     = "admin"
	RoleVendedor  = "vendedor"
	RoleBodeguero = "bodeguero"
)
