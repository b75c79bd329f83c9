package entity

import "time"

// Roles válidos para User.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// User representa una cuenta del marketplace. CompanyID es una referencia
// débil: un usuario puede apuntar a una Company pero no la posee.
type User struct {
	ID        string
	Username  string
	Password  string // se almacena tal cual llega (sin hash, decisión del diseño original)
	Email     string
	Role      string // buyer, seller
	CompanyID string // opcional, vacío = sin empresa asociada
	CreatedAt time.Time
}
