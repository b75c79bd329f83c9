package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del flag Verified de Company.
const (
	CompanyUnverified = 0
	CompanyVerified   = 1
)

// Company representa un perfil de empresa proveedora o compradora.
// Es dueña de cero o más items de inventario y es referenciada por órdenes
// (como compradora o vendedora) y usuarios, siempre por ID, sin cascada.
type Company struct {
	ID                string
	Name              string
	Description       string
	Logo              string
	Location          string
	Website           string
	Verified          int             // 0 = no verificada, 1 = verificada
	Rating            decimal.Decimal // 0.00 a 5.00
	TotalTransactions int
	MemberSince       time.Time // asignado al crear, inmutable
}
