package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de ciclo de vida de una orden. Son etiquetas libres: no hay
// máquina de estados validada, cualquier transición se acepta.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCompleted = "completed"
	OrderCancelled = "cancelled"
)

// Order representa una orden de compra entre dos empresas.
// EscrowStatus, BlockchainTxHash, ShippingStatus, TrackingNumber y Notes son
// campos decorativos: se almacenan y devuelven tal cual, sin cómputo asociado.
type Order struct {
	ID               string
	BuyerCompanyID   string
	SellerCompanyID  string
	InventoryID      string
	Quantity         int
	TotalPrice       decimal.Decimal
	Status           string
	EscrowStatus     string
	BlockchainTxHash string
	ShippingStatus   string
	TrackingNumber   string
	Notes            string
	CreatedAt        time.Time // inmutable
	UpdatedAt        time.Time // se refresca en cada update
}
