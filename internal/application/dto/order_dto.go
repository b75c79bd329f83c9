package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para colocar una orden. TotalPrice es opcional:
// si viene en cero y el item referenciado existe, se deriva precio × cantidad.
type CreateOrderRequest struct {
	BuyerCompanyID   string          `json:"buyerCompanyId"`
	SellerCompanyID  string          `json:"sellerCompanyId"`
	InventoryID      string          `json:"inventoryId"`
	Quantity         int             `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	Status           string          `json:"status"`
	EscrowStatus     string          `json:"escrowStatus"`
	BlockchainTxHash string          `json:"blockchainTxHash"`
	ShippingStatus   string          `json:"shippingStatus"`
	TrackingNumber   string          `json:"trackingNumber"`
	Notes            string          `json:"notes"`
}

// UpdateOrderRequest entrada para actualización parcial de una orden.
// CreatedAt es inmutable; UpdatedAt se refresca en cada update.
type UpdateOrderRequest struct {
	BuyerCompanyID   *string          `json:"buyerCompanyId"`
	SellerCompanyID  *string          `json:"sellerCompanyId"`
	InventoryID      *string          `json:"inventoryId"`
	Quantity         *int             `json:"quantity"`
	TotalPrice       *decimal.Decimal `json:"totalPrice"`
	Status           *string          `json:"status"`
	EscrowStatus     *string          `json:"escrowStatus"`
	BlockchainTxHash *string          `json:"blockchainTxHash"`
	ShippingStatus   *string          `json:"shippingStatus"`
	TrackingNumber   *string          `json:"trackingNumber"`
	Notes            *string          `json:"notes"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID               string          `json:"id"`
	BuyerCompanyID   string          `json:"buyerCompanyId"`
	SellerCompanyID  string          `json:"sellerCompanyId"`
	InventoryID      string          `json:"inventoryId"`
	Quantity         int             `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	Status           string          `json:"status"`
	EscrowStatus     string          `json:"escrowStatus,omitempty"`
	BlockchainTxHash string          `json:"blockchainTxHash,omitempty"`
	ShippingStatus   string          `json:"shippingStatus,omitempty"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}
