package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest entrada para publicar un item de inventario.
type CreateInventoryRequest struct {
	CompanyID    string          `json:"companyId"`
	PartNumber   string          `json:"partNumber"`
	Manufacturer string          `json:"manufacturer"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Condition    string          `json:"condition"`
	DatasheetURL string          `json:"datasheetUrl"`
	ImageURL     string          `json:"imageUrl"`
	Status       string          `json:"status"`
}

// UpdateInventoryRequest entrada para actualización parcial de un item.
// ListedDate no es actualizable.
type UpdateInventoryRequest struct {
	CompanyID    *string          `json:"companyId"`
	PartNumber   *string          `json:"partNumber"`
	Manufacturer *string          `json:"manufacturer"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	Quantity     *int             `json:"quantity"`
	Price        *decimal.Decimal `json:"price"`
	Condition    *string          `json:"condition"`
	DatasheetURL *string          `json:"datasheetUrl"`
	ImageURL     *string          `json:"imageUrl"`
	Status       *string          `json:"status"`
}

// InventoryResponse salida de un item de inventario.
type InventoryResponse struct {
	ID           string          `json:"id"`
	CompanyID    string          `json:"companyId"`
	PartNumber   string          `json:"partNumber"`
	Manufacturer string          `json:"manufacturer"`
	Category     string          `json:"category"`
	Description  string          `json:"description,omitempty"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Condition    string          `json:"condition"`
	DatasheetURL string          `json:"datasheetUrl,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Status       string          `json:"status"`
	ListedDate   time.Time       `json:"listedDate"`
}
