package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa. UserID es opcional:
// el flujo de registro de proveedor lo envía para enlazar user.companyId.
type CreateCompanyRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Logo              string          `json:"logo"`
	Location          string          `json:"location"`
	Website           string          `json:"website"`
	Verified          int             `json:"verified"`
	Rating            decimal.Decimal `json:"rating"`
	TotalTransactions int             `json:"totalTransactions"`
	UserID            string          `json:"userId"`
}

// UpdateCompanyRequest entrada para actualización parcial (campos opcionales).
// MemberSince no es actualizable.
type UpdateCompanyRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Logo              *string          `json:"logo"`
	Location          *string          `json:"location"`
	Website           *string          `json:"website"`
	Verified          *int             `json:"verified"`
	Rating            *decimal.Decimal `json:"rating"`
	TotalTransactions *int             `json:"totalTransactions"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Logo              string          `json:"logo,omitempty"`
	Location          string          `json:"location,omitempty"`
	Website           string          `json:"website,omitempty"`
	Verified          int             `json:"verified"`
	Rating            decimal.Decimal `json:"rating"`
	TotalTransactions int             `json:"totalTransactions"`
	MemberSince       time.Time       `json:"memberSince"`
}
