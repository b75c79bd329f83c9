package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condiciones de un item por convención (texto libre, no se valida).
const (
	ConditionNew         = "New"
	ConditionUsed        = "Used"
	ConditionRefurbished = "Refurbished"
)

// StatusActive es el único status de inventario con semántica propia:
// los listados públicos solo muestran items con este valor.
const StatusActive = "active"

// Inventory representa un componente electrónico publicado por una empresa.
// Eliminar la Company dueña NO elimina sus items (referencia colgante conocida).
type Inventory struct {
	ID           string
	CompanyID    string
	PartNumber   string
	Manufacturer string
	Category     string
	Description  string
	Quantity     int
	Price        decimal.Decimal // 2 decimales, serializado como string
	Condition    string
	DatasheetURL string
	ImageURL     string
	Status       string    // "active" habilita visibilidad en listados
	ListedDate   time.Time // asignado al crear, inmutable
}
