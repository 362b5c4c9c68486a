package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto/repuesto del inventario del taller.
type Producto struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"` // siempre positivo
	Stock       int             `json:"stock"`  // nunca negativo; lo decrementa el servidor
	SKU         string          `json:"sku"`
	Categoria   string          `json:"categoria"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
