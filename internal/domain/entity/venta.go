package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de venta.
const (
	VentaPendiente  = "pendiente"
	VentaCompletado = "completado"
	VentaCancelado  = "cancelado"
)

// ProductoVenta línea de venta: producto, cantidad y precio unitario al momento de vender.
type ProductoVenta struct {
	ProductoID     string          `json:"productoId"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// Subtotal de la línea: cantidad × precio unitario.
func (p ProductoVenta) Subtotal() decimal.Decimal {
	return p.PrecioUnitario.Mul(decimal.NewFromInt(int64(p.Cantidad)))
}

// Venta representa una venta de mostrador a un cliente.
// Total lo fija el servidor; la consola calcula el total de exhibición con
// TotalLineas antes de enviar el formulario.
type Venta struct {
	ID        string          `json:"id"`
	ClienteID string          `json:"clienteId"`
	Productos []ProductoVenta `json:"productos"`
	Total     decimal.Decimal `json:"total"`
	Estado    string          `json:"estado"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// TotalLineas suma Σ cantidad × precioUnitario sobre las líneas dadas.
func TotalLineas(lineas []ProductoVenta) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Subtotal())
	}
	return total
}
