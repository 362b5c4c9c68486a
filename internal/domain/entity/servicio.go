package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de servicio.
const (
	ServicioGeneral        = "GENERAL"
	ServicioReemplazoPieza = "REEMPLAZO_PIEZA"
	ServicioCambioAceite   = "CAMBIO_ACEITE"
)

// Estados de servicio.
const (
	ServicioPendiente  = "pendiente"
	ServicioEnProgreso = "en_progreso"
	ServicioCompletado = "completado"
	ServicioCancelado  = "cancelado"
)

// PiezaUsada línea de repuestos consumidos por un servicio.
type PiezaUsada struct {
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

// Servicio representa un trabajo de mantenimiento o reparación sobre un vehículo.
// Los campos condicionales dependen de Tipo: CAMBIO_ACEITE lleva los campos
// de próximo cambio; REEMPLAZO_PIEZA lleva la pieza reemplazada.
type Servicio struct {
	ID            string          `json:"id"`
	VehiculoID    string          `json:"vehiculoId"`
	ClienteID     string          `json:"clienteId"`
	Descripcion   string          `json:"descripcion"`
	FechaServicio time.Time       `json:"fechaServicio"`
	Tipo          string          `json:"tipo"`
	PiezasUsadas  []PiezaUsada    `json:"piezasUsadas"`
	Total         decimal.Decimal `json:"total"` // lo calcula el servidor
	Estado        string          `json:"estado"`

	PiezaReemplazada   string     `json:"piezaReemplazada,omitempty"`
	ProximoCambioKm    int        `json:"proximoCambioKm,omitempty"`
	ProximoCambioFecha *time.Time `json:"proximoCambioFecha,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidarCamposDeTipo verifica la coherencia entre Tipo y sus campos condicionales.
//   - CAMBIO_ACEITE: requiere ProximoCambioKm y/o ProximoCambioFecha.
//   - REEMPLAZO_PIEZA: requiere PiezaReemplazada.
//   - GENERAL: no exige ninguno.
func (s *Servicio) ValidarCamposDeTipo() error {
	switch s.Tipo {
	case ServicioCambioAceite:
		if s.ProximoCambioKm <= 0 && s.ProximoCambioFecha == nil {
			return fmt.Errorf("servicio CAMBIO_ACEITE requiere proximoCambioKm o proximoCambioFecha")
		}
	case ServicioReemplazoPieza:
		if s.PiezaReemplazada == "" {
			return fmt.Errorf("servicio REEMPLAZO_PIEZA requiere piezaReemplazada")
		}
	case ServicioGeneral, "":
		// sin campos adicionales
	default:
		return fmt.Errorf("tipo de servicio desconocido: %s", s.Tipo)
	}
	return nil
}
