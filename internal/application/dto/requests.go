package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-console/internal/domain/entity"
)

// LoginRequest credenciales de inicio de sesión. La validación corre antes
// de cualquier llamada de red: un password corto jamás llega al API.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse respuesta de POST /auth/login del API del taller.
type AuthResponse struct {
	User  entity.User `json:"user"`
	Token string      `json:"token"`
}

// VehiculoRequest alta/edición de vehículo.
type VehiculoRequest struct {
	ClienteID string `json:"clienteId" validate:"required"`
	Marca     string `json:"marca" validate:"required"`
	Modelo    string `json:"modelo" validate:"required"`
	Anio      int    `json:"anio" validate:"required,min=1900"`
	Placa     string `json:"placa" validate:"required"`
	VIN       string `json:"vin"`
	KmActual  int    `json:"kmActual" validate:"min=0"`
}

// ProductoRequest alta/edición de producto.
type ProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"min=0"`
	SKU         string          `json:"sku" validate:"required"`
	Categoria   string          `json:"categoria"`
}

// ServicioRequest alta/edición de servicio. Los campos condicionales según
// tipo los valida el caso de uso (no expresables como tags estáticos).
type ServicioRequest struct {
	VehiculoID    string              `json:"vehiculoId" validate:"required"`
	ClienteID     string              `json:"clienteId" validate:"required"`
	Descripcion   string              `json:"descripcion" validate:"required"`
	FechaServicio time.Time           `json:"fechaServicio"`
	Tipo          string              `json:"tipo" validate:"omitempty,oneof=GENERAL REEMPLAZO_PIEZA CAMBIO_ACEITE"`
	PiezasUsadas  []entity.PiezaUsada `json:"piezasUsadas" validate:"dive"`
	Estado        string              `json:"estado" validate:"omitempty,oneof=pendiente en_progreso completado cancelado"`

	PiezaReemplazada   string     `json:"piezaReemplazada,omitempty"`
	ProximoCambioKm    int        `json:"proximoCambioKm,omitempty"`
	ProximoCambioFecha *time.Time `json:"proximoCambioFecha,omitempty"`
}

// VentaRequest alta de venta. El total no viaja: la consola lo calcula para
// exhibición y el servidor fija el autoritativo.
type VentaRequest struct {
	ClienteID string                 `json:"clienteId" validate:"required"`
	Productos []entity.ProductoVenta `json:"productos" validate:"required,min=1,dive"`
}
