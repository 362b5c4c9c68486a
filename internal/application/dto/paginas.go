package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// Modelos de página: datos + affordances. Una acción denegada no viaja
// deshabilitada, simplemente su flag queda en false y el frontend omite el
// control.

// TotalesDashboard conteos de las colecciones principales.
type TotalesDashboard struct {
	Clientes  int `json:"clientes"`
	Vehiculos int `json:"vehiculos"`
	Productos int `json:"productos"`
	Servicios int `json:"servicios"`
}

// PaginaDashboard modelo de la página de inicio: bienvenida con la identidad
// resuelta y los conteos. Sin verja de vista propia: basta el guard.
type PaginaDashboard struct {
	Usuario *entity.User     `json:"usuario"`
	Totales TotalesDashboard `json:"totales"`
}

// PaginaClientes modelo de la página de clientes.
type PaginaClientes struct {
	Clientes []entity.Cliente `json:"clientes"`
	Permisos rbac.Permisos    `json:"permisos"`
}

// PaginaVehiculos modelo de la página de vehículos (opcionalmente filtrada por cliente).
type PaginaVehiculos struct {
	Vehiculos []entity.Vehiculo `json:"vehiculos"`
	ClienteID string            `json:"clienteId,omitempty"`
	Permisos  rbac.Permisos     `json:"permisos"`
}

// PaginaProductos modelo de la página de inventario.
type PaginaProductos struct {
	Productos []entity.Producto `json:"productos"`
	Permisos  rbac.Permisos     `json:"permisos"`
}

// PaginaServicios modelo de la página de servicios (opcionalmente filtrada por vehículo).
type PaginaServicios struct {
	Servicios  []entity.Servicio `json:"servicios"`
	VehiculoID string            `json:"vehiculoId,omitempty"`
	Permisos   rbac.Permisos     `json:"permisos"`
}

// VentaView venta con el total de exhibición calculado en la consola.
// TotalCalculado es Σ cantidad×precioUnitario; Total sigue siendo el del servidor.
type VentaView struct {
	entity.Venta
	TotalCalculado decimal.Decimal `json:"totalCalculado"`
}

// PaginaVentas modelo de la página de ventas.
type PaginaVentas struct {
	Ventas   []VentaView   `json:"ventas"`
	Permisos rbac.Permisos `json:"permisos"`
}

// RecordatorioView recordatorio con el estado derivado de urgencia.
// Urgente y DiasRestantes se recalculan en cada petición, nunca se cachean.
type RecordatorioView struct {
	entity.Recordatorio
	Urgente       bool `json:"urgente"`
	DiasRestantes int  `json:"diasRestantes"`
}

// PaginaRecordatorios modelo de la página de recordatorios, ordenada por
// próxima fecha ascendente.
type PaginaRecordatorios struct {
	Recordatorios []RecordatorioView `json:"recordatorios"`
	Permisos      rbac.Permisos      `json:"permisos"`
}
