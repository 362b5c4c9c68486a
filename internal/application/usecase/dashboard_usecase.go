package usecase

import (
	"context"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// DashboardUseCase conteos de la página de inicio. Las colecciones salen del
// mismo caché que las páginas de recurso: visitar el dashboard deja listas
// precargadas, y una mutación en cualquier página refresca estos números.
type DashboardUseCase struct {
	clientes  *recurso.Recurso[entity.Cliente]
	vehiculos *recurso.Recurso[entity.Vehiculo]
	productos *recurso.Recurso[entity.Producto]
	servicios *recurso.Recurso[entity.Servicio]
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	clientes *recurso.Recurso[entity.Cliente],
	vehiculos *recurso.Recurso[entity.Vehiculo],
	productos *recurso.Recurso[entity.Producto],
	servicios *recurso.Recurso[entity.Servicio],
) *DashboardUseCase {
	return &DashboardUseCase{
		clientes:  clientes,
		vehiculos: vehiculos,
		productos: productos,
		servicios: servicios,
	}
}

// Totales devuelve los conteos de las cuatro colecciones sin filtrar.
func (uc *DashboardUseCase) Totales(ctx context.Context) (dto.TotalesDashboard, error) {
	clientes, err := uc.clientes.List(ctx, "")
	if err != nil {
		return dto.TotalesDashboard{}, err
	}
	vehiculos, err := uc.vehiculos.List(ctx, "")
	if err != nil {
		return dto.TotalesDashboard{}, err
	}
	productos, err := uc.productos.List(ctx, "")
	if err != nil {
		return dto.TotalesDashboard{}, err
	}
	servicios, err := uc.servicios.List(ctx, "")
	if err != nil {
		return dto.TotalesDashboard{}, err
	}
	return dto.TotalesDashboard{
		Clientes:  len(clientes),
		Vehiculos: len(vehiculos),
		Productos: len(productos),
		Servicios: len(servicios),
	}, nil
}
