package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// ServicioUseCase casos de uso de la página de servicios.
//
// Además de la validación de formulario, aquí se aplican las dos reglas que
// el formulario no puede expresar con tags: los campos condicionales según
// tipo y el tope de piezas contra el stock cacheado del producto. El stock
// del cliente es solo una barrera de UI; el rechazo autoritativo sigue
// siendo del servidor.
type ServicioUseCase struct {
	servicios *recurso.Recurso[entity.Servicio]
	productos *recurso.Recurso[entity.Producto]
	validate  *validator.Validate
}

// NewServicioUseCase construye el caso de uso.
func NewServicioUseCase(servicios *recurso.Recurso[entity.Servicio], productos *recurso.Recurso[entity.Producto]) *ServicioUseCase {
	return &ServicioUseCase{servicios: servicios, productos: productos, validate: validator.New()}
}

// List lista servicios, filtrados por vehículo cuando vehiculoID no es vacío.
func (uc *ServicioUseCase) List(ctx context.Context, vehiculoID string) ([]entity.Servicio, error) {
	return uc.servicios.List(ctx, vehiculoID)
}

// Get devuelve un servicio por id.
func (uc *ServicioUseCase) Get(ctx context.Context, id string) (entity.Servicio, error) {
	return uc.servicios.GetByID(ctx, id)
}

// Create valida y crea el servicio.
func (uc *ServicioUseCase) Create(ctx context.Context, in dto.ServicioRequest) (entity.Servicio, error) {
	if err := uc.validarServicio(ctx, in); err != nil {
		return entity.Servicio{}, err
	}
	return uc.servicios.Create(ctx, in)
}

// Update valida y actualiza el servicio.
func (uc *ServicioUseCase) Update(ctx context.Context, id string, in dto.ServicioRequest) (entity.Servicio, error) {
	if err := uc.validarServicio(ctx, in); err != nil {
		return entity.Servicio{}, err
	}
	return uc.servicios.Update(ctx, id, in)
}

// Delete elimina el servicio.
func (uc *ServicioUseCase) Delete(ctx context.Context, id string) error {
	return uc.servicios.Delete(ctx, id)
}

func (uc *ServicioUseCase) validarServicio(ctx context.Context, in dto.ServicioRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	s := entity.Servicio{
		Tipo:               in.Tipo,
		PiezaReemplazada:   in.PiezaReemplazada,
		ProximoCambioKm:    in.ProximoCambioKm,
		ProximoCambioFecha: in.ProximoCambioFecha,
	}
	if err := s.ValidarCamposDeTipo(); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return uc.validarStock(ctx, in.PiezasUsadas)
}

// validarStock verifica que ninguna pieza pida más unidades que el stock
// conocido del producto al momento de la selección.
func (uc *ServicioUseCase) validarStock(ctx context.Context, piezas []entity.PiezaUsada) error {
	if len(piezas) == 0 {
		return nil
	}
	productos, err := uc.productos.List(ctx, "")
	if err != nil {
		return fmt.Errorf("verificar stock: %w", err)
	}
	stockPorID := make(map[string]int, len(productos))
	nombrePorID := make(map[string]string, len(productos))
	for _, p := range productos {
		stockPorID[p.ID] = p.Stock
		nombrePorID[p.ID] = p.Nombre
	}
	for _, pieza := range piezas {
		if pieza.Cantidad <= 0 {
			return fmt.Errorf("%w: cantidad inválida para producto %s", domain.ErrInvalidInput, pieza.ProductoID)
		}
		stock, conocido := stockPorID[pieza.ProductoID]
		if !conocido {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, pieza.ProductoID)
		}
		if pieza.Cantidad > stock {
			return fmt.Errorf("%w: %s (stock %d, pedido %d)",
				domain.ErrInsufficientStock, nombrePorID[pieza.ProductoID], stock, pieza.Cantidad)
		}
	}
	return nil
}
