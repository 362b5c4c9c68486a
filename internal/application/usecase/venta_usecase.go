package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// VentaUseCase casos de uso de la página de ventas.
type VentaUseCase struct {
	ventas   *recurso.Recurso[entity.Venta]
	validate *validator.Validate
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(ventas *recurso.Recurso[entity.Venta]) *VentaUseCase {
	return &VentaUseCase{ventas: ventas, validate: validator.New()}
}

// List lista ventas con el total de exhibición precalculado por línea de venta.
func (uc *VentaUseCase) List(ctx context.Context) ([]dto.VentaView, error) {
	lista, err := uc.ventas.List(ctx, "")
	if err != nil {
		return nil, err
	}
	vistas := make([]dto.VentaView, 0, len(lista))
	for _, v := range lista {
		vistas = append(vistas, dto.VentaView{Venta: v, TotalCalculado: entity.TotalLineas(v.Productos)})
	}
	return vistas, nil
}

// Get devuelve una venta por id.
func (uc *VentaUseCase) Get(ctx context.Context, id string) (dto.VentaView, error) {
	v, err := uc.ventas.GetByID(ctx, id)
	if err != nil {
		return dto.VentaView{}, err
	}
	return dto.VentaView{Venta: v, TotalCalculado: entity.TotalLineas(v.Productos)}, nil
}

// CotizarTotal total de exhibición del formulario antes de enviar:
// Σ cantidad × precioUnitario sobre las líneas seleccionadas. El valor
// autoritativo sigue siendo el que retorne el servidor.
func (uc *VentaUseCase) CotizarTotal(lineas []entity.ProductoVenta) decimal.Decimal {
	return entity.TotalLineas(lineas)
}

// Create valida y registra la venta. El servidor calcula el total y
// decrementa stock; la consola solo refleja su respuesta.
func (uc *VentaUseCase) Create(ctx context.Context, in dto.VentaRequest) (dto.VentaView, error) {
	if err := uc.validate.Struct(in); err != nil {
		return dto.VentaView{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	for _, l := range in.Productos {
		if l.Cantidad <= 0 {
			return dto.VentaView{}, fmt.Errorf("%w: cantidad inválida para producto %s", domain.ErrInvalidInput, l.ProductoID)
		}
	}
	v, err := uc.ventas.Create(ctx, in)
	if err != nil {
		return dto.VentaView{}, err
	}
	return dto.VentaView{Venta: v, TotalCalculado: entity.TotalLineas(v.Productos)}, nil
}

// Delete elimina la venta.
func (uc *VentaUseCase) Delete(ctx context.Context, id string) error {
	return uc.ventas.Delete(ctx, id)
}
