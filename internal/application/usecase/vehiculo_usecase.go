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

// VehiculoUseCase casos de uso de la página de vehículos.
type VehiculoUseCase struct {
	vehiculos *recurso.Recurso[entity.Vehiculo]
	validate  *validator.Validate
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(vehiculos *recurso.Recurso[entity.Vehiculo]) *VehiculoUseCase {
	return &VehiculoUseCase{vehiculos: vehiculos, validate: validator.New()}
}

// List lista vehículos, filtrados por cliente cuando clienteID no es vacío.
// El scope forma parte de la clave de caché: la vista filtrada y la completa
// nunca colisionan.
func (uc *VehiculoUseCase) List(ctx context.Context, clienteID, q string) ([]entity.Vehiculo, error) {
	lista, err := uc.vehiculos.List(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if q == "" {
		return lista, nil
	}
	filtrada := make([]entity.Vehiculo, 0, len(lista))
	for _, v := range lista {
		if Coincide(q, v.Marca, v.Modelo, v.Placa, v.VIN) {
			filtrada = append(filtrada, v)
		}
	}
	return filtrada, nil
}

// Get devuelve un vehículo por id.
func (uc *VehiculoUseCase) Get(ctx context.Context, id string) (entity.Vehiculo, error) {
	return uc.vehiculos.GetByID(ctx, id)
}

// Create valida y crea el vehículo.
func (uc *VehiculoUseCase) Create(ctx context.Context, in dto.VehiculoRequest) (entity.Vehiculo, error) {
	if err := uc.validate.Struct(in); err != nil {
		return entity.Vehiculo{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return uc.vehiculos.Create(ctx, in)
}

// Update valida y actualiza el vehículo.
func (uc *VehiculoUseCase) Update(ctx context.Context, id string, in dto.VehiculoRequest) (entity.Vehiculo, error) {
	if err := uc.validate.Struct(in); err != nil {
		return entity.Vehiculo{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return uc.vehiculos.Update(ctx, id, in)
}

// Delete elimina el vehículo.
func (uc *VehiculoUseCase) Delete(ctx context.Context, id string) error {
	return uc.vehiculos.Delete(ctx, id)
}
