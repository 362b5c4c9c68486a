package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// ClienteUseCase casos de uso de la página de clientes.
type ClienteUseCase struct {
	clientes *recurso.Recurso[entity.Cliente]
	validate *validator.Validate
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clientes *recurso.Recurso[entity.Cliente]) *ClienteUseCase {
	return &ClienteUseCase{clientes: clientes, validate: validator.New()}
}

// List lista clientes; q filtra por nombre/email/teléfono sin distinguir acentos.
func (uc *ClienteUseCase) List(ctx context.Context, q string) ([]entity.Cliente, error) {
	lista, err := uc.clientes.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if q == "" {
		return lista, nil
	}
	filtrada := make([]entity.Cliente, 0, len(lista))
	for _, c := range lista {
		if Coincide(q, c.Name, c.Email, c.Phone) {
			filtrada = append(filtrada, c)
		}
	}
	return filtrada, nil
}

// Get devuelve un cliente por id.
func (uc *ClienteUseCase) Get(ctx context.Context, id string) (entity.Cliente, error) {
	return uc.clientes.GetByID(ctx, id)
}

// Create valida y crea el cliente. El codec del recurso traduce al
// vocabulario del cable (nombre, telefono, direccion).
func (uc *ClienteUseCase) Create(ctx context.Context, datos recurso.ClienteDatos) (entity.Cliente, error) {
	if err := uc.validate.Struct(datos); err != nil {
		return entity.Cliente{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return uc.clientes.Create(ctx, datos)
}

// Update valida y actualiza el cliente; el codec aplica igual que en create.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, datos recurso.ClienteDatos) (entity.Cliente, error) {
	if err := uc.validate.Struct(datos); err != nil {
		return entity.Cliente{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	return uc.clientes.Update(ctx, id, datos)
}

// Delete elimina el cliente. La suerte de sus vehículos la decide el servidor.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	return uc.clientes.Delete(ctx, id)
}
