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

// ProductoUseCase casos de uso de la página de inventario.
type ProductoUseCase struct {
	productos *recurso.Recurso[entity.Producto]
	validate  *validator.Validate
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productos *recurso.Recurso[entity.Producto]) *ProductoUseCase {
	return &ProductoUseCase{productos: productos, validate: validator.New()}
}

// List lista productos; q filtra por nombre/sku/categoría.
func (uc *ProductoUseCase) List(ctx context.Context, q string) ([]entity.Producto, error) {
	lista, err := uc.productos.List(ctx, "")
	if err != nil {
		return nil, err
	}
	if q == "" {
		return lista, nil
	}
	filtrada := make([]entity.Producto, 0, len(lista))
	for _, p := range lista {
		if Coincide(q, p.Nombre, p.SKU, p.Categoria) {
			filtrada = append(filtrada, p)
		}
	}
	return filtrada, nil
}

// Get devuelve un producto por id.
func (uc *ProductoUseCase) Get(ctx context.Context, id string) (entity.Producto, error) {
	return uc.productos.GetByID(ctx, id)
}

// Create valida y crea el producto. El precio debe ser positivo; el stock,
// no negativo (la aritmética de stock posterior es del servidor).
func (uc *ProductoUseCase) Create(ctx context.Context, in dto.ProductoRequest) (entity.Producto, error) {
	if err := uc.validarProducto(in); err != nil {
		return entity.Producto{}, err
	}
	return uc.productos.Create(ctx, in)
}

// Update valida y actualiza el producto.
func (uc *ProductoUseCase) Update(ctx context.Context, id string, in dto.ProductoRequest) (entity.Producto, error) {
	if err := uc.validarProducto(in); err != nil {
		return entity.Producto{}, err
	}
	return uc.productos.Update(ctx, id, in)
}

// Delete elimina el producto.
func (uc *ProductoUseCase) Delete(ctx context.Context, id string) error {
	return uc.productos.Delete(ctx, id)
}

func (uc *ProductoUseCase) validarProducto(in dto.ProductoRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if !in.Precio.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser positivo", domain.ErrInvalidInput)
	}
	return nil
}
