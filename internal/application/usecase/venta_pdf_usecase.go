package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// ComprobantePDFGenerator puerto de salida para la representación gráfica de
// una venta. La implementación concreta usa Maroto; para tests se inyecta un
// mock.
type ComprobantePDFGenerator interface {
	GenerateComprobantePDF(ctx context.Context, venta *entity.Venta, cliente *entity.Cliente, productos map[string]entity.Producto) ([]byte, error)
}

// VentaPDFUseCase genera el comprobante PDF de una venta a partir del estado
// sincronizado: venta, cliente y nombres de producto salen de los recursos
// cacheados.
type VentaPDFUseCase struct {
	ventas    *recurso.Recurso[entity.Venta]
	clientes  *recurso.Recurso[entity.Cliente]
	productos *recurso.Recurso[entity.Producto]
	generator ComprobantePDFGenerator
}

// NewVentaPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewVentaPDFUseCase(
	ventas *recurso.Recurso[entity.Venta],
	clientes *recurso.Recurso[entity.Cliente],
	productos *recurso.Recurso[entity.Producto],
	generator ComprobantePDFGenerator,
) *VentaPDFUseCase {
	return &VentaPDFUseCase{ventas: ventas, clientes: clientes, productos: productos, generator: generator}
}

// DescargarComprobante arma el comprobante de la venta.
// Retorna (pdfBytes, filename, nil) en éxito.
func (uc *VentaPDFUseCase) DescargarComprobante(ctx context.Context, ventaID string) (pdfBytes []byte, filename string, err error) {
	venta, err := uc.ventas.GetByID(ctx, ventaID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener venta: %w", err)
	}
	cliente, err := uc.clientes.GetByID(ctx, venta.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	lista, err := uc.productos.List(ctx, "")
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener productos: %w", err)
	}
	porID := make(map[string]entity.Producto, len(lista))
	for _, p := range lista {
		porID[p.ID] = p
	}

	pdfBytes, err = uc.generator.GenerateComprobantePDF(ctx, &venta, &cliente, porID)
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("venta-%s.pdf", venta.ID), nil
}
