package recurso

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/transport"
)

// Nombres de recurso (claves de caché) y rutas del API.
const (
	NombreClientes      = "clientes"
	NombreVehiculos     = "vehiculos"
	NombreProductos     = "productos"
	NombreServicios     = "servicios"
	NombreVentas        = "ventas"
	NombreRecordatorios = "recordatorios"
)

// Catalogo agrupa los seis recursos sincronizados de la consola.
// Todos comparten el mismo transporte y el mismo caché.
type Catalogo struct {
	Clientes      *Recurso[entity.Cliente]
	Vehiculos     *Recurso[entity.Vehiculo]
	Productos     *Recurso[entity.Producto]
	Servicios     *Recurso[entity.Servicio]
	Ventas        *Recurso[entity.Venta]
	Recordatorios *Recordatorios
	Cache         *cache.Store
}

// NewCatalogo instancia el patrón genérico por entidad:
//   - clientes con codec (único recurso cuyo vocabulario del cable difiere)
//   - vehiculos con scope por clienteId, servicios con scope por vehiculoId
//   - recordatorios solo-lectura con la acción de envío de notificación
func NewCatalogo(api *transport.Client, c *cache.Store) *Catalogo {
	return &Catalogo{
		Clientes: NewConCodec[entity.Cliente](
			Opciones{Nombre: NombreClientes, Path: "/clientes"},
			api, c, ClienteFromWire, ClienteToWire,
		),
		Vehiculos: New[entity.Vehiculo](
			Opciones{Nombre: NombreVehiculos, Path: "/vehiculos", ScopeParam: "clienteId"},
			api, c,
		),
		Productos: New[entity.Producto](
			Opciones{Nombre: NombreProductos, Path: "/productos"},
			api, c,
		),
		Servicios: New[entity.Servicio](
			Opciones{Nombre: NombreServicios, Path: "/servicios", ScopeParam: "vehiculoId"},
			api, c,
		),
		Ventas: New[entity.Venta](
			Opciones{Nombre: NombreVentas, Path: "/ventas"},
			api, c,
		),
		Recordatorios: NewRecordatorios(api, c),
		Cache:         c,
	}
}

// Recordatorios recurso de solo lectura con una acción con efecto lateral:
// el envío de la notificación por WhatsApp lo ejecuta el servidor (y voltea
// notificado allí), así que tras el éxito se invalida la colección para que
// la siguiente lectura lo observe.
type Recordatorios struct {
	lista *Recurso[entity.Recordatorio]
	api   *transport.Client
	cache *cache.Store
}

// NewRecordatorios construye el recurso de recordatorios.
func NewRecordatorios(api *transport.Client, c *cache.Store) *Recordatorios {
	return &Recordatorios{
		lista: New[entity.Recordatorio](
			Opciones{Nombre: NombreRecordatorios, Path: "/recordatorios"},
			api, c,
		),
		api:   api,
		cache: c,
	}
}

// List devuelve los recordatorios próximos.
func (r *Recordatorios) List(ctx context.Context) ([]entity.Recordatorio, error) {
	return r.lista.List(ctx, "")
}

// SendWhatsApp pide al servidor enviar la notificación del recordatorio al
// cliente. En éxito invalida la colección; el nuevo valor de notificado se
// observa en el siguiente refetch.
func (r *Recordatorios) SendWhatsApp(ctx context.Context, recordatorioID, clienteID string) error {
	if recordatorioID == "" {
		return domain.ErrMissingID
	}
	if clienteID == "" {
		return fmt.Errorf("%w: clienteId", domain.ErrInvalidInput)
	}
	body := map[string]string{"clienteId": clienteID}
	path := fmt.Sprintf("/recordatorios/%s/send-whatsapp", recordatorioID)
	if err := r.api.Post(ctx, path, body, nil); err != nil {
		return err
	}
	r.cache.Apply(cache.Invalidation{Recurso: NombreRecordatorios, Colecciones: true})
	return nil
}
