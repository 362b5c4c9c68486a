// Package recurso implementa la sincronización genérica de recursos del API
// del taller: un solo patrón (list, get, create, update, delete) con caché e
// invalidación declarada, instanciado por entidad.
//
// Un solo patrón para las seis entidades evita que cada recurso acumule
// divergencias sutiles en su manejo de caché e invalidación.
package recurso

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/transport"
)

// Opciones parametrizan un recurso sincronizado.
type Opciones struct {
	Nombre     string // nombre de recurso para claves de caché, p. ej. "clientes"
	Path       string // ruta en el API, p. ej. "/clientes"
	ScopeParam string // query param de filtrado opcional, p. ej. "clienteId"
}

// Recurso sincronizador genérico de un tipo de entidad T contra el API.
//
// Las lecturas son cache-first y nunca sirven una entrada invalidada. Las
// mutaciones no reintentan: reportan el error y dejan el caché intacto; solo
// en éxito aplican su invalidación declarada.
type Recurso[T any] struct {
	opts  Opciones
	api   *transport.Client
	cache *cache.Store

	// decode/encode traducen entre vocabulario del cable y el de exhibición.
	// nil = la forma del servidor pasa sin cambios (todos los recursos salvo
	// clientes).
	decode func(json.RawMessage) (T, error)
	encode func(any) (any, error)
}

// New construye un recurso sin codec (forma del servidor = forma de exhibición).
func New[T any](opts Opciones, api *transport.Client, c *cache.Store) *Recurso[T] {
	return &Recurso[T]{opts: opts, api: api, cache: c}
}

// NewConCodec construye un recurso cuyo vocabulario del cable difiere del de
// exhibición; decode y encode aplican en list, get, create y update.
func NewConCodec[T any](
	opts Opciones,
	api *transport.Client,
	c *cache.Store,
	decode func(json.RawMessage) (T, error),
	encode func(any) (any, error),
) *Recurso[T] {
	return &Recurso[T]{opts: opts, api: api, cache: c, decode: decode, encode: encode}
}

// Nombre nombre del recurso (clave de caché).
func (r *Recurso[T]) Nombre() string { return r.opts.Nombre }

// ── Invalidación declarada ────────────────────────────────────────────────────
//
// Cada mutación declara exactamente qué claves de lectura invalida. El grafo
// mutación→lecturas queda explícito: create toca las colecciones (todas las
// variantes de scope); update y delete además la entidad puntual.

// InvalidacionCreate claves que invalida un create exitoso.
func (r *Recurso[T]) InvalidacionCreate() cache.Invalidation {
	return cache.Invalidation{Recurso: r.opts.Nombre, Colecciones: true}
}

// InvalidacionUpdate claves que invalida un update exitoso.
func (r *Recurso[T]) InvalidacionUpdate(id string) cache.Invalidation {
	return cache.Invalidation{Recurso: r.opts.Nombre, Colecciones: true, IDs: []string{id}}
}

// InvalidacionDelete claves que invalida un delete exitoso.
func (r *Recurso[T]) InvalidacionDelete(id string) cache.Invalidation {
	return cache.Invalidation{Recurso: r.opts.Nombre, Colecciones: true, IDs: []string{id}}
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// List devuelve la colección, filtrada por scope si el recurso lo soporta y
// scope no es vacío. Cache-first; en miss consulta al servidor y guarda.
func (r *Recurso[T]) List(ctx context.Context, scope string) ([]T, error) {
	if scope != "" && r.opts.ScopeParam == "" {
		return nil, fmt.Errorf("recurso %s: no soporta filtrado por scope", r.opts.Nombre)
	}
	key := cache.CollectionKey(r.opts.Nombre, scope)
	if v, ok := r.cache.Get(key); ok {
		return v.([]T), nil
	}

	var query url.Values
	if scope != "" {
		query = url.Values{r.opts.ScopeParam: []string{scope}}
	}

	var lista []T
	if r.decode == nil {
		if err := r.api.Get(ctx, r.opts.Path, query, &lista); err != nil {
			return nil, err
		}
	} else {
		var crudos []json.RawMessage
		if err := r.api.Get(ctx, r.opts.Path, query, &crudos); err != nil {
			return nil, err
		}
		lista = make([]T, 0, len(crudos))
		for _, raw := range crudos {
			item, err := r.decode(raw)
			if err != nil {
				return nil, fmt.Errorf("recurso %s: decodificar elemento: %w", r.opts.Nombre, err)
			}
			lista = append(lista, item)
		}
	}
	if lista == nil {
		lista = []T{}
	}
	r.cache.Set(key, lista)
	return lista, nil
}

// GetByID devuelve la entidad. Con id vacío la consulta está inactiva: error
// inmediato sin tocar la red.
func (r *Recurso[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, domain.ErrMissingID
	}
	key := cache.EntityKey(r.opts.Nombre, id)
	if v, ok := r.cache.Get(key); ok {
		return v.(T), nil
	}

	item, err := r.fetchOne(ctx, id)
	if err != nil {
		return zero, err
	}
	r.cache.Set(key, item)
	return item, nil
}

func (r *Recurso[T]) fetchOne(ctx context.Context, id string) (T, error) {
	var zero T
	path := r.opts.Path + "/" + id
	if r.decode == nil {
		var item T
		if err := r.api.Get(ctx, path, nil, &item); err != nil {
			return zero, err
		}
		return item, nil
	}
	var raw json.RawMessage
	if err := r.api.Get(ctx, path, nil, &raw); err != nil {
		return zero, err
	}
	item, err := r.decode(raw)
	if err != nil {
		return zero, fmt.Errorf("recurso %s: decodificar entidad: %w", r.opts.Nombre, err)
	}
	return item, nil
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

// Create crea la entidad. En éxito invalida las colecciones del recurso; en
// fallo el caché queda como estaba y el error sube al llamador.
func (r *Recurso[T]) Create(ctx context.Context, datos any) (T, error) {
	var zero T
	body, err := r.encodeBody(datos)
	if err != nil {
		return zero, err
	}
	var raw json.RawMessage
	if err := r.api.Post(ctx, r.opts.Path, body, &raw); err != nil {
		return zero, err
	}
	creado, err := r.decodeOne(raw)
	if err != nil {
		return zero, err
	}
	r.cache.Apply(r.InvalidacionCreate())
	return creado, nil
}

// Update actualiza la entidad. En éxito invalida colecciones + la entidad.
// El codec aplica igual que en create: el vocabulario del recurso es uno solo.
func (r *Recurso[T]) Update(ctx context.Context, id string, datos any) (T, error) {
	var zero T
	if id == "" {
		return zero, domain.ErrMissingID
	}
	body, err := r.encodeBody(datos)
	if err != nil {
		return zero, err
	}
	var raw json.RawMessage
	if err := r.api.Patch(ctx, r.opts.Path+"/"+id, body, &raw); err != nil {
		return zero, err
	}
	actualizado, err := r.decodeOne(raw)
	if err != nil {
		return zero, err
	}
	r.cache.Apply(r.InvalidacionUpdate(id))
	return actualizado, nil
}

// Delete elimina la entidad. En éxito invalida colecciones + la entidad, de
// modo que un GetByID posterior no resuelva desde caché.
func (r *Recurso[T]) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingID
	}
	if err := r.api.Delete(ctx, r.opts.Path+"/"+id); err != nil {
		return err
	}
	r.cache.Apply(r.InvalidacionDelete(id))
	return nil
}

func (r *Recurso[T]) encodeBody(datos any) (any, error) {
	if r.encode == nil {
		return datos, nil
	}
	body, err := r.encode(datos)
	if err != nil {
		return nil, fmt.Errorf("recurso %s: codificar body: %w", r.opts.Nombre, err)
	}
	return body, nil
}

func (r *Recurso[T]) decodeOne(raw json.RawMessage) (T, error) {
	var zero T
	if len(raw) == 0 {
		return zero, nil
	}
	if r.decode != nil {
		item, err := r.decode(raw)
		if err != nil {
			return zero, fmt.Errorf("recurso %s: decodificar respuesta: %w", r.opts.Nombre, err)
		}
		return item, nil
	}
	var item T
	if err := json.Unmarshal(raw, &item); err != nil {
		return zero, fmt.Errorf("recurso %s: decodificar respuesta: %w", r.opts.Nombre, err)
	}
	return item, nil
}
