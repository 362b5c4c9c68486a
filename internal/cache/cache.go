// Package cache implementa el caché cliente de colecciones y entidades del
// API del taller.
//
// Las claves son (recurso, scope, id): una colección filtrada nunca colisiona
// con la colección completa ni con otra filtrada. Invalidar marca la entrada
// como obsoleta: la siguiente lectura falla el caché y el sincronizador
// refresca contra el servidor; jamás se sirve una entrada invalidada.
//
// Solo el sincronizador de recursos escribe aquí; ningún otro componente
// muta el caché directamente.
package cache

import "sync"

// Key identifica una entrada: recurso + scope opcional + id opcional.
// ID vacío = colección; scope vacío = colección sin filtrar.
type Key struct {
	Recurso string
	Scope   string
	ID      string
}

// CollectionKey clave de colección para un recurso con scope opcional.
func CollectionKey(recurso, scope string) Key {
	return Key{Recurso: recurso, Scope: scope}
}

// EntityKey clave de entidad individual.
func EntityKey(recurso, id string) Key {
	return Key{Recurso: recurso, ID: id}
}

// Invalidation conjunto de claves que una mutación declara invalidar:
// las colecciones del recurso (todas las variantes de scope) y, para
// update/delete, la entidad puntual. El grafo mutación→lecturas queda
// explícito y testeable.
type Invalidation struct {
	Recurso     string
	Colecciones bool
	IDs         []string
}

type entry struct {
	value any
	stale bool
}

// Store caché en memoria con marcado de obsolescencia.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]*entry
}

// NewStore construye un caché vacío.
func NewStore() *Store {
	return &Store{entries: make(map[Key]*entry)}
}

// Get devuelve el valor cacheado; falla si no existe o está obsoleto.
func (s *Store) Get(k Key) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[k]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

// Set guarda el valor fresco bajo la clave.
func (s *Store) Set(k Key, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[k] = &entry{value: v}
}

// Apply marca como obsoletas todas las entradas declaradas por la invalidación.
func (s *Store) Apply(inv Invalidation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if k.Recurso != inv.Recurso {
			continue
		}
		if inv.Colecciones && k.ID == "" {
			e.stale = true
		}
		for _, id := range inv.IDs {
			if k.ID == id {
				e.stale = true
			}
		}
	}
}

// Invalidate marca claves puntuales como obsoletas.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if e, ok := s.entries[k]; ok {
			e.stale = true
		}
	}
}

// Flush vacía el caché por completo (logout).
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]*entry)
}

// Len cantidad de entradas (incluidas obsoletas); para diagnóstico y tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
