// Package session guarda el token de autenticación de la consola.
//
// El almacén se inyecta por constructor (nada de variables a nivel de módulo):
// cada test crea el suyo y el acceso concurrente queda bajo mutex. El token se
// escribe solo en login exitoso y se borra solo en logout o ante un 401.
package session

import "sync"

// Store contrato del almacén de token. Una sola instancia por proceso.
type Store interface {
	// Token devuelve el token y si existe.
	Token() (string, bool)
	// SetToken fija el token (login exitoso).
	SetToken(token string)
	// Clear elimina el token (logout o 401).
	Clear()
	// HasToken indica si hay token presente.
	HasToken() bool
}

// MemoryStore almacén en memoria: un reinicio del proceso pierde la sesión.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryStore construye el almacén en memoria.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Token devuelve el token actual, si hay.
func (s *MemoryStore) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set
}

// SetToken fija el token.
func (s *MemoryStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
}

// Clear elimina el token.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}

// HasToken indica si hay token presente.
func (s *MemoryStore) HasToken() bool {
	_, ok := s.Token()
	return ok
}
