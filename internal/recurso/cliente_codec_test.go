package recurso

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Decode: vocabulario del cable → exhibición
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteFromWire_TraduceVocabulario(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "c-1",
		"nombre": "Ana Pérez",
		"email": "ana@example.com",
		"telefono": "555-0101",
		"direccion": "Calle 10 #4-20"
	}`)

	c, err := ClienteFromWire(raw)
	require.NoError(t, err)

	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "Ana Pérez", c.Name, "nombre del cable debe salir como name")
	assert.Equal(t, "555-0101", c.Phone, "telefono del cable debe salir como phone")
	assert.Equal(t, "Calle 10 #4-20", c.Address, "direccion del cable debe salir como address")
	assert.Equal(t, "ana@example.com", c.Email)
}

// Los timestamps llegan bajo cualquiera de los dos pares de nombres; ambos
// normalizan a CreatedAt/UpdatedAt, con prioridad para el par en español.
func TestClienteFromWire_FallbackDeTimestamps(t *testing.T) {
	esperado := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	conEspanol := json.RawMessage(`{"id":"c-1","nombre":"Ana","creadoEn":"2026-03-15T10:00:00Z","actualizadoEn":"2026-03-15T10:00:00Z"}`)
	c, err := ClienteFromWire(conEspanol)
	require.NoError(t, err)
	assert.True(t, esperado.Equal(c.CreatedAt), "creadoEn debe poblar CreatedAt")
	assert.True(t, esperado.Equal(c.UpdatedAt), "actualizadoEn debe poblar UpdatedAt")

	conIngles := json.RawMessage(`{"id":"c-2","nombre":"Luis","createdAt":"2026-03-15T10:00:00Z","updatedAt":"2026-03-15T10:00:00Z"}`)
	c, err = ClienteFromWire(conIngles)
	require.NoError(t, err)
	assert.True(t, esperado.Equal(c.CreatedAt), "createdAt debe poblar CreatedAt en ausencia de creadoEn")
	assert.True(t, esperado.Equal(c.UpdatedAt))

	sinFechas := json.RawMessage(`{"id":"c-3","nombre":"Marta"}`)
	c, err = ClienteFromWire(sinFechas)
	require.NoError(t, err)
	assert.True(t, c.CreatedAt.IsZero(), "sin timestamps el campo queda en cero")
}

func TestClienteFromWire_JSONInvalido(t *testing.T) {
	_, err := ClienteFromWire(json.RawMessage(`{no es json`))
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Encode: exhibición → cable
// ──────────────────────────────────────────────────────────────────────────────

func TestClienteToWire_TraduceVocabulario(t *testing.T) {
	out, err := ClienteToWire(ClienteDatos{
		Name:    "Ana Pérez",
		Email:   "ana@example.com",
		Phone:   "555-0101",
		Address: "Calle 10 #4-20",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(out)
	require.NoError(t, err)

	var cable map[string]any
	require.NoError(t, json.Unmarshal(payload, &cable))
	assert.Equal(t, "Ana Pérez", cable["nombre"], "name debe viajar como nombre")
	assert.Equal(t, "555-0101", cable["telefono"], "phone debe viajar como telefono")
	assert.Equal(t, "Calle 10 #4-20", cable["direccion"], "address debe viajar como direccion")
	assert.NotContains(t, cable, "name", "el vocabulario de exhibición no debe viajar")
	assert.NotContains(t, cable, "phone")
}

// El codec es total: un tipo no soportado es error, nunca pánico.
func TestClienteToWire_TipoNoSoportado(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := ClienteToWire(42)
		assert.Error(t, err, "un tipo desconocido debe ser error")
	})
}

// Ley de ida y vuelta sobre los campos editables.
func TestClienteCodec_IdaYVuelta(t *testing.T) {
	original := ClienteDatos{Name: "José García", Email: "jose@example.com", Phone: "555-0202", Address: "Av. 68"}

	wire, err := ClienteToWire(original)
	require.NoError(t, err)
	payload, err := json.Marshal(wire)
	require.NoError(t, err)

	vuelta, err := ClienteFromWire(payload)
	require.NoError(t, err)

	assert.Equal(t, original.Name, vuelta.Name)
	assert.Equal(t, original.Email, vuelta.Email)
	assert.Equal(t, original.Phone, vuelta.Phone)
	assert.Equal(t, original.Address, vuelta.Address)
}

// entity.Cliente también codifica (se usa en update con la entidad cargada).
func TestClienteToWire_AceptaEntidad(t *testing.T) {
	out, err := ClienteToWire(entity.Cliente{Name: "Ana", Phone: "555"})
	require.NoError(t, err)

	payload, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"nombre":"Ana"`)
}
