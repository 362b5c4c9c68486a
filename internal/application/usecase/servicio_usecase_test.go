package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/recurso"
	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/internal/transport"
	"github.com/jhoicas/Taller-console/pkg/logger"
)

// entornoServicios arma el caso de uso contra un API fake con dos productos
// en inventario y contador de creaciones de servicio.
func entornoServicios(t *testing.T) (*ServicioUseCase, *atomic.Int64) {
	t.Helper()
	var creaciones atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/productos":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": "p-1", "nombre": "Filtro de aceite", "stock": 2, "precio": "20000"},
				{"id": "p-2", "nombre": "Bujía", "stock": 10, "precio": "8000"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/servicios":
			creaciones.Add(1)
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			body["id"] = "s-nuevo"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(body)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	sesion := session.NewMemoryStore()
	sesion.SetToken("tok")
	api := transport.New(srv.URL, sesion, logger.Nop())
	store := cache.NewStore()
	servicios := recurso.New[entity.Servicio](
		recurso.Opciones{Nombre: recurso.NombreServicios, Path: "/servicios", ScopeParam: "vehiculoId"},
		api, store,
	)
	productos := recurso.New[entity.Producto](
		recurso.Opciones{Nombre: recurso.NombreProductos, Path: "/productos"},
		api, store,
	)
	return NewServicioUseCase(servicios, productos), &creaciones
}

func solicitudBase() dto.ServicioRequest {
	return dto.ServicioRequest{
		VehiculoID:  "v-1",
		ClienteID:   "c-1",
		Descripcion: "Mantenimiento preventivo",
		Tipo:        entity.ServicioGeneral,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Campos condicionales según tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestServicioCreate_CambioAceiteSinProximoCambioEsInvalido(t *testing.T) {
	uc, creaciones := entornoServicios(t)

	in := solicitudBase()
	in.Tipo = entity.ServicioCambioAceite

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"CAMBIO_ACEITE sin proximoCambioKm ni proximoCambioFecha debe rechazarse")
	assert.Equal(t, int64(0), creaciones.Load(), "la solicitud inválida no debe llegar al API")
}

func TestServicioCreate_CambioAceiteConKmEsValido(t *testing.T) {
	uc, creaciones := entornoServicios(t)

	in := solicitudBase()
	in.Tipo = entity.ServicioCambioAceite
	in.ProximoCambioKm = 65000

	s, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "s-nuevo", s.ID)
	assert.Equal(t, int64(1), creaciones.Load())
}

func TestServicioCreate_CambioAceiteConFechaEsValido(t *testing.T) {
	uc, _ := entornoServicios(t)

	fecha := time.Now().AddDate(0, 6, 0)
	in := solicitudBase()
	in.Tipo = entity.ServicioCambioAceite
	in.ProximoCambioFecha = &fecha

	_, err := uc.Create(context.Background(), in)
	assert.NoError(t, err, "basta uno de los dos campos de próximo cambio")
}

func TestServicioCreate_ReemplazoPiezaRequierePieza(t *testing.T) {
	uc, _ := entornoServicios(t)

	in := solicitudBase()
	in.Tipo = entity.ServicioReemplazoPieza

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.PiezaReemplazada = "Pastillas de freno delanteras"
	_, err = uc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestServicioCreate_GeneralNoExigeCamposExtra(t *testing.T) {
	uc, _ := entornoServicios(t)

	_, err := uc.Create(context.Background(), solicitudBase())
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tope de piezas contra el stock conocido
// ──────────────────────────────────────────────────────────────────────────────

func TestServicioCreate_PiezasDentroDelStockPasa(t *testing.T) {
	uc, _ := entornoServicios(t)

	in := solicitudBase()
	in.PiezasUsadas = []entity.PiezaUsada{{ProductoID: "p-1", Cantidad: 2}}

	_, err := uc.Create(context.Background(), in)
	assert.NoError(t, err, "pedir exactamente el stock disponible es válido")
}

func TestServicioCreate_PiezasSobreElStockSeRechaza(t *testing.T) {
	uc, creaciones := entornoServicios(t)

	in := solicitudBase()
	in.PiezasUsadas = []entity.PiezaUsada{{ProductoID: "p-1", Cantidad: 3}} // stock 2

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Filtro de aceite", "el mensaje debe nombrar el producto")
	assert.Equal(t, int64(0), creaciones.Load(), "el rechazo local no debe producir la mutación")
}

func TestServicioCreate_PiezaDeProductoDesconocido(t *testing.T) {
	uc, _ := entornoServicios(t)

	in := solicitudBase()
	in.PiezasUsadas = []entity.PiezaUsada{{ProductoID: "p-inexistente", Cantidad: 1}}

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServicioCreate_CantidadNoPositivaEsInvalida(t *testing.T) {
	uc, _ := entornoServicios(t)

	in := solicitudBase()
	in.PiezasUsadas = []entity.PiezaUsada{{ProductoID: "p-2", Cantidad: 0}}

	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update aplica las mismas reglas que create.
func TestServicioUpdate_ValidaIgualQueCreate(t *testing.T) {
	uc, _ := entornoServicios(t)

	in := solicitudBase()
	in.Tipo = entity.ServicioCambioAceite // sin próximo cambio

	_, err := uc.Update(context.Background(), "s-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
