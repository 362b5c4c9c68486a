package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-console/internal/application/auth"
	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	apphttp "github.com/jhoicas/Taller-console/internal/interfaces/http"
	"github.com/jhoicas/Taller-console/internal/recurso"
	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/internal/transport"
	"github.com/jhoicas/Taller-console/pkg/logger"
)

// entornoDashboard arma la consola contra un API fake con colecciones de
// tamaños conocidos.
func entornoDashboard(t *testing.T, rol string, conSesion bool) *fiber.App {
	t.Helper()
	coleccion := func(n int) []map[string]any {
		out := make([]map[string]any, n)
		for i := range out {
			out[i] = map[string]any{"id": "x"}
		}
		return out
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/me":
			json.NewEncoder(w).Encode(map[string]string{"id": "u-1", "name": "Ana", "role": rol})
		case "/clientes":
			json.NewEncoder(w).Encode(coleccion(3))
		case "/vehiculos":
			json.NewEncoder(w).Encode(coleccion(5))
		case "/productos":
			json.NewEncoder(w).Encode(coleccion(2))
		case "/servicios":
			json.NewEncoder(w).Encode(coleccion(4))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	sesion := session.NewMemoryStore()
	if conSesion {
		sesion.SetToken("tok-valido")
	}
	store := cache.NewStore()
	api := transport.New(srv.URL, sesion, logger.Nop())
	authUC := auth.New(api, sesion, store, logger.Nop())
	catalogo := recurso.NewCatalogo(api, store)
	dashboardUC := usecase.NewDashboardUseCase(
		catalogo.Clientes, catalogo.Vehiculos, catalogo.Productos, catalogo.Servicios,
	)

	app := fiber.New()
	protegido := app.Group("/api", apphttp.GuardMiddleware(authUC))
	protegido.Get("/dashboard", apphttp.NewDashboardHandler(dashboardUC).Pagina)
	return app
}

func TestDashboard_ConteosYUsuario(t *testing.T) {
	app := entornoDashboard(t, entity.RoleRecepcion, true)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/dashboard", "application/json")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pagina dto.PaginaDashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pagina))

	assert.Equal(t, 3, pagina.Totales.Clientes)
	assert.Equal(t, 5, pagina.Totales.Vehiculos)
	assert.Equal(t, 2, pagina.Totales.Productos)
	assert.Equal(t, 4, pagina.Totales.Servicios)

	require.NotNil(t, pagina.Usuario)
	assert.Equal(t, "Ana", pagina.Usuario.Name, "la bienvenida usa la identidad resuelta por el guard")
	assert.Equal(t, entity.RoleRecepcion, pagina.Usuario.Role)
}

// El dashboard no tiene verja de vista: cualquier rol autenticado lo ve.
func TestDashboard_AbiertoATodoRolAutenticado(t *testing.T) {
	for _, rol := range entity.Roles {
		app := entornoDashboard(t, rol, true)

		resp := hacerPeticion(t, app, http.MethodGet, "/api/dashboard", "application/json")
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, "rol %s debe ver el dashboard", rol)
	}
}

func TestDashboard_SinSesionRedirige(t *testing.T) {
	app := entornoDashboard(t, entity.RoleAdmin, false)

	resp := hacerPeticion(t, app, http.MethodGet, "/api/dashboard", "application/json")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
