package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/internal/transport"
	"github.com/jhoicas/Taller-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Servidor de auth fake con contador de peticiones
// ──────────────────────────────────────────────────────────────────────────────

type authFake struct {
	peticiones   atomic.Int64
	peticionesMe atomic.Int64
	fallosMe     atomic.Int64 // cantidad de 500 a responder en /auth/me antes de servir
	me401        atomic.Bool  // /auth/me responde 401 (token revocado en el servidor)
}

func (f *authFake) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.peticiones.Add(1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "secreto123" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"code": "INVALID_CREDENTIALS", "message": "credenciales inválidas"})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-valido",
				"user":  map[string]string{"id": "u-1", "name": "Ana", "email": body["email"], "role": "admin"},
			})
		case "/auth/me":
			f.peticionesMe.Add(1)
			if f.me401.Load() {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"code": "TOKEN_REVOKED", "message": "token revocado"})
				return
			}
			if f.fallosMe.Load() > 0 {
				f.fallosMe.Add(-1)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"id": "u-1", "name": "Ana", "email": "ana@example.com", "role": "admin"})
		case "/auth/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func entornoAuth(t *testing.T) (*authFake, *UseCase, session.Store, *cache.Store) {
	t.Helper()
	fake := &authFake{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	sesion := session.NewMemoryStore()
	store := cache.NewStore()
	api := transport.New(srv.URL, sesion, logger.Nop())
	return fake, New(api, sesion, store, logger.Nop()), sesion, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// La validación corre en cliente: credenciales mal formadas producen error
// de validación con cero llamadas de red.
func TestLogin_EntradaInvalidaNoTocaLaRed(t *testing.T) {
	fake, uc, sesion, _ := entornoAuth(t)

	casos := []dto.LoginRequest{
		{Email: "no-es-email", Password: "secreto123"},
		{Email: "ana@example.com", Password: "corta"}, // < 6 caracteres
		{Email: "", Password: "secreto123"},
	}
	for _, in := range casos {
		_, err := uc.Login(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %+v debe fallar validación", in)
	}

	assert.Equal(t, int64(0), fake.peticiones.Load(),
		"ninguna entrada inválida debe producir llamadas HTTP")
	assert.False(t, sesion.HasToken())
}

func TestLogin_ExitosoGuardaTokenYCacheaUsuario(t *testing.T) {
	fake, uc, sesion, _ := entornoAuth(t)

	user, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	tok, ok := sesion.Token()
	require.True(t, ok, "login exitoso debe dejar el token en sesión")
	assert.Equal(t, "tok-valido", tok)

	// El usuario quedó cacheado: CurrentUser no vuelve a la red.
	antes := fake.peticiones.Load()
	otra, err := uc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user.ID, otra.ID)
	assert.Equal(t, antes, fake.peticiones.Load(), "CurrentUser debe resolver del caché tras login")
}

func TestLogin_CredencialesRechazadasNoGuardanToken(t *testing.T) {
	_, uc, sesion, _ := entornoAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "equivocada",
	})
	require.Error(t, err)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.False(t, sesion.HasToken())
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrentUser_SinTokenEsUnauthorizedSinRed(t *testing.T) {
	fake, uc, _, _ := entornoAuth(t)

	_, err := uc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, int64(0), fake.peticiones.Load())
}

// /auth/me tolera exactamente un reintento: un fallo transitorio no expulsa
// al usuario a login.
func TestCurrentUser_UnSoloReintento(t *testing.T) {
	fake, uc, sesion, _ := entornoAuth(t)
	sesion.SetToken("tok-valido")
	fake.fallosMe.Store(1) // primer intento falla, el reintento sirve

	user, err := uc.CurrentUser(context.Background())
	require.NoError(t, err, "un fallo transitorio debe absorberse con el reintento")
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, int64(2), fake.peticionesMe.Load(), "intento + un reintento")
}

// Dos fallos seguidos son terminales: nunca un tercer intento.
func TestCurrentUser_DosFallosSonTerminales(t *testing.T) {
	fake, uc, sesion, _ := entornoAuth(t)
	sesion.SetToken("tok-valido")
	fake.fallosMe.Store(5)

	_, err := uc.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(2), fake.peticionesMe.Load(),
		"el reintento está acotado a uno; jamás un bucle")
}

// Un 401 es terminal sin reintento: el transporte ya limpió la sesión, así
// que el segundo intento saldría sin bearer y fallaría seguro.
func TestCurrentUser_401NoSeReintenta(t *testing.T) {
	fake, uc, sesion, _ := entornoAuth(t)
	sesion.SetToken("tok-revocado")
	fake.me401.Store(true)

	_, err := uc.CurrentUser(context.Background())
	require.Error(t, err)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, int64(1), fake.peticionesMe.Load(),
		"tras un 401 no hay reintento: ya no queda bearer que enviar")
	assert.False(t, sesion.HasToken(), "el transporte descarta la sesión ante 401")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpiaSesionYCache(t *testing.T) {
	_, uc, sesion, store := entornoAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@example.com", Password: "secreto123",
	})
	require.NoError(t, err)
	require.True(t, sesion.HasToken())
	require.Greater(t, store.Len(), 0)

	uc.Logout(context.Background())

	assert.False(t, sesion.HasToken(), "logout debe limpiar la sesión")
	assert.Equal(t, 0, store.Len(), "logout debe vaciar todo el caché")

	_, err = uc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
