package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/cache"
	"github.com/jhoicas/Taller-console/internal/domain"
	"github.com/jhoicas/Taller-console/internal/domain/entity"
	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/internal/transport"
	"github.com/jhoicas/Taller-console/pkg/logger"
	"github.com/jhoicas/Taller-console/pkg/token"
)

// claveUsuario entrada de caché del usuario autenticado (GET /auth/me).
var claveUsuario = cache.EntityKey("auth", "me")

// UseCase casos de uso de autenticación de la consola: login, logout e
// identidad. La emisión del token y la verificación de credenciales son del
// servidor; aquí solo se orquesta sesión, caché y validación de formulario.
type UseCase struct {
	api      *transport.Client
	sesion   session.Store
	cache    *cache.Store
	validate *validator.Validate
	log      *logger.Logger
}

// New construye el caso de uso de auth.
func New(api *transport.Client, sesion session.Store, c *cache.Store, log *logger.Logger) *UseCase {
	return &UseCase{
		api:      api,
		sesion:   sesion,
		cache:    c,
		validate: validator.New(),
		log:      log.Component("auth"),
	}
}

// Login valida las credenciales en cliente y, solo si pasan, llama a
// POST /auth/login. Entrada inválida (email mal formado, password < 6)
// retorna error de validación sin producir ninguna llamada de red.
// En éxito guarda el token y deja el usuario cacheado.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	var resp dto.AuthResponse
	if err := uc.api.Post(ctx, "/auth/login", in, &resp); err != nil {
		return nil, err
	}
	uc.sesion.SetToken(resp.Token)
	uc.cache.Set(claveUsuario, resp.User)
	uc.log.Info().Str("user", resp.User.Email).Str("role", resp.User.Role).Msg("sesión iniciada")
	return &resp.User, nil
}

// CurrentUser resuelve la identidad del usuario actual.
//
// Deshabilitada sin token (ErrUnauthorized inmediato, sin red). Un token
// localmente expirado se descarta sin round-trip. La consulta a /auth/me
// tolera exactamente un reintento — a diferencia de las lecturas de los
// demás recursos, que no reintentan — porque un fallo transitorio aquí
// expulsaría al usuario a login sin necesidad.
func (uc *UseCase) CurrentUser(ctx context.Context) (*entity.User, error) {
	tok, ok := uc.sesion.Token()
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if token.Expired(tok, time.Now()) {
		uc.sesion.Clear()
		return nil, domain.ErrUnauthorized
	}
	if v, ok := uc.cache.Get(claveUsuario); ok {
		u := v.(entity.User)
		return &u, nil
	}

	var user entity.User
	err := uc.api.Get(ctx, "/auth/me", nil, &user)
	if err != nil {
		// Un solo reintento; si vuelve a fallar, el resultado es terminal y
		// el guard redirige a login (nunca reintenta indefinidamente).
		// Tras un 401 el transporte ya limpió la sesión: reintentar saldría
		// sin bearer y fallaría seguro, así que el 401 es terminal directo.
		var apiErr *transport.APIError
		if ctx.Err() != nil || (errors.As(err, &apiErr) && apiErr.IsUnauthorized()) {
			return nil, err
		}
		if err = uc.api.Get(ctx, "/auth/me", nil, &user); err != nil {
			return nil, err
		}
	}
	uc.cache.Set(claveUsuario, user)
	return &user, nil
}

// Logout llama a POST /auth/logout y, pase lo que pase con esa llamada,
// limpia la sesión y vacía todo el caché de la consola.
func (uc *UseCase) Logout(ctx context.Context) {
	if err := uc.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		uc.log.Debug().Err(err).Msg("logout remoto falló; la sesión local se limpia igual")
	}
	uc.sesion.Clear()
	uc.cache.Flush()
}

// RevalidarSesion se invoca una vez al arrancar cuando el almacén de sesión
// es persistido: un token recuperado de Redis solo vale si /auth/me lo
// confirma; si no, se descarta.
func (uc *UseCase) RevalidarSesion(ctx context.Context) {
	if !uc.sesion.HasToken() {
		return
	}
	if _, err := uc.CurrentUser(ctx); err != nil {
		uc.log.Warn().Err(err).Msg("token persistido inválido, descartando sesión")
		uc.sesion.Clear()
		uc.cache.Flush()
	}
}
