// Package token inspecciona tokens JWT emitidos por el API del taller.
//
// La consola no conoce el secreto de firma del servidor, así que aquí no se
// valida la firma: el chequeo autoritativo de identidad es siempre
// GET /auth/me. Lo que sí puede hacerse localmente es leer los claims para
// descartar un token ya expirado sin gastar un round-trip.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más los campos que emite el API del taller.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"` // "admin" | "owner" | "mechanic" | "recepcion"
}

// Inspect parsea el token sin validar firma y devuelve sus claims.
// Retorna error si el token no es un JWT bien formado.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: cadena vacía")
	}
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: parsear: %w", err)
	}
	return claims, nil
}

// Expired indica si el token trae claim de expiración y ya venció.
// Un token sin exp o ilegible no se considera expirado aquí: la decisión
// final la toma el servidor respondiendo 401.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
