package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConExp(t *testing.T, exp time.Time, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: role,
	})
	// La firma no importa: la consola nunca la verifica.
	signed, err := tok.SignedString([]byte("cualquier-secreto"))
	require.NoError(t, err)
	return signed
}

func TestInspect_LeeClaimsSinVerificarFirma(t *testing.T) {
	signed := tokenConExp(t, time.Now().Add(time.Hour), "mechanic")

	claims, err := Inspect(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "mechanic", claims.Role)
}

func TestInspect_CadenaVaciaEsError(t *testing.T) {
	_, err := Inspect("")
	assert.Error(t, err)
}

func TestExpired_TokenVencido(t *testing.T) {
	now := time.Now()
	signed := tokenConExp(t, now.Add(-time.Minute), "admin")
	assert.True(t, Expired(signed, now))
}

func TestExpired_TokenVigente(t *testing.T) {
	now := time.Now()
	signed := tokenConExp(t, now.Add(time.Hour), "admin")
	assert.False(t, Expired(signed, now))
}

// Un token sin exp o ilegible no se descarta localmente: el 401 del servidor
// es quien decide.
func TestExpired_SinExpNoSeConsideraVencido(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: "admin"})
	signed, err := tok.SignedString([]byte("secreto"))
	require.NoError(t, err)

	assert.False(t, Expired(signed, time.Now()))
}

func TestExpired_IlegibleNoSeConsideraVencido(t *testing.T) {
	assert.False(t, Expired("no.es.jwt", time.Now()))
	assert.False(t, Expired("", time.Now()))
}
