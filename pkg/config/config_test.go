package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// La resolución de la URL base jamás detiene el arranque: mal configurada,
// cae al endpoint local con un aviso.

func TestBaseURL_PrefiereInternalValida(t *testing.T) {
	c := APIConfig{InternalURL: "http://taller-api.interno:3002/api", PublicURL: "https://api.taller.example.com"}

	base, aviso := c.BaseURL()
	assert.Equal(t, "http://taller-api.interno:3002/api", base)
	assert.Empty(t, aviso)
}

func TestBaseURL_InternalInvalidaCaeAPublica(t *testing.T) {
	c := APIConfig{InternalURL: "no-es-una-url", PublicURL: "https://api.taller.example.com"}

	base, aviso := c.BaseURL()
	assert.Equal(t, "https://api.taller.example.com", base)
	assert.NotEmpty(t, aviso, "el fallback debe dejar constancia")
}

func TestBaseURL_SinConfiguracionUsaDefault(t *testing.T) {
	base, aviso := APIConfig{}.BaseURL()
	assert.Equal(t, DefaultAPIURL, base)
	assert.NotEmpty(t, aviso)
}

func TestBaseURL_PublicaMalformadaUsaDefault(t *testing.T) {
	casos := []string{"no-es-una-url", "://falta-esquema", "http://"}
	for _, url := range casos {
		base, aviso := APIConfig{PublicURL: url}.BaseURL()
		assert.Equal(t, DefaultAPIURL, base, "URL %q debe caer al default", url)
		assert.NotEmpty(t, aviso)
	}
}

func TestBaseURL_RecortaBarraFinal(t *testing.T) {
	base, _ := APIConfig{PublicURL: "https://api.taller.example.com/"}.BaseURL()
	assert.Equal(t, "https://api.taller.example.com", base)
}

// Un HTTP_PORT ilegible no puede dejar la consola escuchando en :0;
// cae al puerto por defecto igual que BaseURL cae a su default.
func TestLoad_PuertoIlegibleUsaDefault(t *testing.T) {
	t.Setenv("HTTP_PORT", "abc")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTP.Port)
}

func TestLoad_PuertoNumericoSeRespeta(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestRedisConfig_Enabled(t *testing.T) {
	assert.False(t, RedisConfig{}.Enabled())
	assert.True(t, RedisConfig{Addr: "localhost:6379"}.Enabled())
}
