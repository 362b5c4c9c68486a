package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// El nivel por defecto depende del entorno: debug en development, info en el resto.
func TestNew_NivelPorDefectoSegunEntorno(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New(Config{Env: "development"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{Env: "production"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{}).Zerolog().GetLevel())
}

func TestNew_NivelExplicitoPisaElDelEntorno(t *testing.T) {
	l := New(Config{Env: "development", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

// Un nivel irreconocible no detiene el arranque: queda el del entorno.
func TestNew_NivelInvalidoUsaElDelEntorno(t *testing.T) {
	l := New(Config{Env: "production", Level: "verboso"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}

func TestComponent_AgregaCampoFijo(t *testing.T) {
	l := Nop().Component("transport")
	assert.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.Zerolog().GetLevel(), "el sublogger de Nop sigue descartando todo")
}
