package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIURL endpoint local usado cuando no hay URL configurada o la
// configurada no es una URL válida. El arranque nunca falla por esto.
const DefaultAPIURL = "http://localhost:3002/api"

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	API   APIConfig
	Redis RedisConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // vacío = el nivel por defecto del entorno
}

// HTTPConfig configuración del servidor HTTP de la consola.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig ubicación del API del taller (servidor remoto, dueño de los datos).
// PublicURL es la URL que configura el operador; InternalURL, si está definida
// y es válida, se prefiere en contexto de red interna (server-rendering).
type APIConfig struct {
	PublicURL   string
	InternalURL string
}

// BaseURL resuelve la URL base a usar contra el API remoto.
// Orden: InternalURL válida → PublicURL válida → DefaultAPIURL.
// Devuelve además un aviso descriptivo cuando hubo fallback, para que el
// llamador lo registre; una URL mal formada nunca detiene el arranque.
func (c APIConfig) BaseURL() (base string, warning string) {
	if c.InternalURL != "" {
		if esURLValida(c.InternalURL) {
			return strings.TrimRight(c.InternalURL, "/"), ""
		}
		warning = fmt.Sprintf("INTERNAL_API_URL no es una URL válida: %s", c.InternalURL)
	}
	if strings.TrimSpace(c.PublicURL) == "" {
		return DefaultAPIURL, appendAviso(warning, "PUBLIC_API_URL no está configurado, usando "+DefaultAPIURL)
	}
	if !esURLValida(c.PublicURL) {
		return DefaultAPIURL, appendAviso(warning, fmt.Sprintf("PUBLIC_API_URL no es una URL válida: %s, usando %s", c.PublicURL, DefaultAPIURL))
	}
	return strings.TrimRight(c.PublicURL, "/"), warning
}

func esURLValida(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func appendAviso(prev, aviso string) string {
	if prev == "" {
		return aviso
	}
	return prev + "; " + aviso
}

// RedisConfig configuración opcional para persistir el token de sesión.
// Con Addr vacío la consola usa el almacén en memoria.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled indica si se configuró un Redis para la sesión.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, PUBLIC_API_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "taller-console"),
			LogLevel: getString(v, "LOG_LEVEL", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		API: APIConfig{
			PublicURL:   getString(v, "PUBLIC_API_URL", ""),
			InternalURL: getString(v, "INTERNAL_API_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", ""),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				// Un valor ilegible no puede volverse 0 en silencio.
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
