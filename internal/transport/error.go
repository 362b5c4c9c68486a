package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError error reportado por el API del taller (4xx/5xx con cuerpo JSON).
// Los rechazos de regla de negocio (p. ej. stock insuficiente) llegan así y
// la consola solo exhibe el mensaje, nunca lo reinterpreta.
type APIError struct {
	Status  int                    `json:"-"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implementa error.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: estado HTTP %d", e.Status)
}

// IsUnauthorized indica si el error corresponde a un 401.
func (e *APIError) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }

// IsNotFound indica si el error corresponde a un 404.
func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// parseAPIError construye el APIError desde el cuerpo; un cuerpo no-JSON no
// pierde el estado HTTP.
func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	if len(body) > 0 {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
