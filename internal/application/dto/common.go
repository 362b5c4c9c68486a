package dto

// ErrorResponse cuerpo de error HTTP de la consola.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NoAutorizado placeholder fijo que reemplaza por completo una página cuya
// vista el rol no puede ver; nunca se renderiza una página parcial.
var NoAutorizado = ErrorResponse{
	Code:    "FORBIDDEN",
	Message: "No tienes autorización para ver esta página",
}
