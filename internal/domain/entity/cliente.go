package entity

import "time"

// Cliente representa un cliente del taller en el vocabulario de la consola.
// El API remoto usa otro vocabulario (nombre, telefono, direccion); la
// traducción vive en el codec del recurso, nunca en la entidad.
type Cliente struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
