package entity

import "time"

// Vehiculo representa un vehículo del taller; pertenece a un Cliente.
// La política de borrado ante servicios asociados la define el servidor.
type Vehiculo struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"clienteId"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Anio      int       `json:"anio"`
	Placa     string    `json:"placa"`
	VIN       string    `json:"vin"`
	KmActual  int       `json:"kmActual"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
