package entity

import "time"

// DiasUrgencia ventana en días dentro de la cual un recordatorio se marca urgente.
const DiasUrgencia = 7

// Recordatorio aviso de mantenimiento próximo para un vehículo.
// Notificado lo voltea el servidor al enviar la notificación; la consola
// debe refrescar para observarlo.
type Recordatorio struct {
	ID           string    `json:"id"`
	VehiculoID   string    `json:"vehiculoId"`
	Tipo         string    `json:"tipo"`
	ProximaFecha time.Time `json:"proximaFecha"`
	Descripcion  string    `json:"descripcion"`
	Notificado   bool      `json:"notificado"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// EsUrgente indica si la próxima fecha cae dentro de la ventana de urgencia
// contada desde now. Estado derivado de exhibición: se recalcula en cada
// construcción de página y no se cachea.
func (r Recordatorio) EsUrgente(now time.Time) bool {
	return !r.ProximaFecha.After(now.AddDate(0, 0, DiasUrgencia))
}

// DiasRestantes días completos entre now y la próxima fecha (negativo si ya venció).
func (r Recordatorio) DiasRestantes(now time.Time) int {
	return int(r.ProximaFecha.Sub(now).Hours() / 24)
}
