package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Taller-console/internal/application/dto"
	"github.com/jhoicas/Taller-console/internal/recurso"
)

// RecordatorioUseCase casos de uso de la página de recordatorios.
type RecordatorioUseCase struct {
	recordatorios *recurso.Recordatorios
	ahora         func() time.Time
}

// NewRecordatorioUseCase construye el caso de uso. ahora se inyecta para
// poder fijar el reloj en tests; nil usa time.Now.
func NewRecordatorioUseCase(recordatorios *recurso.Recordatorios, ahora func() time.Time) *RecordatorioUseCase {
	if ahora == nil {
		ahora = time.Now
	}
	return &RecordatorioUseCase{recordatorios: recordatorios, ahora: ahora}
}

// List devuelve los recordatorios ordenados por próxima fecha ascendente,
// con urgencia derivada. La urgencia se recalcula contra el reloj en cada
// llamada y nunca se cachea: lo que está en caché es la colección del
// servidor, no el estado derivado.
func (uc *RecordatorioUseCase) List(ctx context.Context) ([]dto.RecordatorioView, error) {
	lista, err := uc.recordatorios.List(ctx)
	if err != nil {
		return nil, err
	}
	now := uc.ahora()
	vistas := make([]dto.RecordatorioView, 0, len(lista))
	for _, r := range lista {
		vistas = append(vistas, dto.RecordatorioView{
			Recordatorio:  r,
			Urgente:       r.EsUrgente(now),
			DiasRestantes: r.DiasRestantes(now),
		})
	}
	sort.Slice(vistas, func(i, j int) bool {
		return vistas[i].ProximaFecha.Before(vistas[j].ProximaFecha)
	})
	return vistas, nil
}

// SendWhatsApp dispara el envío de la notificación en el servidor.
func (uc *RecordatorioUseCase) SendWhatsApp(ctx context.Context, recordatorioID, clienteID string) error {
	return uc.recordatorios.SendWhatsApp(ctx, recordatorioID, clienteID)
}
