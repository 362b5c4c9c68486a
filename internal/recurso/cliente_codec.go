package recurso

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Taller-console/internal/domain/entity"
)

// El API del taller habla de clientes con otro vocabulario que la consola:
// nombre/telefono/direccion en el cable, name/phone/address en exhibición.
// Este codec es la traducción bidireccional, total (nunca entra en pánico) y
// con ley de ida y vuelta sobre los campos que reconoce.

// ClienteDatos campos editables de un cliente en vocabulario de exhibición.
type ClienteDatos struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// clienteWire forma del cliente en el cable. Los timestamps llegan bajo
// cualquiera de los dos pares de nombres observados; se normaliza siempre a
// createdAt/updatedAt.
type clienteWire struct {
	ID        string `json:"id,omitempty"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`

	CreadoEn      *time.Time `json:"creadoEn,omitempty"`
	ActualizadoEn *time.Time `json:"actualizadoEn,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ClienteFromWire decodifica un cliente del cable al vocabulario de exhibición.
func ClienteFromWire(raw json.RawMessage) (entity.Cliente, error) {
	var w clienteWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return entity.Cliente{}, fmt.Errorf("cliente: decodificar: %w", err)
	}
	c := entity.Cliente{
		ID:      w.ID,
		Name:    w.Nombre,
		Email:   w.Email,
		Phone:   w.Telefono,
		Address: w.Direccion,
	}
	// Fallback de timestamps: creadoEn/actualizadoEn o createdAt/updatedAt.
	if w.CreadoEn != nil {
		c.CreatedAt = *w.CreadoEn
	} else if w.CreatedAt != nil {
		c.CreatedAt = *w.CreatedAt
	}
	if w.ActualizadoEn != nil {
		c.UpdatedAt = *w.ActualizadoEn
	} else if w.UpdatedAt != nil {
		c.UpdatedAt = *w.UpdatedAt
	}
	return c, nil
}

// ClienteToWire codifica los datos editables al vocabulario del cable.
// Acepta ClienteDatos o entity.Cliente; cualquier otro tipo es error.
func ClienteToWire(datos any) (any, error) {
	switch d := datos.(type) {
	case ClienteDatos:
		return clienteWire{Nombre: d.Name, Email: d.Email, Telefono: d.Phone, Direccion: d.Address}, nil
	case *ClienteDatos:
		return clienteWire{Nombre: d.Name, Email: d.Email, Telefono: d.Phone, Direccion: d.Address}, nil
	case entity.Cliente:
		return clienteWire{Nombre: d.Name, Email: d.Email, Telefono: d.Phone, Direccion: d.Address}, nil
	default:
		return nil, fmt.Errorf("cliente: tipo de datos no soportado %T", datos)
	}
}
