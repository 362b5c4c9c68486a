package entity

import "time"

// Roles válidos para User. El rol es la única entrada de autorización:
// lo emite el API en /auth/me y aquí solo se consume.
const (
	RoleAdmin     = "admin"
	RoleOwner     = "owner"
	RoleMechanic  = "mechanic"
	RoleRecepcion = "recepcion"
)

// Roles lista todos los roles conocidos, en orden estable.
var Roles = []string{RoleAdmin, RoleOwner, RoleMechanic, RoleRecepcion}

// User representa al usuario autenticado (solo lectura; lo refresca GET /auth/me).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
