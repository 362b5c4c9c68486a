// Package rbac centraliza la matriz de permisos (rol, recurso, acción).
//
// Antes cada página repetía sus propios booleanos de rol; aquí vive la única
// fuente de verdad que consultan todas las páginas y middlewares. La consulta
// es pura: sin estado, sin efectos, total para cualquier combinación.
package rbac

// Recurso tipos de recurso gobernados por la matriz.
type Recurso string

const (
	RecursoCliente      Recurso = "clientes"
	RecursoVehiculo     Recurso = "vehiculos"
	RecursoProducto     Recurso = "productos"
	RecursoServicio     Recurso = "servicios"
	RecursoVenta        Recurso = "ventas"
	RecursoRecordatorio Recurso = "recordatorios"
)

// Accion acciones gobernadas por la matriz.
type Accion string

const (
	AccionVer      Accion = "view"
	AccionCrear    Accion = "create"
	AccionEditar   Accion = "edit"
	AccionEliminar Accion = "delete"
)

// matriz (recurso, acción) → roles permitidos. Un recurso/acción ausente
// deniega, salvo recordatorios.view que está abierto a todos los roles.
var matriz = map[Recurso]map[Accion][]string{
	RecursoCliente: {
		AccionVer:      {"admin", "owner", "recepcion"},
		AccionCrear:    {"admin", "recepcion"},
		AccionEditar:   {"admin", "recepcion"},
		AccionEliminar: {"admin"},
	},
	RecursoVehiculo: {
		AccionVer:      {"admin", "owner", "recepcion"},
		AccionCrear:    {"admin", "recepcion"},
		AccionEditar:   {"admin", "recepcion"},
		AccionEliminar: {"admin"},
	},
	RecursoProducto: {
		AccionVer:      {"admin", "owner"},
		AccionCrear:    {"admin"},
		AccionEditar:   {"admin"},
		AccionEliminar: {"admin"},
	},
	RecursoServicio: {
		AccionVer:      {"admin", "owner", "mechanic", "recepcion"},
		AccionCrear:    {"admin", "mechanic"},
		AccionEditar:   {"admin", "mechanic"},
		AccionEliminar: {"admin"},
	},
	RecursoVenta: {
		AccionVer:      {"admin", "owner", "recepcion"},
		AccionCrear:    {"admin", "recepcion"},
		AccionEliminar: {"admin"},
	},
	// La página de recordatorios no tiene verja de vista: todos los roles la ven.
	// Su única acción es el envío de notificación, gobernado igual que la vista.
	RecursoRecordatorio: {
		AccionVer: {"admin", "owner", "mechanic", "recepcion"},
	},
}

// Can indica si el rol puede ejecutar la acción sobre el recurso.
// Total y determinista: cualquier combinación devuelve un booleano.
func Can(rol string, recurso Recurso, accion Accion) bool {
	acciones, ok := matriz[recurso]
	if !ok {
		return false
	}
	for _, r := range acciones[accion] {
		if r == rol {
			return true
		}
	}
	return false
}

// Permisos affordances de página para un rol sobre un recurso.
type Permisos struct {
	PuedeVer      bool `json:"puedeVer"`
	PuedeCrear    bool `json:"puedeCrear"`
	PuedeEditar   bool `json:"puedeEditar"`
	PuedeEliminar bool `json:"puedeEliminar"`
}

// PermisosDe evalúa la matriz completa para (rol, recurso).
func PermisosDe(rol string, recurso Recurso) Permisos {
	return Permisos{
		PuedeVer:      Can(rol, recurso, AccionVer),
		PuedeCrear:    Can(rol, recurso, AccionCrear),
		PuedeEditar:   Can(rol, recurso, AccionEditar),
		PuedeEliminar: Can(rol, recurso, AccionEliminar),
	}
}
