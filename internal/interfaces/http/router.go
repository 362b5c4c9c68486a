package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/auth"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	DashboardUC    *usecase.DashboardUseCase
	ClienteUC      *usecase.ClienteUseCase
	VehiculoUC     *usecase.VehiculoUseCase
	ProductoUC     *usecase.ProductoUseCase
	ServicioUC     *usecase.ServicioUseCase
	VentaUC        *usecase.VentaUseCase
	VentaPDFUC     *usecase.VentaPDFUseCase
	RecordatorioUC *usecase.RecordatorioUseCase
}

// Router registra las rutas de la consola.
//
// Todas las páginas protegidas pasan por el guard (identidad resuelta o
// redirección a login) y por la verja de vista de su recurso; las mutaciones
// además por la verja de acción. Recordatorios no tiene verja de vista real:
// su fila de la matriz admite todos los roles.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; me/logout tras el guard)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", GuardMiddleware(deps.AuthUC))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)

	// Dashboard (sin verja de vista: todo rol autenticado lo ve)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Pagina)

	// Clientes
	clientes := protected.Group("/clientes", RequireView(rbac.RecursoCliente))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.Pagina)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Post("/", RequireAction(rbac.RecursoCliente, rbac.AccionCrear), clienteHandler.Create)
	clientes.Patch("/:id", RequireAction(rbac.RecursoCliente, rbac.AccionEditar), clienteHandler.Update)
	clientes.Delete("/:id", RequireAction(rbac.RecursoCliente, rbac.AccionEliminar), clienteHandler.Delete)

	// Vehículos
	vehiculos := protected.Group("/vehiculos", RequireView(rbac.RecursoVehiculo))
	vehiculoHandler := NewVehiculoHandler(deps.VehiculoUC)
	vehiculos.Get("/", vehiculoHandler.Pagina)
	vehiculos.Get("/:id", vehiculoHandler.Get)
	vehiculos.Post("/", RequireAction(rbac.RecursoVehiculo, rbac.AccionCrear), vehiculoHandler.Create)
	vehiculos.Patch("/:id", RequireAction(rbac.RecursoVehiculo, rbac.AccionEditar), vehiculoHandler.Update)
	vehiculos.Delete("/:id", RequireAction(rbac.RecursoVehiculo, rbac.AccionEliminar), vehiculoHandler.Delete)

	// Productos (inventario)
	productos := protected.Group("/productos", RequireView(rbac.RecursoProducto))
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.Pagina)
	productos.Get("/:id", productoHandler.Get)
	productos.Post("/", RequireAction(rbac.RecursoProducto, rbac.AccionCrear), productoHandler.Create)
	productos.Patch("/:id", RequireAction(rbac.RecursoProducto, rbac.AccionEditar), productoHandler.Update)
	productos.Delete("/:id", RequireAction(rbac.RecursoProducto, rbac.AccionEliminar), productoHandler.Delete)

	// Servicios
	servicios := protected.Group("/servicios", RequireView(rbac.RecursoServicio))
	servicioHandler := NewServicioHandler(deps.ServicioUC)
	servicios.Get("/", servicioHandler.Pagina)
	servicios.Get("/:id", servicioHandler.Get)
	servicios.Post("/", RequireAction(rbac.RecursoServicio, rbac.AccionCrear), servicioHandler.Create)
	servicios.Patch("/:id", RequireAction(rbac.RecursoServicio, rbac.AccionEditar), servicioHandler.Update)
	servicios.Delete("/:id", RequireAction(rbac.RecursoServicio, rbac.AccionEliminar), servicioHandler.Delete)

	// Ventas
	ventas := protected.Group("/ventas", RequireView(rbac.RecursoVenta))
	ventaHandler := NewVentaHandler(deps.VentaUC, deps.VentaPDFUC)
	ventas.Get("/", ventaHandler.Pagina)
	ventas.Post("/cotizar", ventaHandler.Cotizar)
	ventas.Get("/:id", ventaHandler.Get)
	ventas.Get("/:id/pdf", ventaHandler.ComprobantePDF)
	ventas.Post("/", RequireAction(rbac.RecursoVenta, rbac.AccionCrear), ventaHandler.Create)
	ventas.Delete("/:id", RequireAction(rbac.RecursoVenta, rbac.AccionEliminar), ventaHandler.Delete)

	// Recordatorios
	recordatorios := protected.Group("/recordatorios", RequireView(rbac.RecursoRecordatorio))
	recordatorioHandler := NewRecordatorioHandler(deps.RecordatorioUC)
	recordatorios.Get("/", recordatorioHandler.Pagina)
	recordatorios.Post("/:id/send-whatsapp", recordatorioHandler.SendWhatsApp)
}
