package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Taller-console/internal/application/auth"
	"github.com/jhoicas/Taller-console/internal/application/usecase"
	"github.com/jhoicas/Taller-console/internal/cache"
	infrapdf "github.com/jhoicas/Taller-console/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/Taller-console/internal/interfaces/http"
	"github.com/jhoicas/Taller-console/internal/recurso"
	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/internal/transport"
	"github.com/jhoicas/Taller-console/pkg/config"
	"github.com/jhoicas/Taller-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando consola")

	baseURL, aviso := cfg.API.BaseURL()
	if aviso != "" {
		log.Warn().Str("fallback", baseURL).Msg(aviso)
	}
	log.Info().Str("api", baseURL).Msg("API del taller")

	// Sesión: en memoria por defecto; Redis si se configuró, para que el
	// operador no pierda la sesión en cada reinicio de la consola.
	var sesion session.Store = session.NewMemoryStore()
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		sesion = session.NewRedisStore(rdb, 24*time.Hour)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesión persistida en Redis")
	}

	api := transport.New(baseURL, sesion, log,
		transport.WithOnUnauthorized(func() {
			log.Warn().Msg("sesión expirada, se requiere login")
		}),
	)

	store := cache.NewStore()
	catalogo := recurso.NewCatalogo(api, store)

	authUC := auth.New(api, sesion, store, log)
	if cfg.Redis.Enabled() {
		// Un token heredado de un arranque anterior puede estar vencido o
		// revocado: se revalida contra el servidor antes de servir tráfico.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		authUC.RevalidarSesion(ctx)
		cancel()
	}

	dashboardUC := usecase.NewDashboardUseCase(
		catalogo.Clientes, catalogo.Vehiculos, catalogo.Productos, catalogo.Servicios,
	)
	clienteUC := usecase.NewClienteUseCase(catalogo.Clientes)
	vehiculoUC := usecase.NewVehiculoUseCase(catalogo.Vehiculos)
	productoUC := usecase.NewProductoUseCase(catalogo.Productos)
	servicioUC := usecase.NewServicioUseCase(catalogo.Servicios, catalogo.Productos)
	ventaUC := usecase.NewVentaUseCase(catalogo.Ventas)
	recordatorioUC := usecase.NewRecordatorioUseCase(catalogo.Recordatorios, time.Now)

	// PDF: comprobante de venta para entregar al cliente
	pdfGenerator := infrapdf.NewMarotoComprobanteGenerator(cfg.App.Name)
	ventaPDFUC := usecase.NewVentaPDFUseCase(
		catalogo.Ventas, catalogo.Clientes, catalogo.Productos, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller Console",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DashboardUC:    dashboardUC,
		ClienteUC:      clienteUC,
		VehiculoUC:     vehiculoUC,
		ProductoUC:     productoUC,
		ServicioUC:     servicioUC,
		VentaUC:        ventaUC,
		VentaPDFUC:     ventaPDFUC,
		RecordatorioUC: recordatorioUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
