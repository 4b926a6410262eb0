package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/wasl-api/internal/application/receipts"
	infrahistory "github.com/tu-usuario/wasl-api/internal/infrastructure/history"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/kvstore"
	infrapdf "github.com/tu-usuario/wasl-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/render"
	httpRouter "github.com/tu-usuario/wasl-api/internal/interfaces/http"
	"github.com/tu-usuario/wasl-api/pkg/config"
	"github.com/tu-usuario/wasl-api/pkg/logger"
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
		Msg("iniciando aplicación")

	// Almacén clave/valor local del dispositivo (historial de recibos).
	store, err := kvstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	historyRepo := infrahistory.NewKVHistoryRepository(store, log)

	// Capacidades de render y emisión del documento.
	renderer := render.NewRasterRenderer(render.Config{
		FontPath: cfg.Render.FontPath,
		WidthPx:  cfg.Render.WidthPx,
		Scale:    cfg.Render.Scale,
	})
	sliceWriter := infrapdf.NewSliceDocumentWriter()
	marotoGen := infrapdf.NewMarotoReceiptGenerator(cfg.Render.FontPath)

	// Precalentar la fuente al arrancar en vez de en la primera exportación.
	if err := renderer.Ready(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cargar fuente de render")
	}

	draftUC := receipts.NewDraftUseCase()
	exportUC := receipts.NewExportUseCase(historyRepo, renderer, sliceWriter, log)
	historyUC := receipts.NewHistoryUseCase(historyRepo, marotoGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Wasl API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DraftUC:   draftUC,
		ExportUC:  exportUC,
		HistoryUC: historyUC,
		Log:       log,
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

	log.Info().Msg("aplicación detenida")
}
