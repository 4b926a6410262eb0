package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wasl-api/internal/application/receipts"
	"github.com/tu-usuario/wasl-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DraftUC   *receipts.DraftUseCase
	ExportUC  *receipts.ExportUseCase
	HistoryUC *receipts.HistoryUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Recibos (formulario y exportación)
	group := api.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.DraftUC, deps.ExportUC, deps.Log)
	group.Get("/draft", receiptHandler.Draft)
	group.Post("/preview", receiptHandler.Preview)
	group.Post("/export", receiptHandler.Export)

	// Historial del dispositivo
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	group.Get("/history", historyHandler.List)
	group.Delete("/history", historyHandler.Clear)
	group.Get("/history/:id/pdf", historyHandler.DownloadPDF)
	group.Delete("/history/:id", historyHandler.Remove)
}
