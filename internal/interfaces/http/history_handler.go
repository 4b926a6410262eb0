package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/application/receipts"
	"github.com/tu-usuario/wasl-api/internal/domain"
)

// HistoryHandler maneja el historial de recibos persistido en el dispositivo.
type HistoryHandler struct {
	uc *receipts.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *receipts.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List historial completo, el más nuevo primero.
// GET /api/receipts/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Remove elimina un recibo y devuelve el historial resultante.
// DELETE /api/receipts/history/:id
func (h *HistoryHandler) Remove(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	items, err := h.uc.Remove(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// Clear vacía el historial.
// DELETE /api/receipts/history
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// DownloadPDF re-descarga el PDF vectorial de un recibo guardado.
// GET /api/receipts/history/:id/pdf
func (h *HistoryHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	pdfBytes, filename, err := h.uc.DownloadPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recibo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    "EXPORT_FAILED",
			Message: "حدث خطأ أثناء إنشاء ملف PDF. يرجى المحاولة مرة أخرى.",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdfBytes)
}
