package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/application/receipts"
	"github.com/tu-usuario/wasl-api/internal/domain"
	domreceipt "github.com/tu-usuario/wasl-api/internal/domain/receipt"
	"github.com/tu-usuario/wasl-api/pkg/logger"
)

// ReceiptHandler maneja el formulario del recibo: borrador, previsualización
// y exportación.
type ReceiptHandler struct {
	draftUC  *receipts.DraftUseCase
	exportUC *receipts.ExportUseCase
	log      *logger.Logger
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(draftUC *receipts.DraftUseCase, exportUC *receipts.ExportUseCase, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{draftUC: draftUC, exportUC: exportUC, log: log}
}

// Draft borrador inicial de sesión.
// GET /api/receipts/draft
func (h *ReceiptHandler) Draft(c *fiber.Ctx) error {
	return c.JSON(h.draftUC.NewDraft())
}

// Preview total e importe en letras de las líneas actuales, sin efectos.
// POST /api/receipts/preview
func (h *ReceiptHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.draftUC.Preview(in))
}

// Export valida, persiste en el historial y devuelve el PDF paginado.
// POST /api/receipts/export
func (h *ReceiptHandler) Export(c *fiber.Ctx) error {
	var in dto.ReceiptFormRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.exportUC.Export(c.Context(), in)
	if err != nil {
		var verrs domreceipt.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "يرجى تصحيح الأخطاء في النموذج",
				Fields:  verrs,
			})
		}
		if errors.Is(err, domain.ErrExportFailed) {
			// Aviso genérico único; el estado de la app sigue usable y el
			// usuario puede reintentar. El detalle va al log, correlacionado
			// con la petición.
			h.log.Error().Err(err).
				Str("request_id", GetRequestID(c)).
				Msg("exportación fallida")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Code:    "EXPORT_FAILED",
				Message: "حدث خطأ أثناء إنشاء ملف PDF. يرجى المحاولة مرة أخرى.",
			})
		}
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Msg("error no clasificado en exportación")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(result.Filename)
	return c.Send(result.PDF)
}
