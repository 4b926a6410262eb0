// Package receipts contiene los casos de uso del recibo: exportación,
// previsualización y gestión del historial.
package receipts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/domain"
	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/pagination"
	"github.com/tu-usuario/wasl-api/internal/domain/receipt"
	"github.com/tu-usuario/wasl-api/internal/domain/repository"
	"github.com/tu-usuario/wasl-api/internal/domain/tafqeet"
	"github.com/tu-usuario/wasl-api/pkg/logger"
)

// ExportResult documento listo para descargar más el registro sellado.
type ExportResult struct {
	PDF      []byte
	Filename string
	Record   *entity.ReceiptRecord
	Pages    int
}

// ExportUseCase orquesta la tubería de exportación:
// total → letras → validar → persistir → renderizar → paginar → emitir.
// La validación aborta antes de cualquier efecto; un fallo de render o
// emisión NO revierte la entrada ya persistida en el historial.
type ExportUseCase struct {
	historyRepo repository.HistoryRepository
	renderer    Renderer
	writer      DocumentWriter
	log         *logger.Logger
	now         func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	historyRepo repository.HistoryRepository,
	renderer Renderer,
	writer DocumentWriter,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		historyRepo: historyRepo,
		renderer:    renderer,
		writer:      writer,
		log:         log,
		now:         time.Now,
	}
}

// Export ejecuta la tubería completa sobre un borrador del formulario.
// Errores posibles: receipt.ValidationErrors (recuperable, por campo) o un
// error que envuelve domain.ErrExportFailed (genérico, reintentable).
func (uc *ExportUseCase) Export(ctx context.Context, in dto.ReceiptFormRequest) (*ExportResult, error) {
	draft := in.ToEntity()

	// 1) Total a precisión completa y validación: si hay errores no se
	// persiste, no se transcribe y no se renderiza nada. Validar primero
	// garantiza que a la transcripción solo llegan importes positivos.
	draft.Amount = receipt.Total(draft.Items)
	if errs := receipt.Validate(draft); len(errs) > 0 {
		return nil, errs
	}

	// 2) Importe en letras; degrada a vacío si el importe excede la tabla de
	// magnitudes (la plantilla omite la línea).
	words, err := tafqeet.Amount(draft.Amount, draft.Currency)
	if err != nil {
		if !errors.Is(err, tafqeet.ErrAmountTooLarge) {
			return nil, fmt.Errorf("importe en letras: %w", err)
		}
		uc.log.Warn().Str("amount", draft.Amount.String()).
			Msg("importe fuera de la tabla de magnitudes, se omite la línea en letras")
		words = ""
	}
	draft.AmountInWords = words

	// 3) Persistir ANTES de renderizar: el historial sobrevive a fallos de
	// render.
	record, err := uc.historyRepo.Append(draft)
	if err != nil {
		return nil, fmt.Errorf("guardar en historial: %w", err)
	}

	// 4) Esperar la capacidad de render (fuentes listas) y producir el bitmap.
	if err := uc.renderer.Ready(ctx); err != nil {
		return nil, fmt.Errorf("%w: preparar renderizador: %v", domain.ErrExportFailed, err)
	}
	img, err := uc.renderer.Render(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("%w: renderizar recibo: %v", domain.ErrExportFailed, err)
	}

	// 5) Paginar y emitir.
	bounds := img.Bounds()
	slices := pagination.Paginate(bounds.Dx(), bounds.Dy(),
		pagination.PageWidthMM, pagination.PageHeightMM)
	imgHeightMM := pagination.ImageHeightMM(bounds.Dx(), bounds.Dy(), pagination.PageWidthMM)

	pdfBytes, err := uc.writer.Write(img, slices, imgHeightMM)
	if err != nil {
		return nil, fmt.Errorf("%w: emitir documento: %v", domain.ErrExportFailed, err)
	}

	filename := Filename(record.RecipientName, uc.now())
	uc.log.Info().Int64("id", record.ID).Int("pages", len(slices)).
		Str("filename", filename).Msg("recibo exportado")

	return &ExportResult{
		PDF:      pdfBytes,
		Filename: filename,
		Record:   record,
		Pages:    len(slices),
	}, nil
}

// Filename deriva el nombre de archivo del destinatario y la fecha:
// receipt-<nombre-saneado>-<fecha-ISO>.pdf.
func Filename(recipientName string, now time.Time) string {
	return fmt.Sprintf("receipt-%s-%s.pdf", sanitizeName(recipientName), now.Format("2006-01-02"))
}

// sanitizeName reemplaza por '-' todo carácter que no sea alfanumérico ASCII
// ni árabe (bloque U+0600–U+06FF), uno a uno, sin colapsar repeticiones.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x0600 && r <= 0x06FF:
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
