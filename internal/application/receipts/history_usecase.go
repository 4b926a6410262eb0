package receipts

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/domain"
	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/repository"
)

// HistoryUseCase consulta y mutación del historial de recibos.
type HistoryUseCase struct {
	historyRepo repository.HistoryRepository
	generator   ReceiptPDFGenerator
	now         func() time.Time
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(historyRepo repository.HistoryRepository, generator ReceiptPDFGenerator) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo, generator: generator, now: time.Now}
}

// List devuelve el historial completo, el más nuevo primero.
func (uc *HistoryUseCase) List() ([]dto.HistoryItemResponse, error) {
	records, err := uc.historyRepo.List()
	if err != nil {
		return nil, err
	}
	return dto.FromRecords(records), nil
}

// Remove elimina un recibo y devuelve el historial resultante. Un id
// inexistente no es error: el resultado es el historial sin cambios.
func (uc *HistoryUseCase) Remove(id int64) ([]dto.HistoryItemResponse, error) {
	records, err := uc.historyRepo.Remove(id)
	if err != nil {
		return nil, err
	}
	return dto.FromRecords(records), nil
}

// Clear vacía el historial.
func (uc *HistoryUseCase) Clear() error {
	return uc.historyRepo.Clear()
}

// get localiza un recibo por id.
func (uc *HistoryUseCase) get(id int64) (*entity.ReceiptRecord, error) {
	records, err := uc.historyRepo.List()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// DownloadPDF re-genera el PDF vectorial de un recibo ya guardado.
func (uc *HistoryUseCase) DownloadPDF(ctx context.Context, id int64) ([]byte, string, error) {
	record, err := uc.get(id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.Generate(ctx, record)
	if err != nil {
		return nil, "", fmt.Errorf("%w: regenerar PDF: %v", domain.ErrExportFailed, err)
	}
	return pdfBytes, Filename(record.RecipientName, uc.now()), nil
}
