package receipts

import (
	"time"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/receipt"
	"github.com/tu-usuario/wasl-api/internal/domain/tafqeet"
)

// DraftUseCase operaciones puras del formulario: borrador inicial y
// previsualización del total. Sin efectos secundarios.
type DraftUseCase struct {
	now func() time.Time
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase() *DraftUseCase {
	return &DraftUseCase{now: time.Now}
}

// NewDraft borrador fresco de sesión: fecha de hoy, moneda por defecto y una
// línea vacía.
func (uc *DraftUseCase) NewDraft() dto.DraftResponse {
	d := entity.NewDraft(uc.now())
	items := make([]dto.LineItemDTO, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, dto.LineItemDTO{Description: it.Description, Amount: it.Amount})
	}
	return dto.DraftResponse{
		Date:     d.Date,
		Currency: d.Currency,
		Items:    items,
	}
}

// Preview calcula el total y el importe en letras de las líneas actuales sin
// validar ni persistir. El formulario lo muestra en vivo.
func (uc *DraftUseCase) Preview(in dto.PreviewRequest) dto.PreviewResponse {
	items := make([]entity.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.LineItem{Description: it.Description, Amount: it.Amount})
	}
	total := receipt.Total(items)

	// En preview cualquier fallo de transcripción degrada a vacío.
	words, err := tafqeet.Amount(total, in.Currency)
	if err != nil {
		words = ""
	}

	return dto.PreviewResponse{
		Amount:        total.StringFixed(2),
		AmountInWords: words,
	}
}
