package dto

import (
	"time"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
)

// LineItemDTO línea del formulario; el importe viaja como texto, igual que en
// el campo de entrada.
type LineItemDTO struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ReceiptFormRequest borrador tal como lo envía el formulario. El total y el
// importe en letras los calcula el servidor; nunca se aceptan del cliente.
type ReceiptFormRequest struct {
	Date          string        `json:"date"`
	RecipientName string        `json:"recipientName"`
	ReceiverName  string        `json:"receiverName"`
	Currency      string        `json:"currency"`
	Items         []LineItemDTO `json:"items"`
}

// ToEntity convierte el request a borrador de dominio.
func (r ReceiptFormRequest) ToEntity() entity.ReceiptDraft {
	items := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.LineItem{Description: it.Description, Amount: it.Amount})
	}
	return entity.ReceiptDraft{
		Date:          r.Date,
		RecipientName: r.RecipientName,
		ReceiverName:  r.ReceiverName,
		Currency:      r.Currency,
		Items:         items,
	}
}

// DraftResponse borrador para GET /api/receipts/draft.
type DraftResponse struct {
	Date          string        `json:"date"`
	RecipientName string        `json:"recipientName"`
	ReceiverName  string        `json:"receiverName"`
	Currency      string        `json:"currency"`
	Items         []LineItemDTO `json:"items"`
	Amount        string        `json:"amount"`
	AmountInWords string        `json:"amountInWords"`
}

// PreviewRequest cuerpo de POST /api/receipts/preview.
type PreviewRequest struct {
	Currency string        `json:"currency"`
	Items    []LineItemDTO `json:"items"`
}

// PreviewResponse total calculado y su transcripción, sin efectos.
type PreviewResponse struct {
	Amount        string `json:"amount"` // 2 decimales, solo presentación
	AmountInWords string `json:"amountInWords"`
}

// HistoryItemResponse recibo sellado del historial.
type HistoryItemResponse struct {
	ID            int64         `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	Date          string        `json:"date"`
	RecipientName string        `json:"recipientName"`
	ReceiverName  string        `json:"receiverName"`
	Currency      string        `json:"currency"`
	Items         []LineItemDTO `json:"items"`
	Amount        string        `json:"amount"`
	AmountInWords string        `json:"amountInWords"`
}

// FromRecord convierte un registro de dominio a respuesta.
func FromRecord(rec entity.ReceiptRecord) HistoryItemResponse {
	items := make([]LineItemDTO, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, LineItemDTO{Description: it.Description, Amount: it.Amount})
	}
	return HistoryItemResponse{
		ID:            rec.ID,
		Timestamp:     rec.Timestamp,
		Date:          rec.Date,
		RecipientName: rec.RecipientName,
		ReceiverName:  rec.ReceiverName,
		Currency:      rec.Currency,
		Items:         items,
		Amount:        rec.Amount.StringFixed(2),
		AmountInWords: rec.AmountInWords,
	}
}

// FromRecords convierte el registro completo.
func FromRecords(records []entity.ReceiptRecord) []HistoryItemResponse {
	out := make([]HistoryItemResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}

// ErrorResponse cuerpo de error HTTP. Fields solo viene en errores de
// validación: campo → mensaje para mostrar junto al campo.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
