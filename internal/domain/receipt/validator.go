package receipt

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
)

// Campos reportados por la validación.
const (
	FieldRecipientName = "recipientName"
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
	FieldReceiverName  = "receiverName"
	FieldItems         = "items"
)

// ValidationErrors mapa campo → mensaje legible (en árabe, como la UI).
// Vacío significa que el borrador es aceptable. Implementa error para poder
// viajar por la tubería de exportación sin un tipo envoltorio.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("formulario inválido: %d campo(s) con error", len(v))
}

// Validate aplica las reglas del formulario sobre un borrador con el total ya
// calculado. Todas las reglas se evalúan (no hay corto circuito) y el
// resultado es determinista: mismo borrador, mismos errores.
func Validate(d entity.ReceiptDraft) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(d.RecipientName) == "" {
		errs[FieldRecipientName] = "الاسم مطلوب"
	}
	if !d.Amount.GreaterThan(decimal.Zero) {
		errs[FieldAmount] = "المبلغ مطلوب ويجب أن يكون أكبر من صفر"
	}
	if strings.TrimSpace(d.Currency) == "" {
		errs[FieldCurrency] = "العملة مطلوبة"
	}
	if strings.TrimSpace(d.ReceiverName) == "" {
		errs[FieldReceiverName] = "اسم المستلم مطلوب"
	}

	// Basta una línea válida (descripción no vacía e importe > 0). Si ninguna
	// lo es se reporta UN solo error agregado, no uno por línea.
	hasValidItem := false
	for _, item := range d.Items {
		amount, err := decimal.NewFromString(strings.TrimSpace(item.Amount))
		if strings.TrimSpace(item.Description) != "" && err == nil && amount.GreaterThan(decimal.Zero) {
			hasValidItem = true
			break
		}
	}
	if !hasValidItem {
		errs[FieldItems] = "يجب إضافة بند واحد على الأقل"
	}

	return errs
}
