package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas soportadas por el recibo.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyQAR = "QAR"
)

// currencyNamesAr nombre árabe de cada moneda, usado en el importe en letras
// y en la plantilla del recibo.
var currencyNamesAr = map[string]string{
	CurrencyUSD: "دولار أمريكي",
	CurrencyEUR: "يورو",
	CurrencyQAR: "ريال قطري",
}

// CurrencyNameAr devuelve el nombre árabe de la moneda; si el código no es
// conocido se devuelve tal cual.
func CurrencyNameAr(code string) string {
	if name, ok := currencyNamesAr[code]; ok {
		return name
	}
	return code
}

// LineItem una línea del recibo. Amount se mantiene como texto tal como llega
// del formulario: el agregador lo interpreta (vacío o no numérico suma 0) y la
// validación es quien reporta el problema al usuario.
type LineItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ReceiptDraft borrador de recibo en edición. Amount es el total calculado a
// partir de las líneas (nunca editado por el usuario) y AmountInWords su
// transcripción en letras árabes.
type ReceiptDraft struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	RecipientName string          `json:"recipientName"`
	ReceiverName  string          `json:"receiverName"`
	Currency      string          `json:"currency"`
	Items         []LineItem      `json:"items"`
	Amount        decimal.Decimal `json:"amount"`
	AmountInWords string          `json:"amountInWords"`
}

// NewDraft borrador inicial de una sesión: fecha de hoy, moneda por defecto y
// una línea vacía.
func NewDraft(now time.Time) ReceiptDraft {
	return ReceiptDraft{
		Date:     now.Format("2006-01-02"),
		Currency: CurrencyUSD,
		Items:    []LineItem{{}},
	}
}

// ReceiptRecord recibo persistido en el historial. Inmutable una vez creado;
// el ID es un entero monótono derivado del reloj (milisegundos epoch).
type ReceiptRecord struct {
	ReceiptDraft
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
