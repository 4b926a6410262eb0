// Package receipt contiene la lógica pura del recibo: agregación del total y
// validación del formulario. Sin efectos secundarios.
package receipt

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
)

// Total suma los importes de las líneas. Un importe vacío o no numérico
// aporta 0 (la validación lo reporta después, aquí nunca es error). Los
// negativos no se filtran: pasan y restan del total. La acumulación se hace a
// precisión completa; el redondeo a 2 decimales ocurre solo al presentar.
func Total(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		amount, err := decimal.NewFromString(strings.TrimSpace(item.Amount))
		if err != nil {
			continue
		}
		sum = sum.Add(amount)
	}
	return sum
}

// ParseAmount interpreta el importe de una línea para presentación; los
// valores no numéricos se muestran como cero.
func ParseAmount(s string) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return amount
}
