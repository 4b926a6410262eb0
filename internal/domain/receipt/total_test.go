package receipt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/receipt"
)

// TestTotal_MezclaDeImportes: los importes no numéricos aportan 0, nunca
// error; el resto se suma a precisión completa.
func TestTotal_MezclaDeImportes(t *testing.T) {
	items := []entity.LineItem{
		{Description: "a", Amount: "10"},
		{Description: "b", Amount: "abc"},
		{Description: "c", Amount: "5.5"},
	}
	total := receipt.Total(items)
	assert.True(t, total.Equal(decimal.RequireFromString("15.5")),
		"esperado 15.5, obtenido %s", total)
}

func TestTotal_ListaVacia(t *testing.T) {
	assert.True(t, receipt.Total(nil).IsZero())
	assert.True(t, receipt.Total([]entity.LineItem{}).IsZero())
}

// Los negativos NO se filtran: pasan y restan del total (comportamiento
// documentado, no un descuido).
func TestTotal_NegativosRestan(t *testing.T) {
	items := []entity.LineItem{
		{Amount: "100"},
		{Amount: "-30"},
	}
	assert.True(t, receipt.Total(items).Equal(decimal.NewFromInt(70)))
}

func TestTotal_ImporteVacioSumaCero(t *testing.T) {
	items := []entity.LineItem{
		{Amount: ""},
		{Amount: "  "},
		{Amount: "2.25"},
	}
	assert.True(t, receipt.Total(items).Equal(decimal.RequireFromString("2.25")))
}

// La acumulación no redondea: tres líneas de 0.1 suman exactamente 0.3.
func TestTotal_PrecisionCompleta(t *testing.T) {
	items := []entity.LineItem{{Amount: "0.1"}, {Amount: "0.1"}, {Amount: "0.1"}}
	assert.Equal(t, "0.30", receipt.Total(items).StringFixed(2))
	assert.True(t, receipt.Total(items).Equal(decimal.RequireFromString("0.3")))
}
