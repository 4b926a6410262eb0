package tafqeet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/tafqeet"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vectores de la gramática: unidades, adolescentes, decenas (unidad antes de
// la decena), centenas con dual, y escalas con concordancia 1/2/3-10/11+.
// ──────────────────────────────────────────────────────────────────────────────

func TestInteger_Vectores(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "صفر"},
		{1, "واحد"},
		{2, "اثنان"},
		{9, "تسعة"},
		{10, "عشرة"},
		{11, "أحد عشر"},
		{12, "اثنا عشر"},
		{15, "خمسة عشر"},
		{20, "عشرون"},
		{21, "واحد وعشرون"},
		{25, "خمسة وعشرون"},
		{99, "تسعة وتسعون"},
		{100, "مئة"},
		{200, "مئتان"},
		{300, "ثلاثمئة"},
		{125, "مئة وخمسة وعشرون"},
		{999, "تسعمئة وتسعة وتسعون"},
		{1000, "ألف"},
		{2000, "ألفان"},
		{3000, "ثلاثة آلاف"},
		{10000, "عشرة آلاف"},
		{11000, "أحد عشر ألف"},
		{1234, "ألف ومئتان وأربعة وثلاثون"},
		{1000000, "مليون"},
		{2000000, "مليونان"},
		{5000000, "خمسة ملايين"},
		{1000000000, "مليار"},
		{1002003, "مليون وألفان وثلاثة"},
	}
	for _, tc := range cases {
		got, err := tafqeet.Integer(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}
}

// Más allá de la tabla de magnitudes se degrada con error, nunca pánico ni
// texto truncado.
func TestInteger_FueraDeTabla(t *testing.T) {
	_, err := tafqeet.Integer(1_000_000_000_000)
	assert.ErrorIs(t, err, tafqeet.ErrAmountTooLarge)

	_, err = tafqeet.Integer(999_999_999_999)
	assert.NoError(t, err, "el máximo representable debe deletrearse")
}

func TestInteger_NegativoEsError(t *testing.T) {
	_, err := tafqeet.Integer(-1)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Amount: marca comercial فقط/لا غير, nombre de la moneda y truncado de la
// parte fraccionaria (política documentada).
// ──────────────────────────────────────────────────────────────────────────────

func TestAmount_ConMoneda(t *testing.T) {
	got, err := tafqeet.Amount(decimal.NewFromInt(100), entity.CurrencyUSD)
	require.NoError(t, err)
	assert.Equal(t, "فقط مئة دولار أمريكي لا غير", got)
}

func TestAmount_FraccionTruncada(t *testing.T) {
	conFraccion, err := tafqeet.Amount(decimal.RequireFromString("15.75"), entity.CurrencyQAR)
	require.NoError(t, err)
	sinFraccion, err2 := tafqeet.Amount(decimal.NewFromInt(15), entity.CurrencyQAR)
	require.NoError(t, err2)
	assert.Equal(t, sinFraccion, conFraccion,
		"los subcentavos no se deletrean; solo la parte entera")
}

func TestAmount_Cero(t *testing.T) {
	got, err := tafqeet.Amount(decimal.Zero, entity.CurrencyEUR)
	require.NoError(t, err)
	assert.Equal(t, "فقط صفر يورو لا غير", got)
}

func TestAmount_FueraDeTabla(t *testing.T) {
	_, err := tafqeet.Amount(decimal.RequireFromString("1000000000000.50"), entity.CurrencyUSD)
	assert.ErrorIs(t, err, tafqeet.ErrAmountTooLarge)
}

func TestAmount_MonedaDesconocidaPasaTalCual(t *testing.T) {
	got, err := tafqeet.Amount(decimal.NewFromInt(1), "XXX")
	require.NoError(t, err)
	assert.Equal(t, "فقط واحد XXX لا غير", got)
}
