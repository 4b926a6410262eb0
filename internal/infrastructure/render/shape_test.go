package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeArabic_FormasContextuales(t *testing.T) {
	// م inicial, ح medial, م medial, د final.
	assert.Equal(t, "ﻣﺤﻤﺪ", shapeArabic("محمد"))
	// د no se une a la izquierda: la ر siguiente queda en forma aislada.
	assert.Equal(t, "ﺩﺭ", shapeArabic("در"))
}

func TestShapeArabic_LigaduraLamAlef(t *testing.T) {
	// Aislada al inicio de palabra.
	assert.Equal(t, "ﻻ", shapeArabic("لا"))
	// Final cuando la lam viene unida por la derecha: س inicial + لا final,
	// y la م posterior queda aislada porque la alef no se une a la izquierda.
	assert.Equal(t, "ﺳﻼﻡ", shapeArabic("سلام"))
}

func TestShapeArabic_NoArabePasaIntacto(t *testing.T) {
	assert.Equal(t, "USD 100.50", shapeArabic("USD 100.50"))
	assert.Equal(t, "", shapeArabic(""))
}

func TestReorderVisual_ArabePuroSeInvierte(t *testing.T) {
	assert.Equal(t, "جبا", reorderVisual("ابج"))
}

// Las cifras dentro de una línea árabe conservan su orden de lectura.
func TestReorderVisual_CifrasConservanOrden(t *testing.T) {
	out := reorderVisual("مبلغ 100 دولار")
	assert.Contains(t, out, "100")
	assert.NotContains(t, out, "001")
}

func TestReverseRunes(t *testing.T) {
	assert.Equal(t, "cba", reverseRunes("abc"))
	assert.Equal(t, "دمحم", reverseRunes("محمد"))
}

func TestDisplayText_ComponeFormadoYReordenado(t *testing.T) {
	// Forma contextual aplicada y orden visual invertido: la final queda a la
	// izquierda de la inicial.
	assert.Equal(t, "ﺪﻤﺤﻣ", DisplayText("محمد"))
}
