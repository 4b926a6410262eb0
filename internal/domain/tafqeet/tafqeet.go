// Package tafqeet convierte importes monetarios a letras árabes (تفقيط),
// siguiendo la gramática estándar de los numerales árabes: formas duales
// (مئتان، ألفان), plural contado de 3 a 10 (ثلاثة آلاف) y singular a partir
// de 11 (أحد عشر ألف).
//
// Política de fracciones: los subcentavos NO se deletrean; el importe en
// letras nombra solo la parte entera y los decimales quedan visibles en el
// importe numérico del recibo.
package tafqeet

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
)

// ErrAmountTooLarge el importe excede la tabla de magnitudes con nombre
// (un billón o más). El llamador debe degradar, nunca abortar por esto.
var ErrAmountTooLarge = errors.New("importe fuera de la tabla de magnitudes")

// maxExclusive límite superior de la tabla: miles de millones con nombre,
// 10^12 queda fuera.
const maxExclusive = int64(1_000_000_000_000)

var units = [...]string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة",
	"خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
}

var teens = [...]string{
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر",
	"خمسة عشر", "ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var tens = [...]string{
	"", "", "عشرون", "ثلاثون", "أربعون",
	"خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

var hundreds = [...]string{
	"", "مئة", "مئتان", "ثلاثمئة", "أربعمئة",
	"خمسمئة", "ستمئة", "سبعمئة", "ثمانمئة", "تسعمئة",
}

// scales formas singular / dual / plural de cada grupo de tres dígitos.
var scales = [...]struct{ singular, dual, plural string }{
	{},                              // grupo 0: sin escala
	{"ألف", "ألفان", "آلاف"},        // miles
	{"مليون", "مليونان", "ملايين"},  // millones
	{"مليار", "ملياران", "مليارات"}, // miles de millones
}

// Integer deletrea un entero no negativo. Los importes fuera de la tabla de
// magnitudes devuelven ErrAmountTooLarge en vez de producir texto truncado.
func Integer(n int64) (string, error) {
	if n < 0 {
		return "", errors.New("tafqeet: entero negativo")
	}
	if n >= maxExclusive {
		return "", ErrAmountTooLarge
	}
	if n == 0 {
		return "صفر", nil
	}

	// Grupos de tres dígitos, del menos al más significativo.
	var groups [4]int64
	for i := 0; n > 0; i++ {
		groups[i] = n % 1000
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		if i == 0 {
			parts = append(parts, subThousand(g))
			continue
		}
		parts = append(parts, scaleWords(g, i))
	}
	// La conjunción و se adhiere a la palabra siguiente: "مئة وخمسة وعشرون".
	return strings.Join(parts, " و"), nil
}

// subThousand deletrea 1..999.
func subThousand(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest == 0:
	case rest < 10:
		parts = append(parts, units[rest])
	case rest < 20:
		parts = append(parts, teens[rest-10])
	default:
		// Orden árabe: unidad antes de la decena (خمسة وعشرون).
		if u := rest % 10; u > 0 {
			parts = append(parts, units[u])
		}
		parts = append(parts, tens[rest/10])
	}
	return strings.Join(parts, " و")
}

// scaleWords deletrea un grupo con su escala aplicando la concordancia:
// 1 → singular solo, 2 → dual solo, 3..10 → contado + plural,
// 11+ → contado + singular.
func scaleWords(count int64, scale int) string {
	s := scales[scale]
	switch {
	case count == 1:
		return s.singular
	case count == 2:
		return s.dual
	case count <= 10:
		return subThousand(count) + " " + s.plural
	default:
		return subThousand(count) + " " + s.singular
	}
}

// Amount deletrea la parte entera del importe y la enmarca con la moneda al
// estilo comercial: "فقط مئة دولار أمريكي لا غير". La parte fraccionaria se
// trunca (ver la nota del paquete).
func Amount(d decimal.Decimal, currency string) (string, error) {
	// Comparar antes de IntPart: en importes gigantes IntPart desborda en
	// silencio y deletrearía basura.
	if d.GreaterThanOrEqual(decimal.NewFromInt(maxExclusive)) {
		return "", ErrAmountTooLarge
	}
	words, err := Integer(d.Truncate(0).IntPart())
	if err != nil {
		return "", err
	}
	return "فقط " + words + " " + entity.CurrencyNameAr(currency) + " لا غير", nil
}
