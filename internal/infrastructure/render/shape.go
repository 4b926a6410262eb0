package render

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Formas de presentación (Unicode Presentation Forms-B) de una letra árabe.
// Las letras que no se unen por la izquierda llevan initial=isolated y
// medial=final para que la selección de forma sea uniforme.
type arabicForms struct {
	isolated, final, initial, medial rune
	joinsRight                       bool // acepta unión de la letra anterior
	joinsLeft                        bool // se une a la letra siguiente
}

var arabicTable = map[rune]arabicForms{
	'ء': {0xFE80, 0xFE80, 0xFE80, 0xFE80, false, false},
	'آ': {0xFE81, 0xFE82, 0xFE81, 0xFE82, true, false},
	'أ': {0xFE83, 0xFE84, 0xFE83, 0xFE84, true, false},
	'ؤ': {0xFE85, 0xFE86, 0xFE85, 0xFE86, true, false},
	'إ': {0xFE87, 0xFE88, 0xFE87, 0xFE88, true, false},
	'ئ': {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C, true, true},
	'ا': {0xFE8D, 0xFE8E, 0xFE8D, 0xFE8E, true, false},
	'ب': {0xFE8F, 0xFE90, 0xFE91, 0xFE92, true, true},
	'ة': {0xFE93, 0xFE94, 0xFE93, 0xFE94, true, false},
	'ت': {0xFE95, 0xFE96, 0xFE97, 0xFE98, true, true},
	'ث': {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C, true, true},
	'ج': {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0, true, true},
	'ح': {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4, true, true},
	'خ': {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8, true, true},
	'د': {0xFEA9, 0xFEAA, 0xFEA9, 0xFEAA, true, false},
	'ذ': {0xFEAB, 0xFEAC, 0xFEAB, 0xFEAC, true, false},
	'ر': {0xFEAD, 0xFEAE, 0xFEAD, 0xFEAE, true, false},
	'ز': {0xFEAF, 0xFEB0, 0xFEAF, 0xFEB0, true, false},
	'س': {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4, true, true},
	'ش': {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8, true, true},
	'ص': {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC, true, true},
	'ض': {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0, true, true},
	'ط': {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4, true, true},
	'ظ': {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8, true, true},
	'ع': {0xFEC9, 0xFECA, 0xFECB, 0xFECC, true, true},
	'غ': {0xFECD, 0xFECE, 0xFECF, 0xFED0, true, true},
	'ف': {0xFED1, 0xFED2, 0xFED3, 0xFED4, true, true},
	'ق': {0xFED5, 0xFED6, 0xFED7, 0xFED8, true, true},
	'ك': {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC, true, true},
	'ل': {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0, true, true},
	'م': {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4, true, true},
	'ن': {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8, true, true},
	'ه': {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC, true, true},
	'و': {0xFEED, 0xFEEE, 0xFEED, 0xFEEE, true, false},
	'ى': {0xFEEF, 0xFEF0, 0xFEEF, 0xFEF0, true, false},
	'ي': {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4, true, true},
}

// Ligaduras لا obligatorias: lam + variante de alef → (aislada, final).
var lamAlef = map[rune][2]rune{
	'آ': {0xFEF5, 0xFEF6},
	'أ': {0xFEF7, 0xFEF8},
	'إ': {0xFEF9, 0xFEFA},
	'ا': {0xFEFB, 0xFEFC},
}

// shapeArabic sustituye cada letra árabe por su forma contextual según sus
// vecinas, en orden lógico. Los caracteres no árabes pasan intactos.
func shapeArabic(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))

	joinsLeftAt := func(i int) bool {
		if i < 0 || i >= len(runes) {
			return false
		}
		f, ok := arabicTable[runes[i]]
		return ok && f.joinsLeft
	}
	joinsRightAt := func(i int) bool {
		if i < 0 || i >= len(runes) {
			return false
		}
		f, ok := arabicTable[runes[i]]
		return ok && f.joinsRight
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		f, ok := arabicTable[r]
		if !ok {
			out = append(out, r)
			continue
		}

		connectedRight := f.joinsRight && joinsLeftAt(i-1)

		// Ligadura lam-alef: consume las dos letras.
		if r == 'ل' && i+1 < len(runes) {
			if lig, isAlef := lamAlef[runes[i+1]]; isAlef {
				if connectedRight {
					out = append(out, lig[1])
				} else {
					out = append(out, lig[0])
				}
				i++
				continue
			}
		}

		connectedLeft := f.joinsLeft && joinsRightAt(i+1)
		switch {
		case connectedRight && connectedLeft:
			out = append(out, f.medial)
		case connectedRight:
			out = append(out, f.final)
		case connectedLeft:
			out = append(out, f.initial)
		default:
			out = append(out, f.isolated)
		}
	}
	return string(out)
}

// reorderVisual reordena una línea lógica a orden visual izquierda→derecha
// (párrafo base RTL). Dentro de cada tramo RTL los runes se invierten; los
// tramos LTR (cifras, códigos de moneda) conservan su orden.
func reorderVisual(s string) string {
	var p bidi.Paragraph
	p.SetString(s, bidi.DefaultDirection(bidi.RightToLeft))
	ordering, err := p.Order()
	if err != nil {
		return s
	}
	var b strings.Builder
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = reverseRunes(text)
		}
		b.WriteString(text)
	}
	return b.String()
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// DisplayText prepara una línea mixta árabe/latina (orden lógico) para
// dibujarla de izquierda a derecha con un motor de texto plano: formas
// contextuales más reordenado visual.
func DisplayText(s string) string {
	return reorderVisual(shapeArabic(s))
}
