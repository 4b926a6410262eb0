// Package pagination calcula cómo repartir una superficie renderizada entre
// páginas físicas de tamaño fijo. El algoritmo NO recorta bandas: coloca la
// imagen completa en cada página con un desplazamiento negativo creciente, de
// modo que cada página "revele" la siguiente banda. La última página puede
// quedar con espacio en blanco al final; los visores recortan lo que sale de
// la página.
package pagination

// Dimensiones de página A4 vertical en milímetros.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// PageSlice una página del documento de salida.
type PageSlice struct {
	// SourceYOffsetMM inicio de la banda visible dentro de la imagen.
	SourceYOffsetMM float64
	// ImageYOffsetMM posición (≤ 0) donde se coloca la imagen COMPLETA en la
	// página para que la banda quede visible.
	ImageYOffsetMM float64
	// HeightMM alto de la banda visible; en la última página puede ser menor
	// que el alto de página.
	HeightMM float64
}

// ImageHeightMM convierte el alto en píxeles a milímetros usando la relación
// fija de anchos: la imagen se escala a pageWidthMM de ancho.
func ImageHeightMM(widthPx, heightPx int, pageWidthMM float64) float64 {
	if widthPx <= 0 {
		return 0
	}
	return float64(heightPx) * pageWidthMM / float64(widthPx)
}

// Paginate calcula los cortes para una superficie de widthPx×heightPx sobre
// páginas de pageWidthMM×pageHeightMM. La unión de los cortes cubre
// [0, altoImagen) sin huecos ni bandas dobles.
func Paginate(widthPx, heightPx int, pageWidthMM, pageHeightMM float64) []PageSlice {
	imgHeightMM := ImageHeightMM(widthPx, heightPx, pageWidthMM)

	if imgHeightMM <= pageHeightMM {
		return []PageSlice{{SourceYOffsetMM: 0, ImageYOffsetMM: 0, HeightMM: imgHeightMM}}
	}

	var slices []PageSlice
	remaining := imgHeightMM
	for i := 0; remaining > 0; i++ {
		height := pageHeightMM
		if remaining < pageHeightMM {
			height = remaining
		}
		offset := float64(i) * pageHeightMM
		slices = append(slices, PageSlice{
			SourceYOffsetMM: offset,
			ImageYOffsetMM:  -offset,
			HeightMM:        height,
		})
		remaining -= pageHeightMM
	}
	return slices
}
