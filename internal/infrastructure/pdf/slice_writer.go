// Package pdf emite los documentos del recibo.
//
// SliceDocumentWriter registra el bitmap completo del recibo una sola vez
// como JPEG y lo coloca en cada página A4 con el desplazamiento negativo que
// calculó el paginador. No se recorta ninguna banda; el visor recorta lo que
// queda fuera de página.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/phpdave11/gofpdf"

	"github.com/tu-usuario/wasl-api/internal/domain/pagination"
)

// SliceDocumentWriter implementa receipts.DocumentWriter con gofpdf.
type SliceDocumentWriter struct{}

// NewSliceDocumentWriter construye el emisor.
func NewSliceDocumentWriter() *SliceDocumentWriter {
	return &SliceDocumentWriter{}
}

// Write compone el documento multipágina: una página por corte, imagen
// completa colocada en ImageYOffsetMM, ancho de página completo.
func (w *SliceDocumentWriter) Write(img image.Image, slices []pagination.PageSlice, imgHeightMM float64) ([]byte, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("pdf: sin cortes de página")
	}

	var jpg bytes.Buffer
	// Calidad máxima; el texto árabe fino se degrada visiblemente por debajo.
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, fmt.Errorf("pdf: codificar bitmap: %w", err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(true)

	opts := gofpdf.ImageOptions{
		ImageType:             "JPG",
		AllowNegativePosition: true,
	}
	doc.RegisterImageOptionsReader("receipt", opts, &jpg)

	for _, s := range slices {
		doc.AddPage()
		doc.ImageOptions("receipt", 0, s.ImageYOffsetMM,
			pagination.PageWidthMM, imgHeightMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.Bytes(), nil
}
