package receipts

import (
	"context"
	"image"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/pagination"
)

// Renderer capacidad externa "render surface to bitmap": produce el bitmap de
// la plantilla del recibo a ancho lógico fijo.
type Renderer interface {
	// Ready bloquea hasta que la capacidad está lista (fuentes cargadas).
	Ready(ctx context.Context) error
	// Render dibuja el recibo; las dimensiones en píxeles van en los bounds.
	Render(ctx context.Context, rec *entity.ReceiptRecord) (image.Image, error)
}

// DocumentWriter capacidad de emisión: compone el documento multipágina a
// partir del bitmap y los cortes del paginador.
type DocumentWriter interface {
	Write(img image.Image, slices []pagination.PageSlice, imgHeightMM float64) ([]byte, error)
}

// ReceiptPDFGenerator variante vectorial para re-descargar un recibo del
// historial sin pasar por el bitmap.
type ReceiptPDFGenerator interface {
	Generate(ctx context.Context, rec *entity.ReceiptRecord) ([]byte, error)
}
