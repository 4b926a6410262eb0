// MarotoReceiptGenerator es la variante vectorial: reconstruye la plantilla
// del recibo con Maroto v2 en lugar de pasar por el bitmap. Se usa para
// re-descargar un recibo ya guardado en el historial.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  TÍTULO: إيصال استلام        │  Fecha       │
//	│  ─────────────────────────────────────────  │
//	│  Recibimos de: <nombre>                     │
//	│  Importe [caja]   Moneda [caja]             │
//	│  Importe en letras                          │
//	│  TABLA: Descripción | Importe               │
//	│  TOTAL                                      │
//	│  Pie: receptor + firma                      │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/receipt"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/render"
)

// ── Paleta de colores (tema de la aplicación) ─────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 105, Blue: 95}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// arabicFontFamily nombre con el que se registra la fuente árabe configurada.
const arabicFontFamily = "arabic"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa receipts.ReceiptPDFGenerator. Con una
// fuente TTF/OTF árabe configurada (la misma RENDER_FONT_PATH que consume el
// rasterizador) se registra como fuente UTF-8 y los textos árabes se dibujan
// formados y en orden visual; sin fuente se cae a las fuentes base del motor,
// sin glifos árabes, igual que el respaldo del rasterizador.
type MarotoReceiptGenerator struct {
	fontPath string
}

// NewMarotoReceiptGenerator construye el generador. fontPath vacío usa las
// fuentes base del motor.
func NewMarotoReceiptGenerator(fontPath string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{fontPath: fontPath}
}

// txt prepara una cadena para el motor: con fuente árabe registrada aplica
// formas contextuales y orden visual; sin ella la fuente base no tiene los
// glifos y la cadena pasa tal cual.
func (g *MarotoReceiptGenerator) txt(s string) string {
	if g.fontPath == "" {
		return s
	}
	return render.DisplayText(s)
}

func (g *MarotoReceiptGenerator) newEngine() (core.Maroto, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithTitle("إيصال استلام", true)

	if g.fontPath == "" {
		b = b.WithDefaultFont(&props.Font{Family: "helvetica", Size: 10})
	} else {
		// El motor exige los cuatro estilos registrados para una familia
		// UTF-8; la misma fuente cubre todos.
		fonts, err := repository.New().
			AddUTF8Font(arabicFontFamily, fontstyle.Normal, g.fontPath).
			AddUTF8Font(arabicFontFamily, fontstyle.Bold, g.fontPath).
			AddUTF8Font(arabicFontFamily, fontstyle.Italic, g.fontPath).
			AddUTF8Font(arabicFontFamily, fontstyle.BoldItalic, g.fontPath).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: registrar fuente %s: %w", g.fontPath, err)
		}
		b = b.WithCustomFonts(fonts).
			WithDefaultFont(&props.Font{Family: arabicFontFamily, Size: 10})
	}

	return maroto.New(b.Build()), nil
}

// Generate genera el PDF vectorial y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(_ context.Context, rec *entity.ReceiptRecord) ([]byte, error) {
	m, err := g.newEngine()
	if err != nil {
		return nil, err
	}

	m.AddRows(g.headerRow(rec))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.recipientRow(rec))
	m.AddRows(g.amountRow(rec))
	if rec.AmountInWords != "" {
		m.AddRows(g.wordsRow(rec))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(g.tableHeaderRow(rec.Currency))
	for _, r := range g.tableItemRows(rec.Items) {
		m.AddRows(r)
	}
	m.AddRows(g.totalRow(rec))

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(rec))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (der, lectura RTL) y fecha (izq).
func (g *MarotoReceiptGenerator) headerRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(16).Add(
		col.New(5).Add(
			text.New(g.txt("التاريخ: "+rec.Date), props.Text{
				Size: 9, Top: 6, Color: colorGray,
			}),
		),
		col.New(7).Add(
			text.New(g.txt("إيصال استلام"), props.Text{
				Style: fontstyle.Bold, Size: 15, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// recipientRow: de quién se recibió el pago.
func (g *MarotoReceiptGenerator) recipientRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(g.txt("استلمنا من السيد: "+rec.RecipientName), props.Text{
				Size: 11, Align: align.Right, Top: 2,
			}),
		),
	)
}

// amountRow: importe numérico y moneda.
func (g *MarotoReceiptGenerator) amountRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(10).Add(
		col.New(3).Add(
			text.New(rec.Currency, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(g.txt("العملة:"), props.Text{Size: 10, Align: align.Right, Top: 2}),
		),
		col.New(3).Add(
			text.New(rec.Amount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New(g.txt("مبلغ وقدره:"), props.Text{Size: 10, Align: align.Right, Top: 2}),
		),
	)
}

// wordsRow: importe en letras.
func (g *MarotoReceiptGenerator) wordsRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New(g.txt("المبلغ كتابة: "+rec.AmountInWords), props.Text{
				Size: 10, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas con fondo de acento.
func (g *MarotoReceiptGenerator) tableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h(g.txt("المبلغ ("+currency+")"), 4, align.Center),
		h(g.txt("البيان"), 8, align.Right),
	)
}

// tableItemRows: una fila por línea del recibo.
func (g *MarotoReceiptGenerator) tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				receipt.ParseAmount(item.Amount).StringFixed(2),
				props.Text{Size: 9, Align: align.Center, Top: 1},
			)),
			col.New(8).Add(text.New(
				g.txt(item.Description),
				props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total calculado, nunca editable.
func (g *MarotoReceiptGenerator) totalRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(9).Add(
		col.New(4).Add(text.New(
			rec.Amount.StringFixed(2)+" "+rec.Currency,
			props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 2},
		)),
		col.New(8).Add(text.New(g.txt("المجموع الكلي"), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// footerRow: receptor y espacio de firma.
func (g *MarotoReceiptGenerator) footerRow(rec *entity.ReceiptRecord) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(g.txt("توقيع المستلم"), props.Text{
				Size: 9, Align: align.Center, Top: 2, Color: colorGray,
			}),
			text.New("______________________", props.Text{
				Size: 9, Align: align.Center, Top: 10,
			}),
		),
		col.New(6).Add(
			text.New(g.txt("اسم المستلم:"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(g.txt(rec.ReceiverName), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9,
			}),
		),
	)
}
