// Package render rasteriza la plantilla del recibo a un bitmap: la capacidad
// "render surface to bitmap" que consume el exportador. El ancho lógico es
// 794 px (A4 a 96 DPI) multiplicado por un factor de escala para nitidez.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/receipt"
)

// Config opciones del rasterizador.
type Config struct {
	FontPath string // TTF/OTF con glifos árabes; vacío → fuente de respaldo
	WidthPx  int    // ancho lógico (794 por defecto)
	Scale    int    // sobremuestreo (3 por defecto)
}

// Paleta de la plantilla.
var (
	colorInk    = color.RGBA{33, 33, 33, 255}
	colorAccent = color.RGBA{0, 105, 95, 255}
	colorLine   = color.RGBA{180, 180, 180, 255}
	colorHeadBG = color.RGBA{0, 150, 136, 255}
	colorRowBG  = color.RGBA{240, 247, 246, 255}
	colorWhite  = color.RGBA{255, 255, 255, 255}
)

// RasterRenderer implementa receipts.Renderer dibujando la plantilla con
// x/image. La carga de la fuente es perezosa: Ready la deja lista antes de
// la primera exportación.
type RasterRenderer struct {
	cfg Config

	once    sync.Once
	loadErr error
	fnt     *sfnt.Font // nil → basicfont
}

// NewRasterRenderer aplica los valores por defecto de la superficie.
func NewRasterRenderer(cfg Config) *RasterRenderer {
	if cfg.WidthPx <= 0 {
		cfg.WidthPx = 794
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	return &RasterRenderer{cfg: cfg}
}

// Ready carga y parsea la fuente una sola vez. Sin FontPath se usa la fuente
// bitmap de respaldo (sin glifos árabes reales, pero operativa).
func (r *RasterRenderer) Ready(_ context.Context) error {
	r.once.Do(func() {
		if r.cfg.FontPath == "" {
			return
		}
		data, err := os.ReadFile(r.cfg.FontPath)
		if err != nil {
			r.loadErr = fmt.Errorf("render: leer fuente %s: %w", r.cfg.FontPath, err)
			return
		}
		f, err := opentype.Parse(data)
		if err != nil {
			r.loadErr = fmt.Errorf("render: parsear fuente: %w", err)
			return
		}
		r.fnt = f
	})
	return r.loadErr
}

// face crea una cara a un tamaño en píxeles ya escalados.
func (r *RasterRenderer) face(sizePx float64) (font.Face, error) {
	if r.fnt == nil {
		return basicfont.Face7x13, nil
	}
	return opentype.NewFace(r.fnt, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Render dibuja el recibo completo y devuelve el bitmap con sus dimensiones
// implícitas en los bounds. El alto depende del número de líneas; el
// paginador decide después en cuántas páginas cae.
func (r *RasterRenderer) Render(ctx context.Context, rec *entity.ReceiptRecord) (image.Image, error) {
	if err := r.Ready(ctx); err != nil {
		return nil, err
	}

	s := r.cfg.Scale
	width := r.cfg.WidthPx * s
	margin := 40 * s

	titleFace, err := r.face(float64(26 * s))
	if err != nil {
		return nil, fmt.Errorf("render: cara de título: %w", err)
	}
	bodyFace, err := r.face(float64(15 * s))
	if err != nil {
		return nil, fmt.Errorf("render: cara de cuerpo: %w", err)
	}
	smallFace, err := r.face(float64(12 * s))
	if err != nil {
		return nil, fmt.Errorf("render: cara pequeña: %w", err)
	}

	rowH := 42 * s
	tableRowH := 38 * s
	// Alto total: cabecera + filas fijas + tabla (líneas + cabecera + total)
	// + pie. El sobrante queda en blanco.
	height := margin*2 + 90*s + 4*rowH + 40*s + tableRowH*(len(rec.Items)+2) + 130*s

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorWhite), image.Point{}, draw.Src)

	right := width - margin
	left := margin
	y := margin + 30*s

	// ── Cabecera ──────────────────────────────────────────────────────────
	drawCentered(img, "إيصال استلام", width/2, y, titleFace, colorAccent)
	y += 34 * s
	drawRTL(img, "التاريخ: "+formatDateAr(rec.Date), right, y, bodyFace, colorInk)
	y += 16 * s
	fillRect(img, image.Rect(left, y, right, y+s), colorLine)
	y += rowH

	// ── Recibimos de ──────────────────────────────────────────────────────
	drawRTL(img, "استلمنا من السيد: "+rec.RecipientName, right, y, bodyFace, colorInk)
	y += rowH

	// ── Importe y moneda en recuadros ─────────────────────────────────────
	boxH := 30 * s
	boxW := 150 * s
	amountStr := rec.Amount.StringFixed(2)
	drawRTL(img, "مبلغ وقدره:", right, y, bodyFace, colorInk)
	amountBox := image.Rect(right-260*s-boxW, y-22*s, right-260*s, y-22*s+boxH)
	strokeRect(img, amountBox, s, colorAccent)
	drawCentered(img, amountStr, (amountBox.Min.X+amountBox.Max.X)/2, y, bodyFace, colorInk)

	drawRTL(img, "العملة:", left+230*s, y, bodyFace, colorInk)
	currencyBox := image.Rect(left, y-22*s, left+140*s, y-22*s+boxH)
	strokeRect(img, currencyBox, s, colorAccent)
	drawCentered(img, rec.Currency, (currencyBox.Min.X+currencyBox.Max.X)/2, y, bodyFace, colorInk)
	y += rowH

	// ── Importe en letras (se omite si está vacío) ────────────────────────
	if rec.AmountInWords != "" {
		drawRTL(img, "المبلغ كتابة: "+rec.AmountInWords, right, y, bodyFace, colorInk)
	}
	y += rowH

	// ── Tabla de líneas ───────────────────────────────────────────────────
	drawRTL(img, "وذلك عن:", right, y, bodyFace, colorAccent)
	y += 24 * s

	colSplit := left + (width-2*margin)*2/5 // columna de importes a la izquierda
	header := image.Rect(left, y, right, y+tableRowH)
	fillRect(img, header, colorHeadBG)
	rowBaseline := y + 26*s
	drawRTL(img, "البيان", right-8*s, rowBaseline, bodyFace, colorWhite)
	drawCentered(img, "المبلغ ("+rec.Currency+")", (left+colSplit)/2, rowBaseline, bodyFace, colorWhite)
	y += tableRowH

	for i, item := range rec.Items {
		if i%2 == 1 {
			fillRect(img, image.Rect(left, y, right, y+tableRowH), colorRowBG)
		}
		rowBaseline = y + 26*s
		drawRTL(img, item.Description, right-8*s, rowBaseline, bodyFace, colorInk)
		drawCentered(img, receipt.ParseAmount(item.Amount).StringFixed(2),
			(left+colSplit)/2, rowBaseline, bodyFace, colorInk)
		fillRect(img, image.Rect(left, y+tableRowH-s, right, y+tableRowH), colorLine)
		y += tableRowH
	}

	// Fila de total.
	fillRect(img, image.Rect(left, y, right, y+tableRowH), colorRowBG)
	rowBaseline = y + 26*s
	drawRTL(img, "المجموع الكلي", right-8*s, rowBaseline, bodyFace, colorAccent)
	drawCentered(img, amountStr, (left+colSplit)/2, rowBaseline, bodyFace, colorAccent)
	y += tableRowH + rowH

	// ── Pie: receptor y firma ─────────────────────────────────────────────
	drawRTL(img, "اسم المستلم:", right, y, bodyFace, colorInk)
	drawRTL(img, rec.ReceiverName, right, y+24*s, bodyFace, colorInk)

	drawRTL(img, "توقيع المستلم", left+150*s, y, smallFace, colorInk)
	fillRect(img, image.Rect(left, y+28*s, left+150*s, y+28*s+s), colorInk)

	return img, nil
}

// ── Primitivas de dibujo ──────────────────────────────────────────────────────

func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, w int, c color.Color) {
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), c)
	fillRect(img, image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), c)
	fillRect(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), c)
	fillRect(img, image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawRTL dibuja texto alineado a la derecha: el borde derecho del texto cae
// en xRight.
func drawRTL(img *image.RGBA, text string, xRight, yBaseline int, face font.Face, c color.Color) {
	visual := DisplayText(text)
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	w := d.MeasureString(visual)
	d.Dot = fixed.P(xRight, yBaseline)
	d.Dot.X -= w
	d.DrawString(visual)
}

// drawCentered centra el texto en xCenter.
func drawCentered(img *image.RGBA, text string, xCenter, yBaseline int, face font.Face, c color.Color) {
	visual := DisplayText(text)
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	w := d.MeasureString(visual)
	d.Dot = fixed.P(xCenter, yBaseline)
	d.Dot.X -= w / 2
	d.DrawString(visual)
}

// Meses para la fecha del recibo en árabe.
var arMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// formatDateAr convierte YYYY-MM-DD a "2 يناير 2026". Fechas malformadas se
// muestran tal cual.
func formatDateAr(date string) string {
	var y, m, d int
	if _, err := fmt.Sscanf(date, "%d-%d-%d", &y, &m, &d); err != nil || m < 1 || m > 12 {
		return date
	}
	return fmt.Sprintf("%d %s %d", d, arMonths[m-1], y)
}
