package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"io"
	netHTTP "net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/wasl-api/internal/application/dto"
	"github.com/tu-usuario/wasl-api/internal/application/receipts"
	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/domain/pagination"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/history"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/kvstore"
	apihttp "github.com/tu-usuario/wasl-api/internal/interfaces/http"
	"github.com/tu-usuario/wasl-api/pkg/logger"
)

// Dobles mínimos de las capacidades de render y emisión; los casos de
// integración completos viven en los tests del caso de uso.

type stubRenderer struct{}

func (stubRenderer) Ready(ctx context.Context) error { return nil }
func (stubRenderer) Render(ctx context.Context, rec *entity.ReceiptRecord) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 794, 600)), nil
}

type stubWriter struct{}

func (stubWriter) Write(img image.Image, slices []pagination.PageSlice, imgHeightMM float64) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type failingWriter struct{}

func (failingWriter) Write(img image.Image, slices []pagination.PageSlice, imgHeightMM float64) ([]byte, error) {
	return nil, errors.New("sin espacio")
}

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, rec *entity.ReceiptRecord) ([]byte, error) {
	return []byte("%PDF-vector"), nil
}

func newTestApp(t *testing.T, writer receipts.DocumentWriter) *fiber.App {
	t.Helper()

	log := logger.Nop()
	repo := history.NewKVHistoryRepository(kvstore.NewMemoryStore(), log)

	app := fiber.New()
	app.Use(apihttp.RequestID())
	apihttp.Router(app, apihttp.RouterDeps{
		DraftUC:   receipts.NewDraftUseCase(),
		ExportUC:  receipts.NewExportUseCase(repo, stubRenderer{}, writer, log),
		HistoryUC: receipts.NewHistoryUseCase(repo, stubGenerator{}),
		Log:       log,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *netHTTP.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(netHTTP.MethodPost, path, bytes.NewReader(data))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func validForm() dto.ReceiptFormRequest {
	return dto.ReceiptFormRequest{
		Date:          "2026-08-28",
		RecipientName: "علي",
		ReceiverName:  "سارة",
		Currency:      entity.CurrencyUSD,
		Items:         []dto.LineItemDTO{{Description: "إيجار", Amount: "100"}},
	}
}

func TestDraft(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	req := httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/draft", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)

	var draft dto.DraftResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&draft))
	assert.Equal(t, entity.CurrencyUSD, draft.Currency)
	require.Len(t, draft.Items, 1)
	assert.Empty(t, draft.Items[0].Description)
}

func TestPreview(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	resp := postJSON(t, app, "/api/receipts/preview", dto.PreviewRequest{
		Currency: entity.CurrencyUSD,
		Items:    []dto.LineItemDTO{{Amount: "10"}, {Amount: "abc"}, {Amount: "5.5"}},
	})
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)

	var out dto.PreviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "15.50", out.Amount)
	assert.NotEmpty(t, out.AmountInWords)
}

func TestExport_OK(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	resp := postJSON(t, app, "/api/receipts/export", validForm())
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "receipt-")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-stub", string(body))
}

func TestExport_ValidacionPorCampo(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	form := validForm()
	form.RecipientName = ""
	resp := postJSON(t, app, "/api/receipts/export", form)
	require.Equal(t, netHTTP.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "الاسم مطلوب", out.Fields["recipientName"])
}

// Un fallo de emisión sale como aviso genérico y la respuesta lleva el id de
// correlación para casar con el log.
func TestExport_FalloDeEmision(t *testing.T) {
	app := newTestApp(t, failingWriter{})

	resp := postJSON(t, app, "/api/receipts/export", validForm())
	require.Equal(t, netHTTP.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apihttp.HeaderRequestID))

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "EXPORT_FAILED", out.Code)
	assert.Equal(t, "حدث خطأ أثناء إنشاء ملف PDF. يرجى المحاولة مرة أخرى.", out.Message)
}

// El middleware respeta el id entrante y genera uno cuando falta.
func TestRequestID(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	req := httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/draft", nil)
	req.Header.Set(apihttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apihttp.HeaderRequestID))

	req = httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/draft", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(apihttp.HeaderRequestID))
}

func TestHistory_ListaYBorra(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	// Exportar deja una entrada en el historial.
	resp := postJSON(t, app, "/api/receipts/export", validForm())
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)

	var items []dto.HistoryItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "علي", items[0].RecipientName)
	assert.Equal(t, "100.00", items[0].Amount)

	// Vaciar.
	req = httptest.NewRequest(netHTTP.MethodDelete, "/api/receipts/history", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, netHTTP.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/history", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	items = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Empty(t, items)
}

func TestHistory_DescargaPDF(t *testing.T) {
	app := newTestApp(t, stubWriter{})

	resp := postJSON(t, app, "/api/receipts/export", validForm())
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	var items []dto.HistoryItemResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)

	req = httptest.NewRequest(netHTTP.MethodGet,
		"/api/receipts/history/"+strconv.FormatInt(items[0].ID, 10)+"/pdf", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, netHTTP.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	// Id inexistente.
	req = httptest.NewRequest(netHTTP.MethodGet, "/api/receipts/history/999/pdf", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, netHTTP.StatusNotFound, resp.StatusCode)
}
