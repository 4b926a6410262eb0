// Package history implementa el historial de recibos sobre el almacén
// clave/valor del dispositivo: una sola clave guarda el registro completo
// como arreglo JSON y cada mutación lo reescribe entero.
package history

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/wasl-api/internal/domain/entity"
	"github.com/tu-usuario/wasl-api/internal/infrastructure/kvstore"
	"github.com/tu-usuario/wasl-api/pkg/logger"
)

const (
	// historyKey clave bien conocida bajo la que vive el registro completo.
	historyKey = "receiptHistory"
	// maxEntries cota del registro; más allá se desaloja la entrada más
	// antigua en silencio.
	maxEntries = 50
)

// KVHistoryRepository implementa repository.HistoryRepository.
type KVHistoryRepository struct {
	store kvstore.Store
	log   *logger.Logger

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewKVHistoryRepository construye el repositorio.
func NewKVHistoryRepository(store kvstore.Store, log *logger.Logger) *KVHistoryRepository {
	return &KVHistoryRepository{store: store, log: log, now: time.Now}
}

// load lee el registro persistido. Valor ausente o corrupto se trata como
// registro vacío: es la política de degradación intencional, no un error.
func (r *KVHistoryRepository) load() []entity.ReceiptRecord {
	data, ok, err := r.store.Get(historyKey)
	if err != nil {
		r.log.Warn().Err(err).Msg("historial ilegible, se trata como vacío")
		return nil
	}
	if !ok {
		return nil
	}
	var records []entity.ReceiptRecord
	if err := json.Unmarshal(data, &records); err != nil {
		r.log.Warn().Err(err).Msg("historial corrupto, se trata como vacío")
		return nil
	}
	return records
}

func (r *KVHistoryRepository) persist(records []entity.ReceiptRecord) error {
	if records == nil {
		records = []entity.ReceiptRecord{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("history: serializar registro: %w", err)
	}
	if err := r.store.Set(historyKey, data); err != nil {
		return fmt.Errorf("history: persistir registro: %w", err)
	}
	return nil
}

// nextID id entero derivado del reloj en milisegundos. Dos appends dentro del
// mismo milisegundo seguirían siendo únicos: se fuerza monotonía estricta.
func (r *KVHistoryRepository) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Append sella y antepone el borrador, truncando a la cota.
func (r *KVHistoryRepository) Append(draft entity.ReceiptDraft) (*entity.ReceiptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record := entity.ReceiptRecord{
		ReceiptDraft: draft,
		ID:           r.nextID(now),
		Timestamp:    now.UTC(),
	}

	records := append([]entity.ReceiptRecord{record}, r.load()...)
	if len(records) > maxEntries {
		records = records[:maxEntries]
	}
	if err := r.persist(records); err != nil {
		return nil, err
	}
	return &record, nil
}

// List devuelve el registro completo, el más nuevo primero.
func (r *KVHistoryRepository) List() ([]entity.ReceiptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := r.load()
	if records == nil {
		records = []entity.ReceiptRecord{}
	}
	return records, nil
}

// Remove filtra el id y persiste el resultado.
func (r *KVHistoryRepository) Remove(id int64) ([]entity.ReceiptRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.load()
	filtered := make([]entity.ReceiptRecord, 0, len(records))
	for _, rec := range records {
		if rec.ID != id {
			filtered = append(filtered, rec)
		}
	}
	if err := r.persist(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Clear persiste un registro vacío.
func (r *KVHistoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persist(nil)
}
