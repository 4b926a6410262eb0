package repository

import "github.com/tu-usuario/wasl-api/internal/domain/entity"

// HistoryRepository historial de recibos en un registro acotado (50 entradas,
// la más nueva primero). Todas las operaciones trabajan sobre el registro
// completo como unidad: no hay actualizaciones parciales ni coordinación de
// escritores concurrentes (se asume un único contexto de uso).
type HistoryRepository interface {
	// Append sella el borrador con id único y timestamp, lo antepone al
	// registro, trunca a 50 entradas y persiste. Devuelve el recibo sellado.
	Append(draft entity.ReceiptDraft) (*entity.ReceiptRecord, error)
	// List devuelve el registro persistido; ausente o corrupto → vacío,
	// nunca error de lectura.
	List() ([]entity.ReceiptRecord, error)
	// Remove filtra el id, persiste y devuelve el registro resultante. Un id
	// inexistente es un no-op que devuelve el registro sin cambios.
	Remove(id int64) ([]entity.ReceiptRecord, error)
	// Clear persiste un registro vacío.
	Clear() error
}
