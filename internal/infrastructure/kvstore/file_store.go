package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore implementación de Store sobre el sistema de archivos: cada clave
// es un archivo <dir>/<clave>.json. La escritura es atómica (archivo temporal
// + rename) para que un corte a mitad de escritura nunca deje un valor a
// medias: o se lee el valor anterior completo o el nuevo completo.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore crea el directorio si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: crear directorio %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get lee el valor completo de la clave.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: leer %s: %w", key, err)
	}
	return data, true, nil
}

// Set reemplaza el valor completo de la clave de forma atómica.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("kvstore: archivo temporal para %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("kvstore: escribir %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore: cerrar temporal de %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvstore: publicar %s: %w", key, err)
	}
	return nil
}

// Delete elimina la clave.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvstore: eliminar %s: %w", key, err)
	}
	return nil
}
