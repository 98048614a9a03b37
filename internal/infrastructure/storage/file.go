package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

var _ repository.KeyValueStore = (*FileStore)(nil)

// FileStore KeyValueStore respaldado por un archivo JSON (objeto clave -> valor),
// el equivalente en disco del localStorage del navegador.
// Cada Set reescribe el archivo completo con un rename atómico.
type FileStore struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

// NewFileStore crea el almacenamiento sobre path. El archivo se crea en el primer Set.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, log: logger.Nop()}
}

// WithLogger asigna el logger donde se reporta el contenido descartado por Set.
func (f *FileStore) WithLogger(log *logger.Logger) *FileStore {
	if log != nil {
		f.log = log
	}
	return f
}

// Get devuelve el valor de la clave. Un archivo inexistente equivale a un almacenamiento vacío;
// un archivo que no es un objeto JSON devuelve error.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set escribe la clave conservando el resto del contenido.
// Si el archivo está corrupto se descarta completo y se reescribe solo con esta clave.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	var corrupt *corruptFileError
	if errors.As(err, &corrupt) {
		f.log.Warn().Err(corrupt.err).
			Str("path", f.path).
			Str("discarded", truncate(corrupt.raw, 512)).
			Msg("archivo de almacenamiento corrupto; se sobrescribe")
		data, err = map[string]string{}, nil
	}
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

// corruptFileError el archivo existe pero no es un objeto JSON de strings.
type corruptFileError struct {
	path string
	raw  []byte
	err  error
}

func (e *corruptFileError) Error() string {
	return fmt.Sprintf("decodificar %s: %v", e.path, e.err)
}

func (e *corruptFileError) Unwrap() error { return e.err }

func (f *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", f.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &corruptFileError{path: f.path, raw: raw, err: err}
	}
	return data, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}

func (f *FileStore) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar almacenamiento: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".storage-*.json")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", f.path, err)
	}
	return nil
}
