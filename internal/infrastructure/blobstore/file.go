package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// FileStore es un BlobStore respaldado por archivos JSON: un archivo
// <clave>.json por clave dentro del directorio de datos. Es el análogo
// directo del localStorage original. Las escrituras son atómicas
// (archivo temporal + rename).
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore crea el directorio de datos si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Get lee el archivo de la clave o devuelve ErrKeyNotFound.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return data, nil
}

// Set escribe el valor en un archivo temporal y lo renombra sobre el destino.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("archivo temporal para %s: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir clave %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar temporal de %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("renombrar temporal de %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
