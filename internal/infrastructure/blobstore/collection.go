package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// loadCollection decodifica la colección JSON guardada bajo la clave.
// Clave ausente equivale a colección vacía (deja out sin tocar).
func loadCollection(ctx context.Context, store repository.BlobStore, key string, out any) error {
	data, err := store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer colección %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decodificar colección %s: %w", key, err)
	}
	return nil
}

// saveCollection serializa y escribe la colección completa bajo la clave.
func saveCollection(ctx context.Context, store repository.BlobStore, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("codificar colección %s: %w", key, err)
	}
	if err := store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("escribir colección %s: %w", key, err)
	}
	return nil
}
