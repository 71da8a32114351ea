package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound indica que la clave no existe en el blob store.
var ErrKeyNotFound = errors.New("clave no encontrada en el blob store")

// BlobStore es el puerto de persistencia: almacenamiento opaco clave→JSON,
// síncrono, de un solo lector/escritor. Equivale al localStorage de la
// aplicación original. Get devuelve ErrKeyNotFound si la clave no existe.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
