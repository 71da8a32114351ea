// Package mongo implementa el puerto BlobStore sobre MongoDB: un documento
// por clave en la colección kv_blobs.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

const collectionName = "kv_blobs"

// Connect abre el cliente de MongoDB y verifica la conexión con ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar a MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}
	return client, nil
}

// BlobStore implementa repository.BlobStore sobre una colección de Mongo.
type BlobStore struct {
	coll *mongo.Collection
}

// NewBlobStore construye el store sobre la base de datos indicada.
func NewBlobStore(client *mongo.Client, database string) *BlobStore {
	return &BlobStore{coll: client.Database(database).Collection(collectionName)}
}

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Get devuelve el blob de la clave o ErrKeyNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return doc.Value, nil
}

// Set guarda el blob bajo la clave (upsert).
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now()}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("escribir clave %s: %w", key, err)
	}
	return nil
}
