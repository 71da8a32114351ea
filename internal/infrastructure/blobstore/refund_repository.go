package blobstore

import (
	"context"
	"sync"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/domain/repository"
)

// RefundRepository implementa el historial global de reembolsos sobre el
// blob store. Solo expone List y Append: los registros nunca se tocan.
type RefundRepository struct {
	store repository.BlobStore
	mu    sync.Mutex
}

// NewRefundRepository construye el repositorio.
func NewRefundRepository(store repository.BlobStore) *RefundRepository {
	return &RefundRepository{store: store}
}

func (r *RefundRepository) load(ctx context.Context) ([]*entity.Refund, error) {
	var refunds []*entity.Refund
	if err := loadCollection(ctx, r.store, KeyRefunds, &refunds); err != nil {
		return nil, err
	}
	return refunds, nil
}

// List devuelve todos los reembolsos en orden de inserción.
func (r *RefundRepository) List(ctx context.Context) ([]*entity.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// ListByOrder devuelve los reembolsos de una orden.
func (r *RefundRepository) ListByOrder(ctx context.Context, orderID string) ([]*entity.Refund, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	refunds, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Refund, 0)
	for _, ref := range refunds {
		if ref.OrderID == orderID {
			matched = append(matched, ref)
		}
	}
	return matched, nil
}

// Append agrega el reembolso al final del historial.
func (r *RefundRepository) Append(ctx context.Context, refund *entity.Refund) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	refunds, err := r.load(ctx)
	if err != nil {
		return err
	}
	refunds = append(refunds, refund)
	return saveCollection(ctx, r.store, KeyRefunds, refunds)
}
