package repository

import (
	"context"

	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
)

// RefundRepository define el puerto del historial global de reembolsos.
// Append-only: nunca se modifica ni elimina un registro ya escrito.
type RefundRepository interface {
	List(ctx context.Context) ([]*entity.Refund, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.Refund, error)
	Append(ctx context.Context, refund *entity.Refund) error
}
