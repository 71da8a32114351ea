package order

import "github.com/jhoicas/retailmaster-api/internal/domain/entity"

// Transiciones de estado permitidas vía actualización directa. Los estados
// refunded y partial-refunded solo se alcanzan a través del procesador de
// reembolsos, nunca por actualización manual.
var allowedTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:   {entity.StatusCompleted, entity.StatusCancelled},
	entity.StatusCompleted: {entity.StatusPending, entity.StatusCancelled},
	entity.StatusCancelled: {entity.StatusPending},
}

// CanTransition indica si el cambio de estado está permitido por
// actualización directa.
func CanTransition(from, to entity.OrderStatus) bool {
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
