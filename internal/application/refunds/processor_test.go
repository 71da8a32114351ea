package refunds_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retailmaster-api/internal/application/dto"
	"github.com/jhoicas/retailmaster-api/internal/application/inventory"
	"github.com/jhoicas/retailmaster-api/internal/application/orders"
	"github.com/jhoicas/retailmaster-api/internal/application/refunds"
	"github.com/jhoicas/retailmaster-api/internal/domain"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

// fixture arma el procesador completo sobre un blob store en memoria.
type fixture struct {
	ctx      context.Context
	products *blobstore.ProductRepository
	orders   *blobstore.OrderRepository
	refunds  *blobstore.RefundRepository
	logs     *blobstore.InventoryLogRepository
	ledger   *inventory.StockLedger
	orderUC  *orders.UseCase
	proc     *refunds.Processor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := blobstore.NewMemoryStore()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	f := &fixture{
		ctx:      context.Background(),
		products: blobstore.NewProductRepository(store),
		orders:   blobstore.NewOrderRepository(store),
		refunds:  blobstore.NewRefundRepository(store),
		logs:     blobstore.NewInventoryLogRepository(store),
	}
	f.ledger = inventory.NewStockLedger(f.products, f.logs, log)
	f.orderUC = orders.NewUseCase(f.orders, f.ledger, log)
	f.proc = refunds.NewProcessor(f.orders, f.refunds, f.ledger, log)
	return f
}

func (f *fixture) seedProduct(t *testing.T, id, name string, stock int) {
	t.Helper()
	err := f.products.Create(f.ctx, &entity.Product{
		ID: id, SKU: "SKU-" + id, Name: name,
		Price: decimal.NewFromInt(10), Stock: stock,
	})
	require.NoError(t, err)
}

// seedOrder inserta la orden directamente, sin pasar por el descuento de
// inventario de Create.
func (f *fixture) seedOrder(t *testing.T, o *entity.Order) {
	t.Helper()
	if o.Status == "" {
		o.Status = entity.StatusCompleted
	}
	require.NoError(t, f.orders.Append(f.ctx, o))
}

func (f *fixture) stock(t *testing.T, productID string) int {
	t.Helper()
	p, err := f.products.GetByID(f.ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}

func basicOrder() *entity.Order {
	return &entity.Order{
		ID:       "O1",
		Date:     time.Now(),
		Customer: "Laura Méndez",
		Items: []entity.OrderItem{
			{ID: "P1", Name: "Camiseta", Quantity: 2, Price: decimal.NewFromInt(10)},
		},
		Subtotal: decimal.NewFromInt(20),
		Total:    decimal.NewFromInt(20),
		Status:   entity.StatusCompleted,
	}
}

func refundRequest(items ...entity.RefundItem) dto.RefundRequest {
	return dto.RefundRequest{
		OrderID:   "O1",
		Timestamp: time.Now(),
		Amount:    decimal.NewFromInt(10),
		Items:     items,
		Method:    entity.RefundMethodCard,
	}
}

// Escenario concreto de la vista de órdenes: reembolso parcial de 1 de 2
// unidades deja la orden en partial-refunded y restaura 1 unidad al stock.
func TestProcess_ReembolsoParcial(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 5)
	f.seedOrder(t, basicOrder())

	result, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 1, Price: decimal.NewFromInt(10), Condition: entity.ConditionNew},
	))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPartialRefunded, result.OrderStatus)
	assert.False(t, result.FullyRefunded)
	assert.Equal(t, []string{"1 x Camiseta"}, result.RestoredItems)
	assert.Empty(t, result.InventoryErrors)
	assert.Equal(t, 6, f.stock(t, "P1"))

	// La orden quedó con un reembolso y el estado derivado
	order, err := f.orders.GetByID(f.ctx, "O1")
	require.NoError(t, err)
	require.Len(t, order.Refunds, 1)
	assert.Equal(t, entity.StatusPartialRefunded, order.Status)
	assert.Contains(t, order.Notes, "Refund processed")
	assert.Contains(t, order.Notes, "Items returned to inventory: 1 x Camiseta")

	// Historial global con orden y cliente
	history, err := f.refunds.ListByOrder(f.ctx, "O1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Laura Méndez", history[0].Customer)

	// Movimiento de devolución en el historial de inventario
	moves, err := f.logs.ListByProduct(f.ctx, "P1")
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, entity.ReasonTypeReturn, moves[0].ReasonType)
	assert.Equal(t, 1, moves[0].QuantityChange)
}

// Dos reembolsos secuenciales que suman las cantidades originales dejan la
// orden en refunded.
func TestProcess_ReembolsoCompletoEnDosPasos(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 0)
	f.seedOrder(t, basicOrder())

	_, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 1, Condition: entity.ConditionNew},
	))
	require.NoError(t, err)

	result, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 1, Condition: entity.ConditionNew},
	))
	require.NoError(t, err)

	assert.True(t, result.FullyRefunded)
	assert.Equal(t, entity.StatusRefunded, result.OrderStatus)

	order, err := f.orders.GetByID(f.ctx, "O1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRefunded, order.Status)
	assert.Len(t, order.Refunds, 2)
	// Los IDs de reembolso son únicos incluso en llamadas consecutivas
	assert.NotEqual(t, order.Refunds[0].ID, order.Refunds[1].ID)
	assert.Equal(t, 2, f.stock(t, "P1"))
}

// Los ítems en condición distinta de "new" nunca alteran el stock.
func TestProcess_CondicionNoNuevaNoRestaura(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 5)
	f.seedOrder(t, basicOrder())

	result, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 2, Condition: entity.ConditionDamaged},
	))
	require.NoError(t, err)

	assert.Empty(t, result.RestoredItems)
	assert.Equal(t, 5, f.stock(t, "P1"))
	// El reembolso sí cuenta para el estado de la orden
	assert.True(t, result.FullyRefunded)
	assert.Equal(t, entity.StatusRefunded, result.OrderStatus)

	moves, err := f.logs.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

// Los ítems fuera de catálogo quedan exentos de efectos de inventario, tanto
// con el campo explícito como con el prefijo heredado.
func TestProcess_ItemCustomNoRestaura(t *testing.T) {
	f := newFixture(t)
	o := basicOrder()
	o.Items = append(o.Items,
		entity.OrderItem{ID: "X1", Name: "Grabado", Quantity: 1, Custom: true},
		entity.OrderItem{ID: "custom-2", Name: "Envoltura", Quantity: 1},
	)
	f.seedOrder(t, o)

	result, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "X1", Name: "Grabado", Quantity: 1, Condition: entity.ConditionNew, Custom: true},
		entity.RefundItem{ID: "custom-2", Name: "Envoltura", Quantity: 1, Condition: entity.ConditionNew},
	))
	require.NoError(t, err)

	assert.Empty(t, result.RestoredItems)
	assert.Empty(t, result.InventoryErrors)

	moves, err := f.logs.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestProcess_OrdenInexistente(t *testing.T) {
	f := newFixture(t)

	req := refundRequest(entity.RefundItem{ID: "P1", Quantity: 1, Condition: entity.ConditionNew})
	req.OrderID = "NO-EXISTE"
	_, err := f.proc.Process(f.ctx, req)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

// El guard de sobre-reembolso rechaza antes de aplicar cualquier efecto.
func TestProcess_SobreReembolsoSinEfectos(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 5)
	f.seedOrder(t, basicOrder())

	_, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 3, Condition: entity.ConditionNew},
	))
	require.ErrorIs(t, err, domain.ErrOverRefund)

	// Sin efectos: stock intacto, orden intacta, historial vacío
	assert.Equal(t, 5, f.stock(t, "P1"))
	order, err := f.orders.GetByID(f.ctx, "O1")
	require.NoError(t, err)
	assert.Empty(t, order.Refunds)
	assert.Equal(t, entity.StatusCompleted, order.Status)

	history, err := f.refunds.List(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

// Falla de inventario (producto fuera de catálogo) no aborta: se reporta en
// el resultado y el reembolso queda registrado.
func TestProcess_FallaDeInventarioEsParcial(t *testing.T) {
	f := newFixture(t)
	// P1 no existe en el catálogo
	f.seedOrder(t, basicOrder())

	result, err := f.proc.Process(f.ctx, refundRequest(
		entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 2, Condition: entity.ConditionNew},
	))
	require.NoError(t, err)

	assert.Empty(t, result.RestoredItems)
	require.Len(t, result.InventoryErrors, 1)
	assert.Contains(t, result.InventoryErrors[0], "Camiseta")

	order, err := f.orders.GetByID(f.ctx, "O1")
	require.NoError(t, err)
	require.Len(t, order.Refunds, 1)
	assert.Equal(t, entity.StatusRefunded, order.Status)
	assert.Contains(t, order.Notes, "Inventory update issues")
}

func TestProcess_SolicitudInvalida(t *testing.T) {
	f := newFixture(t)
	f.seedOrder(t, basicOrder())

	t.Run("sin ítems", func(t *testing.T) {
		req := refundRequest()
		_, err := f.proc.Process(f.ctx, req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cantidad cero", func(t *testing.T) {
		_, err := f.proc.Process(f.ctx, refundRequest(
			entity.RefundItem{ID: "P1", Quantity: 0, Condition: entity.ConditionNew},
		))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("monto negativo", func(t *testing.T) {
		req := refundRequest(entity.RefundItem{ID: "P1", Quantity: 1, Condition: entity.ConditionNew})
		req.Amount = decimal.NewFromInt(-1)
		_, err := f.proc.Process(f.ctx, req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("método desconocido", func(t *testing.T) {
		req := refundRequest(entity.RefundItem{ID: "P1", Quantity: 1, Condition: entity.ConditionNew})
		req.Method = "cheque"
		_, err := f.proc.Process(f.ctx, req)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// Ida y vuelta completa: crear la orden descuenta el stock y el reembolso en
// condición nueva lo regresa exactamente al nivel previo.
func TestProcess_IdaYVueltaDeStock(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 10)

	_, err := f.orderUC.Create(f.ctx, &entity.Order{
		ID:       "O1",
		Customer: "Carlos Ruiz",
		Items: []entity.OrderItem{
			{ID: "P1", Name: "Camiseta", Quantity: 3, Price: decimal.NewFromInt(10)},
		},
		Subtotal: decimal.NewFromInt(30),
		Total:    decimal.NewFromInt(30),
		Status:   entity.StatusCompleted,
	})
	require.NoError(t, err)
	require.Equal(t, 7, f.stock(t, "P1"))

	req := refundRequest(entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 3, Condition: entity.ConditionNew})
	req.Amount = decimal.NewFromInt(30)
	result, err := f.proc.Process(f.ctx, req)
	require.NoError(t, err)

	assert.True(t, result.FullyRefunded)
	assert.Equal(t, 10, f.stock(t, "P1"))

	// Venta y devolución quedaron en el historial de inventario
	moves, err := f.logs.ListByProduct(f.ctx, "P1")
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, entity.ReasonTypeSale, moves[0].ReasonType)
	assert.Equal(t, -3, moves[0].QuantityChange)
	assert.Equal(t, entity.ReasonTypeReturn, moves[1].ReasonType)
	assert.Equal(t, 3, moves[1].QuantityChange)
}

// Las notas se acumulan: cada reembolso agrega su resumen sin sobreescribir.
func TestProcess_NotasAcumulativas(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "P1", "Camiseta", 0)
	o := basicOrder()
	o.Notes = "Cliente frecuente"
	f.seedOrder(t, o)

	req := refundRequest(entity.RefundItem{ID: "P1", Name: "Camiseta", Quantity: 1, Condition: entity.ConditionNew})
	req.Note = "Talla equivocada"
	_, err := f.proc.Process(f.ctx, req)
	require.NoError(t, err)

	order, err := f.orders.GetByID(f.ctx, "O1")
	require.NoError(t, err)
	assert.Contains(t, order.Notes, "Cliente frecuente")
	assert.Contains(t, order.Notes, "Talla equivocada")
}
