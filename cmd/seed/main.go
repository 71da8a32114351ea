// seed puebla el blob store configurado con datos de demostración:
// catálogo, clientes y una orden completada (con su descuento de inventario).
//
// Uso: go run ./cmd/seed
// El destino se controla con STORE_DRIVER / STORE_PATH / DATABASE_URL / MONGODB_URI.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/retailmaster-api/internal/application/dto"
	"github.com/jhoicas/retailmaster-api/internal/application/inventory"
	"github.com/jhoicas/retailmaster-api/internal/application/orders"
	"github.com/jhoicas/retailmaster-api/internal/application/usecase"
	"github.com/jhoicas/retailmaster-api/internal/domain/entity"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/retailmaster-api/pkg/config"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	store, closeStore, err := blobstore.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir blob store")
	}
	defer closeStore()

	productRepo := blobstore.NewProductRepository(store)
	customerRepo := blobstore.NewCustomerRepository(store)
	orderRepo := blobstore.NewOrderRepository(store)
	logRepo := blobstore.NewInventoryLogRepository(store)

	ledger := inventory.NewStockLedger(productRepo, logRepo, log)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	orderUC := orders.NewUseCase(orderRepo, ledger, log)

	seedProducts := []dto.CreateProductRequest{
		{SKU: "TSHIRT-BLK-M", Name: "Camiseta negra M", Category: "Ropa", Price: decimal.NewFromInt(25), Cost: decimal.NewFromInt(9), Stock: 40, ReorderLevel: 10},
		{SKU: "MUG-LOGO", Name: "Mug con logo", Category: "Accesorios", Price: decimal.NewFromInt(12), Cost: decimal.NewFromInt(4), Stock: 60, ReorderLevel: 15},
		{SKU: "CAP-BLU", Name: "Gorra azul", Category: "Accesorios", Price: decimal.NewFromInt(18), Cost: decimal.NewFromInt(7), Stock: 25, ReorderLevel: 5},
	}
	productIDs := make(map[string]string)
	for _, in := range seedProducts {
		p, err := productUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("sku", in.SKU).Msg("crear producto")
		}
		productIDs[in.SKU] = p.ID
		log.Info().Str("sku", p.SKU).Str("id", p.ID).Msg("producto creado")
	}

	customers := []dto.CreateCustomerRequest{
		{Name: "Laura Méndez", Email: "laura@example.com", Phone: "300 555 0101"},
		{Name: "Carlos Ruiz", Email: "carlos@example.com"},
	}
	for _, in := range customers {
		c, err := customerUC.Create(ctx, in)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear cliente")
		}
		log.Info().Str("name", c.Name).Str("id", c.ID).Msg("cliente creado")
	}

	shirt := productIDs["TSHIRT-BLK-M"]
	mug := productIDs["MUG-LOGO"]
	order := &entity.Order{
		Date:     time.Now(),
		Customer: "Laura Méndez",
		Items: []entity.OrderItem{
			{ID: shirt, Name: "Camiseta negra M", Quantity: 2, Price: decimal.NewFromInt(25)},
			{ID: mug, Name: "Mug con logo", Quantity: 1, Price: decimal.NewFromInt(12)},
		},
		Subtotal: decimal.NewFromInt(62),
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Total:    decimal.NewFromInt(62),
		Status:   entity.StatusCompleted,
		Payment:  &entity.PaymentInfo{Method: entity.PaymentMethodCard, CardType: "visa"},
	}
	created, err := orderUC.Create(ctx, order)
	if err != nil {
		log.Fatal().Err(err).Msg("crear orden")
	}
	log.Info().Str("order_id", created.ID).Msg("orden de demostración creada")
}
