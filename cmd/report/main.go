// report genera el reporte financiero en PDF a partir de las órdenes y
// reembolsos del blob store configurado.
//
// Uso: go run ./cmd/report [-from 2026-01-01] [-to 2026-01-31] [-o reporte.pdf]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jhoicas/retailmaster-api/internal/application/finances"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/blobstore"
	"github.com/jhoicas/retailmaster-api/internal/infrastructure/pdf"
	"github.com/jhoicas/retailmaster-api/pkg/config"
	"github.com/jhoicas/retailmaster-api/pkg/logger"
)

const dateLayout = "2006-01-02"

func main() {
	fromFlag := flag.String("from", "", "inicio del período (YYYY-MM-DD; vacío = sin límite)")
	toFlag := flag.String("to", "", "fin del período (YYYY-MM-DD; vacío = sin límite)")
	outFlag := flag.String("o", "reporte.pdf", "archivo PDF de salida")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	var from, to time.Time
	if *fromFlag != "" {
		if from, err = time.Parse(dateLayout, *fromFlag); err != nil {
			log.Fatal().Err(err).Msg("parsear -from")
		}
	}
	if *toFlag != "" {
		if to, err = time.Parse(dateLayout, *toFlag); err != nil {
			log.Fatal().Err(err).Msg("parsear -to")
		}
		// Incluir el día completo del límite superior
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	ctx := context.Background()
	store, closeStore, err := blobstore.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir blob store")
	}
	defer closeStore()

	orderRepo := blobstore.NewOrderRepository(store)
	refundRepo := blobstore.NewRefundRepository(store)
	summaryUC := finances.NewSummaryUseCase(orderRepo, refundRepo)

	summary, err := summaryUC.Summary(ctx, from, to)
	if err != nil {
		log.Fatal().Err(err).Msg("calcular resumen financiero")
	}

	generator := pdf.NewFinanceReportGenerator()
	data, err := generator.Generate(cfg.App.Name, summary)
	if err != nil {
		log.Fatal().Err(err).Msg("generar PDF")
	}
	if err := os.WriteFile(*outFlag, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir PDF")
	}

	log.Info().
		Str("file", *outFlag).
		Str("gross", summary.GrossSales.String()).
		Str("refunded", summary.RefundedTotal.String()).
		Str("net", summary.NetRevenue.String()).
		Msg("reporte generado")
}
