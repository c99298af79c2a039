package main

import (
	"context"
	_ "time/tzdata"

	"github.com/vfg2006/tiktok-sales-api/infrastructure/database"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-sales-api/internal/api"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"github.com/vfg2006/tiktok-sales-api/internal/scheduler"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.Migrate {
		if err := database.RunMigrations(cfg.Database); err != nil {
			log.L.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		log.L.Info("Migrações aplicadas com sucesso")
	}

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	saleRepo := repository.NewSaleRepository(conn)
	settingsRepo := repository.NewSettingsRepository(conn)

	salesService := selling.NewService(saleRepo, settingsRepo, cfg)
	reporter := reporting.NewService(saleRepo, salesService, cfg.App.Location)
	exporter := exporting.NewService(saleRepo, cfg.App.Location)

	dailySummaryService := scheduler.NewDailySummaryService(reporter, cfg)
	if err := dailySummaryService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do resumo diário")
	}

	server, err := api.New(cfg, conn, salesService, reporter, exporter, dailySummaryService)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// dbconn abre a conexão com o banco configurado
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatalf("Erro ao conectar ao banco de dados (%s)", dbConfig.Driver)
	}

	log.L.Infof("Conexão com %s estabelecida com sucesso", dbConfig.Driver)
	return conn
}
