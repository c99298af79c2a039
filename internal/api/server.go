package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/tiktok-sales-api/internal/api/handler"
	"github.com/vfg2006/tiktok-sales-api/internal/api/handler/router"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"github.com/vfg2006/tiktok-sales-api/internal/scheduler"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
	"github.com/vfg2006/tiktok-sales-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	db handler.Pinger,
	salesService selling.SalesService,
	reporter reporting.Reporter,
	exporter exporting.Exporter,
	dailySummaryService *scheduler.DailySummaryService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Sales(salesService)...),
		router.WithRoutes(handler.Settings(salesService)...),
		router.WithRoutes(handler.Dashboard(reporter)...),
		router.WithRoutes(handler.Export(exporter)...),
		router.WithRoutes(handler.CronJobs(handler.NewCronJobServices(dailySummaryService))...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Run sobe o servidor e bloqueia até um sinal de término ou o cancelamento do contexto
func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
