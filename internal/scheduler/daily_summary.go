package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
	"github.com/vfg2006/tiktok-sales-api/pkg/metrics"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

var ErrSummaryRunning = errors.New("resumo diário já em andamento")

// DailySummaryConfig representa a configuração do agendador do resumo diário
type DailySummaryConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailySummaryService agenda o cálculo do painel completo e registra o resumo do dia nos logs
type DailySummaryService struct {
	scheduler        *gocron.Scheduler
	config           DailySummaryConfig
	reporter         reporting.Reporter
	running          bool
	mutex            sync.Mutex
	lastStartedAt    time.Time
	lastCompletedAt  time.Time
	lastError        string
	lastSummaryTotal string
}

func NewDailySummaryService(reporter reporting.Reporter, appConfig *config.Config) *DailySummaryService {
	summaryConfig := DailySummaryConfig{
		CronSchedule: appConfig.DailySummary.CronSchedule,
		Enabled:      appConfig.DailySummary.Enabled,
	}

	location := appConfig.App.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": summaryConfig.CronSchedule,
		"enabled":       summaryConfig.Enabled,
		"timezone":      location.String(),
	}).Info("Configuração do resumo diário carregada")

	return &DailySummaryService{
		scheduler: gocron.NewScheduler(location),
		config:    summaryConfig,
		reporter:  reporter,
	}
}

// Start inicia o agendador
func (s *DailySummaryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Resumo diário desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSummary(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do resumo diário")
		s.scheduler.Stop()
	}()

	return nil
}

// runSummary calcula o painel sem filtros; execuções sobrepostas são ignoradas
func (s *DailySummaryService) runSummary(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	summary, err := s.reporter.Dashboard(ctx, domain.DashboardFilters{
		Period:  domain.PeriodAll,
		Account: domain.AllAccounts,
	})

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.running = false

	if err != nil {
		s.lastError = err.Error()
		metrics.DailySummaryRuns.WithLabelValues("error").Inc()
		log.ForContext(ctx).WithError(err).Error("Erro ao calcular o resumo diário")
		return
	}

	s.lastError = ""
	s.lastCompletedAt = time.Now()
	s.lastSummaryTotal = summary.FixedCards.TotalRevenue.String()
	metrics.DailySummaryRuns.WithLabelValues("success").Inc()

	logrus.WithFields(logrus.Fields{
		"faturamento_total":  utils.FormatBRL(summary.FixedCards.TotalRevenue),
		"ultimos_sete_dias":  utils.FormatBRL(summary.FixedCards.LastSevenDays),
		"mes_corrente":       utils.FormatBRL(summary.FixedCards.CurrentMonthRevenue),
		"meta_mensal":        utils.FormatBRL(summary.MonthlyProgress.Target),
		"progresso_meta_pct": summary.MonthlyProgress.Percentage.String(),
		"registros":          summary.RecordCount,
	}).Info("Resumo diário de vendas")
}

// TriggerManualSync dispara o resumo em background
func (s *DailySummaryService) TriggerManualSync() error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Resumo diário já em andamento, ignorando solicitação manual")
		return ErrSummaryRunning
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando resumo diário manual")
	go s.runSummary(context.Background())

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DailySummaryService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
		"last_total":        s.lastSummaryTotal,
	}
}
