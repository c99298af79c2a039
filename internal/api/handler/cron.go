package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tiktok-sales-api/internal/scheduler"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDailySummary = "daily-summary"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os jobs disponíveis, indexados pelo tipo
type CronJobServices map[string]CronJob

func NewCronJobServices(dailySummary *scheduler.DailySummaryService) CronJobServices {
	return CronJobServices{
		CronJobTypeDailySummary: dailySummary,
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeDailySummary, nil)
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSummaryRunning) {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Cron job já em execução", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao disparar cron job %s", cronType)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for cronType, job := range services {
			if job != nil {
				status[cronType] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
