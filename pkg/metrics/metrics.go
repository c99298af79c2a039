// Package metrics registra as métricas Prometheus expostas em /metrics
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tiktok_sales"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latência das requisições HTTP por rota.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	MonthlyProgressPercentage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "monthly_target_progress_percent",
			Help:      "Percentual da meta mensal atingido no mês corrente.",
		},
	)

	DailySummaryRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_summary_runs_total",
			Help:      "Execuções do resumo diário por resultado.",
		},
		[]string{"result"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
