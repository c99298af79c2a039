package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-sales-api/internal/api/handler/router"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/metrics"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Sales(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/api/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/api/sales/:id",
			Method:  http.MethodPut,
			Handler: UpdateSale(service),
		},
		{
			Path:    "/api/sales/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSale(service),
		},
	}
}

func Settings(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/settings/meta",
			Method:  http.MethodGet,
			Handler: GetMonthlyTarget(service),
		},
		{
			Path:    "/api/settings/meta",
			Method:  http.MethodPut,
			Handler: SetMonthlyTarget(service),
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/api/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(),
		},
	}
}

func Export(service exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/export",
			Method:  http.MethodGet,
			Handler: ExportSales(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/api/cron/jobs/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/api/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
