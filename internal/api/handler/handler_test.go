package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-sales-api/internal/api/handler/router"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/scheduler"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting"
	exportingmocks "github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting/mocks"
	reportingmocks "github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	sellingmocks "github.com/vfg2006/tiktok-sales-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type fakeJob struct {
	err error
}

func (j fakeJob) TriggerManualSync() error {
	return j.err
}

func (j fakeJob) GetStatus() map[string]any {
	return map[string]any{"running": false}
}

func serve(t *testing.T, rt http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestSalesRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := sellingmocks.NewMockSalesService(ctrl)
	rt := router.New(router.WithRoutes(Sales(service)...))

	t.Run("Lista os registros", func(t *testing.T) {
		service.EXPECT().ListSales(gomock.Any()).Return([]*domain.Sale{
			{ID: 1, Date: "2024-01-01", LolaModas: decimal.NewFromInt(100)},
		}, nil)

		rec := serve(t, rt, http.MethodGet, "/api/sales", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"date":"2024-01-01"`)
		assert.Contains(t, rec.Body.String(), `"lola_modas":"100"`)
	})

	t.Run("Cria aceitando números", func(t *testing.T) {
		service.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request *domain.SaleRequest) (*domain.Sale, error) {
				assert.Equal(t, "2024-01-02", request.Date)
				assert.True(t, request.LalaDaroca.Equal(decimal.RequireFromString("150.5")))
				return request.ToSale(2), nil
			})

		rec := serve(t, rt, http.MethodPost, "/api/sales", `{"date":"2024-01-02","lala_daroca":150.5}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":2`)
	})

	t.Run("Data duplicada", func(t *testing.T) {
		service.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			Return(nil, selling.NewSaleError(selling.ErrDuplicateDate, apiErrors.ErrDuplicateDate, "Já existe um registro para esta data"))

		rec := serve(t, rt, http.MethodPost, "/api/sales", `{"date":"2024-01-02"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrDuplicateDate, apiErr.Code)
		assert.Equal(t, "Já existe um registro para esta data", apiErr.Message)
		assert.Contains(t, rec.Body.String(), `"error":`)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		rec := serve(t, rt, http.MethodPost, "/api/sales", `{"date":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})

	t.Run("Atualiza o registro da rota", func(t *testing.T) {
		service.EXPECT().
			UpdateSale(gomock.Any(), int64(9), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, request *domain.SaleRequest) (*domain.Sale, error) {
				return request.ToSale(id), nil
			})

		rec := serve(t, rt, http.MethodPut, "/api/sales/9", `{"date":"2024-01-03","ju_dourado":"10"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":9`)
	})

	t.Run("Atualização de registro inexistente", func(t *testing.T) {
		service.EXPECT().
			UpdateSale(gomock.Any(), int64(404), gomock.Any()).
			Return(nil, selling.NewSaleErrorWithID(selling.ErrSaleNotFound, apiErrors.ErrSaleNotFound, 404, "Registro não encontrado"))

		rec := serve(t, rt, http.MethodPut, "/api/sales/404", `{"date":"2024-01-03"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSaleNotFound, decodeError(t, rec).Code)
	})

	t.Run("ID não numérico", func(t *testing.T) {
		rec := serve(t, rt, http.MethodDelete, "/api/sales/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Exclui", func(t *testing.T) {
		service.EXPECT().DeleteSale(gomock.Any(), int64(3)).Return(nil)

		rec := serve(t, rt, http.MethodDelete, "/api/sales/3", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Erro inesperado vira 500", func(t *testing.T) {
		service.EXPECT().ListSales(gomock.Any()).Return(nil, errors.New("boom"))

		rec := serve(t, rt, http.MethodGet, "/api/sales", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
	})
}

func TestSettingsRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := sellingmocks.NewMockSalesService(ctrl)
	rt := router.New(router.WithRoutes(Settings(service)...))

	service.EXPECT().GetMonthlyTarget(gomock.Any()).Return(&domain.MonthlyTarget{Meta: decimal.NewFromInt(15000)}, nil)

	rec := serve(t, rt, http.MethodGet, "/api/settings/meta", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meta":"15000"}`, rec.Body.String())

	service.EXPECT().
		SetMonthlyTarget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, target decimal.Decimal) (*domain.MonthlyTarget, error) {
			assert.Equal(t, "20000", target.String())
			return &domain.MonthlyTarget{Meta: target}, nil
		})

	rec = serve(t, rt, http.MethodPut, "/api/settings/meta", `{"meta":20000}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meta":"20000"}`, rec.Body.String())

	service.EXPECT().
		SetMonthlyTarget(gomock.Any(), gomock.Any()).
		Return(nil, selling.NewSaleError(selling.ErrInvalidTarget, apiErrors.ErrInvalidTarget, "A meta deve ser maior que zero"))

	rec = serve(t, rt, http.MethodPut, "/api/settings/meta", `{"meta":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidTarget, decodeError(t, rec).Code)
}

func TestDashboardRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := reportingmocks.NewMockReporter(ctrl)
	rt := router.New(router.WithRoutes(Dashboard(service)...))

	t.Run("Filtros repassados ao cálculo", func(t *testing.T) {
		expected := domain.DashboardFilters{
			Period:    domain.PeriodCustom,
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			Account:   domain.AccountJuDourado,
		}
		service.EXPECT().Dashboard(gomock.Any(), expected).Return(&domain.DashboardSummary{Filters: expected, Empty: true}, nil)

		rec := serve(t, rt, http.MethodGet, "/api/dashboard?period=custom&startDate=2024-01-01&endDate=2024-01-31&account=%40judourado.shop", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"empty":true`)
	})

	t.Run("Sem filtros usa todos", func(t *testing.T) {
		service.EXPECT().
			Dashboard(gomock.Any(), domain.DashboardFilters{Period: domain.PeriodAll, Account: domain.AllAccounts}).
			Return(&domain.DashboardSummary{}, nil)

		rec := serve(t, rt, http.MethodGet, "/api/dashboard", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	for name, target := range map[string]string{
		"Período desconhecido": "/api/dashboard?period=yearly",
		"Conta desconhecida":   "/api/dashboard?account=@outra",
		"Data inválida":        "/api/dashboard?period=custom&startDate=01-01-2024&endDate=2024-01-31",
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, rt, http.MethodGet, target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("Lista as contas", func(t *testing.T) {
		rec := serve(t, rt, http.MethodGet, "/api/accounts", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"handle":"@lolamodas.ia"`)
	})
}

func TestExportRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := exportingmocks.NewMockExporter(ctrl)
	rt := router.New(router.WithRoutes(Export(service)...))

	t.Run("Envia a planilha", func(t *testing.T) {
		service.EXPECT().
			Export(gomock.Any(), domain.ExportFilters{StartDate: "2024-01-01", Account: domain.AccountLolaModas}).
			Return(&domain.ExportFile{
				Name:        "vendas-tiktok-20240115-abc123.xlsx",
				ContentType: domain.SpreadsheetContentType,
				Content:     []byte("xlsx"),
			}, nil)

		rec := serve(t, rt, http.MethodGet, "/api/export?startDate=2024-01-01&account=lola_modas", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.SpreadsheetContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="vendas-tiktok-20240115-abc123.xlsx"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "xlsx", rec.Body.String())
	})

	t.Run("Data inválida", func(t *testing.T) {
		service.EXPECT().Export(gomock.Any(), gomock.Any()).Return(nil, exporting.ErrInvalidDate)

		rec := serve(t, rt, http.MethodGet, "/api/export?startDate=ontem", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("Conta inválida", func(t *testing.T) {
		rec := serve(t, rt, http.MethodGet, "/api/export?account=ninguem", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrUnknownAccount, decodeError(t, rec).Code)
	})
}

func TestCronRoutes(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
		CronJobTypeDailySummary: fakeJob{},
		"ocupado":               fakeJob{err: scheduler.ErrSummaryRunning},
		"quebrado":              fakeJob{err: errors.New("falhou")},
	})...))

	rec := serve(t, rt, http.MethodPost, "/api/cron/jobs/daily-summary/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(t, rt, http.MethodPost, "/api/cron/jobs/inexistente/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, rt, http.MethodPost, "/api/cron/jobs/ocupado/run", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrSchedulerBusy, decodeError(t, rec).Code)

	rec = serve(t, rt, http.MethodPost, "/api/cron/jobs/quebrado/run", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = serve(t, rt, http.MethodGet, "/api/cron/status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), CronJobTypeDailySummary)
}

func TestHealthcheckAndRouter(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck(fakePinger{})...))

	rec := serve(t, rt, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = serve(t, rt, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, rt, http.MethodGet, "/nao-existe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)

	unhealthy := router.New(router.WithRoutes(Healthcheck(fakePinger{err: errors.New("down")})...))
	rec = serve(t, unhealthy, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
