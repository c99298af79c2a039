package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
	"github.com/vfg2006/tiktok-sales-api/pkg/metrics"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Reporter interface {
	Dashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardSummary, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	salesService   selling.SalesService
	location       *time.Location
	now            func() time.Time
}

func NewService(
	saleRepository repository.SaleRepository,
	salesService selling.SalesService,
	location *time.Location,
) Reporter {
	if location == nil {
		location = time.Local
	}

	return &Service{
		saleRepository: saleRepository,
		salesService:   salesService,
		location:       location,
		now:            time.Now,
	}
}

// Dashboard busca todos os registros a cada chamada; nada é mantido em cache
func (s *Service) Dashboard(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardSummary, error) {
	sales, err := s.saleRepository.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas para o painel")
	}

	target, err := s.salesService.GetMonthlyTarget(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)
	summary := Summarize(sales, filters, target.Meta, now)

	percentage, _ := summary.MonthlyProgress.Percentage.Float64()
	metrics.MonthlyProgressPercentage.Set(percentage)

	log.ForContext(ctx).Debugf("Painel calculado com %d de %d registros (período %s, conta %s)",
		summary.RecordCount, len(sales), filters.Period, filters.Account)

	return summary, nil
}
