package exporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/tiktok-sales-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

var (
	ErrInvalidDate       = errors.New("invalid export date")
	ErrInvalidRange      = errors.New("start date after end date")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrBuildWorkbook     = errors.New("error building workbook")
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type Exporter interface {
	Export(ctx context.Context, filters domain.ExportFilters) (*domain.ExportFile, error)
}

type Service struct {
	saleRepository repository.SaleRepository
	location       *time.Location
	now            func() time.Time
	generateID     func() (string, error)
}

func NewService(saleRepository repository.SaleRepository, location *time.Location) Exporter {
	if location == nil {
		location = time.Local
	}

	return &Service{
		saleRepository: saleRepository,
		location:       location,
		now:            time.Now,
		generateID:     utils.GenerateID,
	}
}

func (s *Service) Export(ctx context.Context, filters domain.ExportFilters) (*domain.ExportFile, error) {
	if err := validateRange(filters.StartDate, filters.EndDate); err != nil {
		return nil, err
	}

	if filters.Account == "" {
		filters.Account = domain.AllAccounts
	}

	sales, err := s.saleRepository.ListByDateRange(ctx, filters.StartDate, filters.EndDate)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar vendas para exportação")
		return nil, ErrDatabaseOperation
	}

	content, err := buildWorkbook(sales, filters.Account)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar planilha")
		return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
	}

	name, err := s.fileName()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildWorkbook, err)
	}

	log.ForContext(ctx).Infof("Planilha %s gerada com %d registros", name, len(sales))

	return &domain.ExportFile{
		Name:        name,
		ContentType: domain.SpreadsheetContentType,
		Content:     content,
	}, nil
}

// fileName gera vendas-tiktok-<yyyymmdd>-<id>.xlsx
func (s *Service) fileName() (string, error) {
	id, err := s.generateID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("vendas-tiktok-%s-%s.xlsx", s.now().In(s.location).Format("20060102"), id), nil
}

func validateRange(startDate, endDate string) error {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, startDate)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, endDate)
	}

	if startDate != "" && endDate != "" && start.After(*end) {
		return ErrInvalidRange
	}

	return nil
}
