package selling

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/repository"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks
type SalesService interface {
	ListSales(ctx context.Context) ([]*domain.Sale, error)
	CreateSale(ctx context.Context, request *domain.SaleRequest) (*domain.Sale, error)
	UpdateSale(ctx context.Context, id int64, request *domain.SaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
	GetMonthlyTarget(ctx context.Context) (*domain.MonthlyTarget, error)
	SetMonthlyTarget(ctx context.Context, target decimal.Decimal) (*domain.MonthlyTarget, error)
}

type Service struct {
	saleRepository     repository.SaleRepository
	settingsRepository repository.SettingsRepository
	cfg                *config.Config
}

func NewService(
	saleRepository repository.SaleRepository,
	settingsRepository repository.SettingsRepository,
	cfg *config.Config,
) SalesService {
	return &Service{
		saleRepository:     saleRepository,
		settingsRepository: settingsRepository,
		cfg:                cfg,
	}
}

func (s *Service) ListSales(ctx context.Context) ([]*domain.Sale, error) {
	sales, err := s.saleRepository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar vendas")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas")
	}

	return sales, nil
}

func (s *Service) CreateSale(ctx context.Context, request *domain.SaleRequest) (*domain.Sale, error) {
	if err := validateDate(request.Date); err != nil {
		return nil, err
	}

	sale, err := s.saleRepository.Create(ctx, request.ToSale(0))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDate) {
			return nil, NewSaleError(ErrDuplicateDate, apiErrors.ErrDuplicateDate, "Já existe um registro para esta data")
		}

		log.ForContext(ctx).WithError(err).Error("Erro ao criar venda")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar venda")
	}

	log.ForContext(ctx).Infof("Venda %d criada para %s", sale.ID, sale.Date)

	return sale, nil
}

func (s *Service) UpdateSale(ctx context.Context, id int64, request *domain.SaleRequest) (*domain.Sale, error) {
	if id <= 0 {
		return nil, NewSaleError(ErrInvalidID, apiErrors.ErrInvalidFormat, "ID inválido")
	}

	if err := validateDate(request.Date); err != nil {
		return nil, err
	}

	sale := request.ToSale(id)
	if err := s.saleRepository.Update(ctx, sale); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "Registro não encontrado")
		case errors.Is(err, repository.ErrDuplicateDate):
			return nil, NewSaleErrorWithID(ErrDuplicateDate, apiErrors.ErrDuplicateDate, id, "Já existe um registro para esta data")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao atualizar venda %d", id)
		return nil, NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao atualizar venda")
	}

	return sale, nil
}

func (s *Service) DeleteSale(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewSaleError(ErrInvalidID, apiErrors.ErrInvalidFormat, "ID inválido")
	}

	if err := s.saleRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewSaleErrorWithID(ErrSaleNotFound, apiErrors.ErrSaleNotFound, id, "Registro não encontrado")
		}

		log.ForContext(ctx).WithError(err).Errorf("Erro ao excluir venda %d", id)
		return NewSaleErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Erro ao excluir venda")
	}

	log.ForContext(ctx).Infof("Venda %d excluída", id)

	return nil
}

// GetMonthlyTarget lê a meta salva; sem registro, usa a meta padrão da configuração
func (s *Service) GetMonthlyTarget(ctx context.Context) (*domain.MonthlyTarget, error) {
	value, found, err := s.settingsRepository.Get(ctx, domain.MonthlyTargetKey)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao buscar meta mensal")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta")
	}

	if !found {
		return &domain.MonthlyTarget{Meta: s.cfg.Settings.DefaultMonthlyTarget}, nil
	}

	meta, err := decimal.NewFromString(value)
	if err != nil {
		log.ForContext(ctx).Warnf("Meta mensal salva é inválida (%q), usando a meta padrão", value)
		return &domain.MonthlyTarget{Meta: s.cfg.Settings.DefaultMonthlyTarget}, nil
	}

	return &domain.MonthlyTarget{Meta: meta}, nil
}

func (s *Service) SetMonthlyTarget(ctx context.Context, target decimal.Decimal) (*domain.MonthlyTarget, error) {
	if !target.IsPositive() {
		return nil, NewSaleError(ErrInvalidTarget, apiErrors.ErrInvalidTarget, "A meta deve ser maior que zero")
	}

	if err := s.settingsRepository.Set(ctx, domain.MonthlyTargetKey, target.String()); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao salvar meta mensal")
		return nil, NewSaleError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao salvar meta")
	}

	log.ForContext(ctx).Infof("Meta mensal atualizada para %s", utils.FormatBRL(target))

	return &domain.MonthlyTarget{Meta: target}, nil
}

func validateDate(date string) error {
	if date == "" {
		return NewSaleError(ErrInvalidDate, apiErrors.ErrMissingRequiredData, "Data é obrigatória")
	}

	if _, err := utils.ParseDate(date); err != nil {
		return NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, fmt.Sprintf("Data inválida: %s (use yyyy-mm-dd)", date))
	}

	return nil
}
