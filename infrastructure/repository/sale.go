// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/database"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
)

const (
	salesTable = "sales"
)

var saleColumns = []string{
	"s.id",
	"CAST(s.date AS TEXT)",
	"s.lola_modas",
	"s.lala_daroca",
	"s.duda_modas",
	"s.ju_dourado",
	"s.maria_dourado",
}

//go:generate mockgen -source=sale.go -destination=mocks/sale_mock.go -package=mocks
type SaleRepository interface {
	List(ctx context.Context) ([]*domain.Sale, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) error
	Delete(ctx context.Context, id int64) error
}

type saleRepository struct {
	conn database.Conn
}

func NewSaleRepository(conn database.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// List retorna todos os registros, do mais recente para o mais antigo
func (r *saleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	query, args, err := r.conn.Builder().
		Select(saleColumns...).
		From(salesTable + " s").
		OrderBy("s.date DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.query(ctx, query, args...)
}

// ListByDateRange retorna os registros entre as datas (inclusive), em ordem crescente.
// Datas vazias não limitam o intervalo.
func (r *saleRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]*domain.Sale, error) {
	builder := r.conn.Builder().
		Select(saleColumns...).
		From(salesTable + " s").
		OrderBy("s.date ASC", "s.id ASC")

	if startDate != "" {
		builder = builder.Where(squirrel.GtOrEq{"s.date": startDate})
	}
	if endDate != "" {
		builder = builder.Where(squirrel.LtOrEq{"s.date": endDate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.query(ctx, query, args...)
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query, args, err := r.conn.Builder().
		Insert(salesTable).
		Columns("date", "lola_modas", "lala_daroca", "duda_modas", "ju_dourado", "maria_dourado").
		Values(sale.Date, sale.LolaModas, sale.LalaDaroca, sale.DudaModas, sale.JuDourado, sale.MariaDourado).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	created := *sale
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&created.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, errors.Wrap(err, "erro ao inserir venda")
	}

	return &created, nil
}

// Update substitui todos os campos do registro com o ID informado
func (r *saleRepository) Update(ctx context.Context, sale *domain.Sale) error {
	query, args, err := r.conn.Builder().
		Update(salesTable).
		Set("date", sale.Date).
		Set("lola_modas", sale.LolaModas).
		Set("lala_daroca", sale.LalaDaroca).
		Set("duda_modas", sale.DudaModas).
		Set("ju_dourado", sale.JuDourado).
		Set("maria_dourado", sale.MariaDourado).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": sale.ID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicateDate
		}
		return errors.Wrapf(err, "erro ao atualizar venda %d", sale.ID)
	}

	return checkAffected(result)
}

func (r *saleRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.conn.Builder().
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao excluir venda %d", id)
	}

	return checkAffected(result)
}

func (r *saleRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Sale, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear venda")
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return sales, nil
}

func (r *saleRepository) scanSale(rows *sql.Rows) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := rows.Scan(
		&sale.ID,
		&sale.Date,
		&sale.LolaModas,
		&sale.LalaDaroca,
		&sale.DudaModas,
		&sale.JuDourado,
		&sale.MariaDourado,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao obter número de linhas afetadas")
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
