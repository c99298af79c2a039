package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/database"
	"github.com/vfg2006/tiktok-sales-api/internal/config"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
)

func newTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	cfg := config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "vendas.db"),
	}
	require.NoError(t, database.RunMigrations(cfg))

	conn, err := database.NewConnection(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func newSale(date string, lola, lala, duda, ju, maria int64) *domain.Sale {
	return &domain.Sale{
		Date:         date,
		LolaModas:    decimal.NewFromInt(lola),
		LalaDaroca:   decimal.NewFromInt(lala),
		DudaModas:    decimal.NewFromInt(duda),
		JuDourado:    decimal.NewFromInt(ju),
		MariaDourado: decimal.NewFromInt(maria),
	}
}

func TestSaleRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestConnection(t))

	first, err := repo.Create(ctx, newSale("2024-01-01", 10, 20, 30, 40, 0))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := repo.Create(ctx, &domain.Sale{
		Date:      "2024-01-02",
		LolaModas: decimal.RequireFromString("150.75"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	// Mais recente primeiro
	assert.Equal(t, "2024-01-02", sales[0].Date)
	assert.Equal(t, "2024-01-01", sales[1].Date)
	assert.True(t, sales[0].LolaModas.Equal(decimal.RequireFromString("150.75")))
	assert.True(t, sales[1].Total().Equal(decimal.NewFromInt(100)))
}

func TestSaleRepository_CreateDuplicateDate(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestConnection(t))

	_, err := repo.Create(ctx, newSale("2024-01-01", 100, 0, 0, 0, 0))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newSale("2024-01-01", 999, 0, 0, 0, 0))
	assert.ErrorIs(t, err, ErrDuplicateDate)

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].LolaModas.Equal(decimal.NewFromInt(100)))
}

func TestSaleRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestConnection(t))

	a, err := repo.Create(ctx, newSale("2024-01-01", 1, 1, 1, 1, 1))
	require.NoError(t, err)
	b, err := repo.Create(ctx, newSale("2024-01-02", 2, 2, 2, 2, 2))
	require.NoError(t, err)

	t.Run("mesma data do próprio registro", func(t *testing.T) {
		updated := newSale("2024-01-01", 50, 0, 0, 0, 0)
		updated.ID = a.ID
		assert.NoError(t, repo.Update(ctx, updated))
	})

	t.Run("data de outro registro", func(t *testing.T) {
		updated := newSale("2024-01-02", 0, 0, 0, 0, 0)
		updated.ID = a.ID
		assert.ErrorIs(t, repo.Update(ctx, updated), ErrDuplicateDate)
	})

	t.Run("id inexistente", func(t *testing.T) {
		updated := newSale("2024-02-01", 0, 0, 0, 0, 0)
		updated.ID = b.ID + 100
		assert.ErrorIs(t, repo.Update(ctx, updated), ErrNotFound)
	})

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, a.ID, sales[1].ID)
	assert.True(t, sales[1].Total().Equal(decimal.NewFromInt(50)))
}

func TestSaleRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestConnection(t))

	sale, err := repo.Create(ctx, newSale("2024-01-01", 1, 0, 0, 0, 0))
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, sale.ID))
	assert.ErrorIs(t, repo.Delete(ctx, sale.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 4242), ErrNotFound)
}

func TestSaleRepository_ListByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleRepository(newTestConnection(t))

	for _, date := range []string{"2024-01-03", "2024-01-01", "2024-01-02", "2024-02-10"} {
		_, err := repo.Create(ctx, newSale(date, 1, 0, 0, 0, 0))
		require.NoError(t, err)
	}

	tests := []struct {
		name      string
		startDate string
		endDate   string
		expected  []string
	}{
		{
			name:     "sem limites",
			expected: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-02-10"},
		},
		{
			name:      "intervalo fechado e inclusivo",
			startDate: "2024-01-02",
			endDate:   "2024-01-03",
			expected:  []string{"2024-01-02", "2024-01-03"},
		},
		{
			name:      "apenas data inicial",
			startDate: "2024-01-03",
			expected:  []string{"2024-01-03", "2024-02-10"},
		},
		{
			name:     "apenas data final",
			endDate:  "2024-01-01",
			expected: []string{"2024-01-01"},
		},
		{
			name:      "intervalo vazio",
			startDate: "2025-01-01",
			endDate:   "2025-01-31",
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales, err := repo.ListByDateRange(ctx, tt.startDate, tt.endDate)
			require.NoError(t, err)

			dates := make([]string, 0, len(sales))
			for _, sale := range sales {
				dates = append(dates, sale.Date)
			}
			assert.Equal(t, tt.expected, dates)
		})
	}
}
