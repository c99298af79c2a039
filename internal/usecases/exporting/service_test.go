package exporting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tiktok-sales-api/infrastructure/repository/mocks"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	saleRepo := mocks.NewMockSaleRepository(ctrl)

	// 01h UTC do dia 16 ainda é dia 15 em BRT
	loc := time.FixedZone("BRT", -3*60*60)
	service := &Service{
		saleRepository: saleRepo,
		location:       loc,
		now:            func() time.Time { return time.Date(2024, 3, 16, 1, 0, 0, 0, time.UTC) },
		generateID:     func() (string, error) { return "AbC123", nil },
	}

	return service, saleRepo
}

func openWorkbook(t *testing.T, content []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}

func rawValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()

	value, err := f.GetCellValue(SheetName, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return value
}

func TestService_ExportAllAccounts(t *testing.T) {
	ctx := context.Background()
	service, saleRepo := newTestService(t)

	saleRepo.EXPECT().ListByDateRange(ctx, "2024-01-01", "2024-01-31").Return([]*domain.Sale{
		{Date: "2024-01-01", LolaModas: decimal.NewFromInt(100)},
		{Date: "2024-01-02", LalaDaroca: decimal.NewFromInt(200)},
	}, nil)

	file, err := service.Export(ctx, domain.ExportFilters{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
		Account:   domain.AllAccounts,
	})
	require.NoError(t, err)

	assert.Equal(t, "vendas-tiktok-20240315-AbC123.xlsx", file.Name)
	assert.Equal(t, domain.SpreadsheetContentType, file.ContentType)

	f := openWorkbook(t, file.Content)

	header, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, header, 4)
	assert.Equal(t, []string{
		"Data", "@lolamodas.ia", "@laladaroca", "@dudamodas05", "@judourado.shop", "@mariadourado.shop", "Total",
	}, header[0])

	assert.Equal(t, "01/01/2024", rawValue(t, f, "A2"))
	assert.Equal(t, "02/01/2024", rawValue(t, f, "A3"))
	assert.Equal(t, "100", rawValue(t, f, "G2"))
	assert.Equal(t, "200", rawValue(t, f, "G3"))

	assert.Equal(t, "TOTAL", rawValue(t, f, "A4"))
	assert.Equal(t, "100", rawValue(t, f, "B4"))
	assert.Equal(t, "200", rawValue(t, f, "C4"))
	assert.Equal(t, "0", rawValue(t, f, "D4"))
	assert.Equal(t, "300", rawValue(t, f, "G4"))

	headerStyleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)
	headerStyle, err := f.GetStyle(headerStyleID)
	require.NoError(t, err)
	require.NotNil(t, headerStyle.Font)
	assert.True(t, headerStyle.Font.Bold)

	totalStyleID, err := f.GetCellStyle(SheetName, "G4")
	require.NoError(t, err)
	totalStyle, err := f.GetStyle(totalStyleID)
	require.NoError(t, err)
	require.NotNil(t, totalStyle.Font)
	assert.True(t, totalStyle.Font.Bold)
}

func TestService_ExportSingleAccount(t *testing.T) {
	ctx := context.Background()
	service, saleRepo := newTestService(t)

	saleRepo.EXPECT().ListByDateRange(ctx, "", "").Return([]*domain.Sale{
		{Date: "2024-01-01", LolaModas: decimal.NewFromInt(100), LalaDaroca: decimal.RequireFromString("10.5")},
	}, nil)

	file, err := service.Export(ctx, domain.ExportFilters{Account: domain.AccountLalaDaroca})
	require.NoError(t, err)

	f := openWorkbook(t, file.Content)

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "@laladaroca", "Total"}, rows[0])

	assert.Equal(t, "10.5", rawValue(t, f, "B2"))
	assert.Equal(t, "10.5", rawValue(t, f, "C2"))
	assert.Equal(t, "10.5", rawValue(t, f, "C3"))
}

func TestService_ExportEmpty(t *testing.T) {
	ctx := context.Background()
	service, saleRepo := newTestService(t)

	saleRepo.EXPECT().ListByDateRange(ctx, "2030-01-01", "").Return([]*domain.Sale{}, nil)

	file, err := service.Export(ctx, domain.ExportFilters{StartDate: "2030-01-01"})
	require.NoError(t, err)

	f := openWorkbook(t, file.Content)
	assert.Equal(t, "TOTAL", rawValue(t, f, "A2"))
	assert.Equal(t, "0", rawValue(t, f, "G2"))
}

func TestService_ExportValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		filters  domain.ExportFilters
		expected error
	}{
		{name: "Data inicial inválida", filters: domain.ExportFilters{StartDate: "01/01/2024"}, expected: ErrInvalidDate},
		{name: "Data final inválida", filters: domain.ExportFilters{EndDate: "2024-13-01"}, expected: ErrInvalidDate},
		{name: "Intervalo invertido", filters: domain.ExportFilters{StartDate: "2024-02-01", EndDate: "2024-01-01"}, expected: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService(t)

			_, err := service.Export(ctx, tt.filters)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestService_ExportDatabaseError(t *testing.T) {
	ctx := context.Background()
	service, saleRepo := newTestService(t)

	saleRepo.EXPECT().ListByDateRange(ctx, "", "").Return(nil, errors.New("timeout"))

	_, err := service.Export(ctx, domain.ExportFilters{})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
