package exporting

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Vendas"

	headerColor    = "FE2C55"
	headerFont     = "FFFFFF"
	currencyFormat = `"R$" #,##0.00`
	totalLabel     = "TOTAL"
)

type column struct {
	title  string
	amount func(sale *domain.Sale) decimal.Decimal
}

// columns monta as colunas de valores: uma por conta selecionada e o total
func columns(account domain.AccountKey) []column {
	result := make([]column, 0, len(domain.Accounts)+1)
	for _, acc := range domain.Accounts {
		if !account.IsAll() && acc.Key != account {
			continue
		}

		key := acc.Key
		result = append(result, column{
			title:  acc.Handle,
			amount: func(sale *domain.Sale) decimal.Decimal { return sale.Amount(key) },
		})
	}

	result = append(result, column{
		title:  "Total",
		amount: func(sale *domain.Sale) decimal.Decimal { return sale.TotalFor(account) },
	})

	return result
}

// buildWorkbook gera a planilha com cabeçalho, uma linha por dia e a linha de TOTAL
func buildWorkbook(sales []*domain.Sale, account domain.AccountKey) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao nomear a planilha")
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	cols := columns(account)
	lastCol, err := excelize.ColumnNumberToName(len(cols) + 1)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular colunas")
	}

	header := make([]any, 0, len(cols)+1)
	header = append(header, "Data")
	for _, col := range cols {
		header = append(header, col.title)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever cabeçalho")
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", styles.header); err != nil {
		return nil, errors.Wrap(err, "erro ao aplicar estilo do cabeçalho")
	}

	totals := make([]decimal.Decimal, len(cols))
	for i := range totals {
		totals[i] = decimal.Zero
	}

	row := 2
	for _, sale := range sales {
		values := make([]any, 0, len(cols)+1)
		values = append(values, utils.FormatBrazilianDate(sale.Date))
		for i, col := range cols {
			amount := col.amount(sale)
			totals[i] = totals[i].Add(amount)
			values = append(values, amount.InexactFloat64())
		}

		if err := writeRow(f, row, values); err != nil {
			return nil, err
		}
		row++
	}

	totalRow := make([]any, 0, len(cols)+1)
	totalRow = append(totalRow, totalLabel)
	for _, total := range totals {
		totalRow = append(totalRow, total.InexactFloat64())
	}
	if err := writeRow(f, row, totalRow); err != nil {
		return nil, err
	}

	if row > 2 {
		if err := f.SetCellStyle(SheetName, "B2", cell(lastCol, row-1), styles.currency); err != nil {
			return nil, errors.Wrap(err, "erro ao aplicar formato de moeda")
		}
	}
	if err := f.SetCellStyle(SheetName, cell("A", row), cell(lastCol, row), styles.total); err != nil {
		return nil, errors.Wrap(err, "erro ao aplicar estilo do total")
	}

	if err := f.SetColWidth(SheetName, "A", lastCol, 20); err != nil {
		return nil, errors.Wrap(err, "erro ao ajustar largura das colunas")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar arquivo xlsx")
	}

	return buffer.Bytes(), nil
}

type workbookStyles struct {
	header   int
	currency int
	total    int
}

func newStyles(f *excelize.File) (*workbookStyles, error) {
	format := currencyFormat

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFont},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo do cabeçalho")
	}

	currency, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo de moeda")
	}

	total, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &format,
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar estilo do total")
	}

	return &workbookStyles{header: header, currency: currency, total: total}, nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	if err := f.SetSheetRow(SheetName, cell("A", row), &values); err != nil {
		return errors.Wrapf(err, "erro ao escrever linha %d", row)
	}
	return nil
}

func cell(col string, row int) string {
	name, _ := excelize.JoinCellName(col, row)
	return name
}
