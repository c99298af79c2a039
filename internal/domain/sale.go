package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale é o faturamento de um dia, com um valor por conta. Existe no máximo uma por data.
type Sale struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"` // Formato yyyy-mm-dd
	LolaModas    decimal.Decimal `json:"lola_modas"`
	LalaDaroca   decimal.Decimal `json:"lala_daroca"`
	DudaModas    decimal.Decimal `json:"duda_modas"`
	JuDourado    decimal.Decimal `json:"ju_dourado"`
	MariaDourado decimal.Decimal `json:"maria_dourado"`
}

// SaleRequest é o corpo aceito na criação e na atualização (substituição completa)
type SaleRequest struct {
	Date         string          `json:"date"`
	LolaModas    decimal.Decimal `json:"lola_modas"`
	LalaDaroca   decimal.Decimal `json:"lala_daroca"`
	DudaModas    decimal.Decimal `json:"duda_modas"`
	JuDourado    decimal.Decimal `json:"ju_dourado"`
	MariaDourado decimal.Decimal `json:"maria_dourado"`
}

func (r *SaleRequest) ToSale(id int64) *Sale {
	return &Sale{
		ID:           id,
		Date:         r.Date,
		LolaModas:    r.LolaModas,
		LalaDaroca:   r.LalaDaroca,
		DudaModas:    r.DudaModas,
		JuDourado:    r.JuDourado,
		MariaDourado: r.MariaDourado,
	}
}

// Amount retorna o valor de uma conta específica
func (s *Sale) Amount(key AccountKey) decimal.Decimal {
	switch key {
	case AccountLolaModas:
		return s.LolaModas
	case AccountLalaDaroca:
		return s.LalaDaroca
	case AccountDudaModas:
		return s.DudaModas
	case AccountJuDourado:
		return s.JuDourado
	case AccountMariaDourado:
		return s.MariaDourado
	}
	return decimal.Zero
}

// Total soma as cinco contas
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, key := range AccountKeys() {
		total = total.Add(s.Amount(key))
	}
	return total
}

// TotalFor retorna o total do dia considerando o filtro de conta
func (s *Sale) TotalFor(account AccountKey) decimal.Decimal {
	if account.IsAll() {
		return s.Total()
	}
	return s.Amount(account)
}

// Day interpreta a data do registro como meia-noite no fuso informado
func (s *Sale) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s.Date, loc)
}
