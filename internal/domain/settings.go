package domain

import "github.com/shopspring/decimal"

const MonthlyTargetKey = "monthly_meta"

// MonthlyTarget é a meta de faturamento do mês corrente
type MonthlyTarget struct {
	Meta decimal.Decimal `json:"meta"`
}
