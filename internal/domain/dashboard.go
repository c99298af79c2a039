package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodAll     Period = "all"
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodCustom  Period = "custom"
)

var ErrUnknownPeriod = errors.New("período desconhecido")

func ParsePeriod(value string) (Period, error) {
	switch Period(value) {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodCustom:
		return Period(value), nil
	}
	return "", ErrUnknownPeriod
}

// DashboardFilters são os filtros escolhidos no painel
type DashboardFilters struct {
	Period    Period     `json:"period"`
	StartDate string     `json:"start_date,omitempty"` // Apenas para o período custom
	EndDate   string     `json:"end_date,omitempty"`
	Account   AccountKey `json:"account"`
}

type BestDay struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type BestAccount struct {
	Account AccountKey      `json:"account"`
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
}

type RankingItem struct {
	Position int             `json:"position"`
	Account  AccountKey      `json:"account"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
}

type MonthlyProgress struct {
	Current    decimal.Decimal `json:"current"`
	Target     decimal.Decimal `json:"target"`
	Percentage decimal.Decimal `json:"percentage"` // Limitado a 100, uma casa decimal
}

// FixedCards são calculados sobre todos os registros, sem filtros
type FixedCards struct {
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	LastSevenDays       decimal.Decimal `json:"last_seven_days"`
	CurrentMonthRevenue decimal.Decimal `json:"current_month_revenue"`
}

type ChartSeries struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

type DashboardCharts struct {
	Line     ChartSeries  `json:"line"`
	Accounts *ChartSeries `json:"accounts,omitempty"` // Pizza, somente com "Todas as Contas"
	Bar      ChartSeries  `json:"bar"`
}

type DashboardSummary struct {
	Filters         DashboardFilters               `json:"filters"`
	Empty           bool                           `json:"empty"`
	RecordCount     int                            `json:"record_count"`
	TotalRevenue    decimal.Decimal                `json:"total_revenue"`
	AverageDaily    decimal.Decimal                `json:"average_daily"`
	BestDay         BestDay                        `json:"best_day"`
	BestAccount     *BestAccount                   `json:"best_account,omitempty"`
	AccountTotals   map[AccountKey]decimal.Decimal `json:"account_totals"`
	Ranking         []RankingItem                  `json:"ranking,omitempty"`
	MonthlyProgress MonthlyProgress                `json:"monthly_progress"`
	FixedCards      FixedCards                     `json:"fixed_cards"`
	Charts          DashboardCharts                `json:"charts"`
	GeneratedAt     time.Time                      `json:"generated_at"`
}
