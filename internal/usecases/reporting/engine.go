package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

// Summarize calcula o painel a partir dos registros na ordem recebida.
// O desempate de melhor dia fica com o primeiro registro encontrado.
func Summarize(sales []*domain.Sale, filters domain.DashboardFilters, target decimal.Decimal, now time.Time) *domain.DashboardSummary {
	filtered := filter(sales, periodPredicate(filters, now))

	summary := &domain.DashboardSummary{
		Filters:       filters,
		Empty:         len(filtered) == 0,
		RecordCount:   len(filtered),
		TotalRevenue:  decimal.Zero,
		AverageDaily:  decimal.Zero,
		AccountTotals: accountTotals(filtered, filters.Account),
		GeneratedAt:   now,
	}

	for _, sale := range filtered {
		summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalFor(filters.Account))
	}

	if !summary.Empty {
		summary.AverageDaily = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(filtered)))))
	}

	summary.BestDay = bestDay(filtered, filters.Account)

	if filters.Account.IsAll() {
		best := bestAccount(summary.AccountTotals)
		summary.BestAccount = &best
		summary.Ranking = ranking(summary.AccountTotals)
	}

	summary.MonthlyProgress = monthlyProgress(sales, target, now)
	summary.FixedCards = fixedCards(sales, now)
	summary.Charts = charts(filtered, summary.AccountTotals, filters.Account)

	return summary
}

func sum(sales []*domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.Total())
	}
	return total
}

// accountTotals soma por conta. Com uma conta selecionada, as demais ficam zeradas.
func accountTotals(sales []*domain.Sale, account domain.AccountKey) map[domain.AccountKey]decimal.Decimal {
	totals := make(map[domain.AccountKey]decimal.Decimal, len(domain.Accounts))
	for _, key := range domain.AccountKeys() {
		totals[key] = decimal.Zero
	}

	for _, sale := range sales {
		for _, key := range domain.AccountKeys() {
			if !account.IsAll() && key != account {
				continue
			}
			totals[key] = totals[key].Add(sale.Amount(key))
		}
	}

	return totals
}

// bestDay parte de valor zero, então dias com total <= 0 nunca vencem
func bestDay(sales []*domain.Sale, account domain.AccountKey) domain.BestDay {
	best := domain.BestDay{Value: decimal.Zero}
	for _, sale := range sales {
		total := sale.TotalFor(account)
		if total.GreaterThan(best.Value) {
			best = domain.BestDay{Date: sale.Date, Value: total}
		}
	}
	return best
}

func bestAccount(totals map[domain.AccountKey]decimal.Decimal) domain.BestAccount {
	best := domain.BestAccount{Value: decimal.Zero}
	for _, account := range domain.Accounts {
		if totals[account.Key].GreaterThan(best.Value) {
			best = domain.BestAccount{
				Account: account.Key,
				Name:    account.Handle,
				Value:   totals[account.Key],
			}
		}
	}
	return best
}

func ranking(totals map[domain.AccountKey]decimal.Decimal) []domain.RankingItem {
	items := make([]domain.RankingItem, 0, len(domain.Accounts))
	for _, account := range domain.Accounts {
		items = append(items, domain.RankingItem{
			Account: account.Key,
			Name:    account.Handle,
			Value:   totals[account.Key],
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value.GreaterThan(items[j].Value)
	})

	for i := range items {
		items[i].Position = i + 1
	}

	return items
}

// monthlyProgress usa todos os registros, ignorando os filtros do painel
func monthlyProgress(sales []*domain.Sale, target decimal.Decimal, now time.Time) domain.MonthlyProgress {
	current := sum(filter(sales, isCurrentMonth(now)))

	progress := domain.MonthlyProgress{
		Current:    current,
		Target:     target,
		Percentage: decimal.Zero,
	}

	if !target.IsPositive() {
		return progress
	}

	percentage := current.Div(target).Mul(hundred)
	if percentage.GreaterThan(hundred) {
		percentage = hundred
	}
	progress.Percentage = percentage.Round(1)

	return progress
}

func fixedCards(sales []*domain.Sale, now time.Time) domain.FixedCards {
	return domain.FixedCards{
		TotalRevenue:        sum(sales),
		LastSevenDays:       sum(filter(sales, isWithinLastSevenDays(now))),
		CurrentMonthRevenue: sum(filter(sales, isCurrentMonth(now))),
	}
}

func charts(sales []*domain.Sale, totals map[domain.AccountKey]decimal.Decimal, account domain.AccountKey) domain.DashboardCharts {
	chronological := make([]*domain.Sale, len(sales))
	copy(chronological, sales)
	sort.SliceStable(chronological, func(i, j int) bool {
		return chronological[i].Date < chronological[j].Date
	})

	line := domain.ChartSeries{
		Labels: make([]string, 0, len(chronological)),
		Values: make([]decimal.Decimal, 0, len(chronological)),
	}
	for _, sale := range chronological {
		line.Labels = append(line.Labels, utils.FormatBrazilianDate(sale.Date))
		line.Values = append(line.Values, sale.TotalFor(account))
	}

	result := domain.DashboardCharts{
		Line: line,
		Bar:  line,
	}

	if account.IsAll() {
		accounts := domain.ChartSeries{
			Labels: make([]string, 0, len(domain.Accounts)),
			Values: make([]decimal.Decimal, 0, len(domain.Accounts)),
		}
		for _, acc := range domain.Accounts {
			accounts.Labels = append(accounts.Labels, acc.Handle)
			accounts.Values = append(accounts.Values, totals[acc.Key])
		}
		result.Accounts = &accounts
		result.Bar = accounts
	}

	return result
}
