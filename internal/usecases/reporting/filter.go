package reporting

import (
	"time"

	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

const sevenDays = 7 * 24 * time.Hour

type predicate func(sale *domain.Sale) bool

// periodPredicate retorna o filtro de período relativo a now
func periodPredicate(filters domain.DashboardFilters, now time.Time) predicate {
	switch filters.Period {
	case domain.PeriodDaily:
		return isToday(now)
	case domain.PeriodWeekly:
		return isWithinLastSevenDays(now)
	case domain.PeriodMonthly:
		return isSinceStartOfMonth(now)
	case domain.PeriodCustom:
		// Sem as duas datas o período custom não filtra
		if filters.StartDate == "" || filters.EndDate == "" {
			return everything
		}
		return isBetween(filters.StartDate, filters.EndDate)
	}
	return everything
}

func everything(*domain.Sale) bool {
	return true
}

func isToday(now time.Time) predicate {
	today := now.Format(time.DateOnly)
	return func(sale *domain.Sale) bool {
		return sale.Date == today
	}
}

func isWithinLastSevenDays(now time.Time) predicate {
	limit := now.Add(-sevenDays)
	return func(sale *domain.Sale) bool {
		day, err := sale.Day(now.Location())
		if err != nil {
			return false
		}
		return !day.Before(limit)
	}
}

func isSinceStartOfMonth(now time.Time) predicate {
	start := utils.StartOfMonth(now)
	return func(sale *domain.Sale) bool {
		day, err := sale.Day(now.Location())
		if err != nil {
			return false
		}
		return !day.Before(start)
	}
}

func isCurrentMonth(now time.Time) predicate {
	return func(sale *domain.Sale) bool {
		day, err := sale.Day(now.Location())
		if err != nil {
			return false
		}
		return day.Year() == now.Year() && day.Month() == now.Month()
	}
}

// isBetween compara as datas como texto; yyyy-mm-dd preserva a ordem cronológica
func isBetween(startDate, endDate string) predicate {
	return func(sale *domain.Sale) bool {
		return sale.Date >= startDate && sale.Date <= endDate
	}
}

func filter(sales []*domain.Sale, keep predicate) []*domain.Sale {
	filtered := make([]*domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if keep(sale) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}
