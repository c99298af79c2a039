package utils

import (
	"time"
)

const BrazilianDateLayout = "02/01/2006"

// ParseDate valida uma data yyyy-mm-dd. Vazio retorna a data zero sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatBrazilianDate converte yyyy-mm-dd em dd/mm/yyyy; devolve a entrada se não for uma data
func FormatBrazilianDate(dateStr string) string {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return dateStr
	}
	return date.Format(BrazilianDateLayout)
}

// StartOfMonth retorna o primeiro dia do mês de t, à meia-noite no mesmo fuso
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
