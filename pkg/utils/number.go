package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var brazilianPrinter = message.NewPrinter(language.BrazilianPortuguese)

func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatBRL formata o valor como moeda brasileira, ex.: R$ 1.234,50
func FormatBRL(d decimal.Decimal) string {
	value, _ := d.Round(2).Float64()
	return brazilianPrinter.Sprintf("R$ %v", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
