package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/reporting"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-sales-api/pkg/utils"
)

// GetDashboard calcula o painel para os filtros period, startDate, endDate e account
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		period, err := domain.ParsePeriod(query.Get("period"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Período inválido. Valores aceitos: all, daily, weekly, monthly, custom", nil)
			return
		}

		account, err := domain.ParseAccount(query.Get("account"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownAccount, "Conta inválida: "+query.Get("account"), nil)
			return
		}

		filters := domain.DashboardFilters{Period: period, Account: account}
		if period == domain.PeriodCustom {
			filters.StartDate = query.Get("startDate")
			filters.EndDate = query.Get("endDate")

			for _, date := range []string{filters.StartDate, filters.EndDate} {
				if _, err := utils.ParseDate(date); err != nil {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida: "+date+" (use yyyy-mm-dd)", nil)
					return
				}
			}
		}

		summary, err := service.Dashboard(r.Context(), filters)
		if err != nil {
			writeSaleError(w, r, err, "Erro ao calcular o painel")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// ListAccounts retorna a tabela de contas na ordem usada pelo painel
func ListAccounts() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, domain.Accounts)
	})
}
