package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
)

func GetMonthlyTarget(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target, err := service.GetMonthlyTarget(r.Context())
		if err != nil {
			writeSaleError(w, r, err, "Erro ao buscar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, target)
	})
}

func SetMonthlyTarget(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.MonthlyTarget
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		target, err := service.SetMonthlyTarget(r.Context(), request.Meta)
		if err != nil {
			writeSaleError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, target)
	})
}
