package handler

import (
	"net/http"

	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
)

func ListSales(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListSales(r.Context())
		if err != nil {
			writeSaleError(w, r, err, "Erro ao buscar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	})
}

func CreateSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		sale, err := service.CreateSale(r.Context(), &request)
		if err != nil {
			writeSaleError(w, r, err, "Erro ao criar venda")
			return
		}

		writeJSON(w, r, http.StatusCreated, sale)
	})
}

// UpdateSale substitui todos os valores do registro informado na rota
func UpdateSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
			return
		}

		var request domain.SaleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		sale, err := service.UpdateSale(r.Context(), id, &request)
		if err != nil {
			writeSaleError(w, r, err, "Erro ao atualizar venda")
			return
		}

		writeJSON(w, r, http.StatusOK, sale)
	})
}

func DeleteSale(service selling.SalesService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := saleID(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
			return
		}

		if err := service.DeleteSale(r.Context(), id); err != nil {
			writeSaleError(w, r, err, "Erro ao excluir venda")
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"message": "Registro excluído com sucesso",
			"id":      id,
		})
	})
}
