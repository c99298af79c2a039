package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/selling"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeSaleError traduz erros do caso de uso de vendas para a resposta padronizada
func writeSaleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var saleErr *selling.SaleError
	if errors.As(err, &saleErr) {
		var details any
		if saleErr.SaleID != 0 {
			details = map[string]any{"id": saleErr.SaleID}
		}
		apiErrors.WriteError(w, saleErr.Code, saleErr.Details, details)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

// saleID lê o parâmetro :id da rota
func saleID(r *http.Request) (int64, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
