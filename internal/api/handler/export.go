package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/tiktok-sales-api/internal/domain"
	"github.com/vfg2006/tiktok-sales-api/internal/usecases/exporting"
	"github.com/vfg2006/tiktok-sales-api/pkg/apiErrors"
	"github.com/vfg2006/tiktok-sales-api/pkg/log"
)

// ExportSales devolve a planilha xlsx dos registros entre startDate e endDate
func ExportSales(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		account, err := domain.ParseAccount(query.Get("account"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownAccount, "Conta inválida: "+query.Get("account"), nil)
			return
		}

		file, err := service.Export(r.Context(), domain.ExportFilters{
			StartDate: query.Get("startDate"),
			EndDate:   query.Get("endDate"),
			Account:   account,
		})
		if err != nil {
			switch {
			case errors.Is(err, exporting.ErrInvalidDate):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida (use yyyy-mm-dd)", nil)
			case errors.Is(err, exporting.ErrInvalidRange):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data inicial deve ser anterior à data final", nil)
			case errors.Is(err, exporting.ErrDatabaseOperation):
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao exportar vendas")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
			}
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(file.Content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar planilha")
		}
	})
}
