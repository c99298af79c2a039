package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de vendas (1000-1999)
	ErrDuplicateDate  = "SALE_001" // Já existe registro para a data
	ErrSaleNotFound   = "SALE_002" // Registro não encontrado
	ErrInvalidTarget  = "SET_001"  // Meta mensal inválida
	ErrUnknownAccount = "SALE_003" // Conta inexistente no filtro

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrSchedulerBusy     = "SRV_003" // Job já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDuplicateDate:       http.StatusBadRequest,
	ErrSaleNotFound:        http.StatusNotFound,
	ErrInvalidTarget:       http.StatusBadRequest,
	ErrUnknownAccount:      http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrSchedulerBusy:       http.StatusConflict,
}

// APIError representa um erro de API padronizado.
// A mensagem vai na chave "error", que é a lida pelo painel.
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"error,omitempty"`   // Mensagem descritiva
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código, 500 quando desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
