package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	// Erros de validação
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidID     = errors.New("invalid sale ID")
	ErrInvalidTarget = errors.New("invalid monthly target")

	// Erros de regra de negócio
	ErrDuplicateDate = errors.New("sale already registered for this date")
	ErrSaleNotFound  = errors.New("sale not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	SaleID  int64  // ID do registro envolvido (quando aplicável)
	Details string // Mensagem exibida ao usuário
}

// Error implementa a interface error
func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError cria um novo SaleError
func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewSaleErrorWithID cria um novo SaleError com o ID do registro
func NewSaleErrorWithID(err error, code string, saleID int64, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
