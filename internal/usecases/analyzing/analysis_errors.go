package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos das análises do dataset
var (
	ErrStartupNotFound     = errors.New("startup não encontrada")
	ErrInvestorNotFound    = errors.New("investidor não encontrado")
	ErrDatasetUnavailable  = errors.New("dataset indisponível")
	ErrInvalidMetric       = errors.New("métrica inválida")
	ErrAnalysisUnavailable = errors.New("erro ao calcular análise")
)

// AnalysisError é um erro com contexto adicional para as análises
type AnalysisError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsNotFoundError verifica se o erro indica um filtro sem linhas correspondentes
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrStartupNotFound) || errors.Is(err, ErrInvestorNotFound)
}
