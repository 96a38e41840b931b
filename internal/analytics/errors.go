package analytics

import (
	"errors"
	"fmt"
)

// Entidades que podem não ser encontradas no dataset
const (
	EntityStartup  = "startup"
	EntityInvestor = "investor"
)

// ErrUnknownMetric indica uma métrica mês a mês diferente de Total ou Count
var ErrUnknownMetric = errors.New("unknown month over month metric")

// NotFoundError sinaliza que nenhuma linha corresponde ao filtro pedido.
// A camada de apresentação deve exibir um estado vazio, não uma falha.
type NotFoundError struct {
	Entity string
	Name   string
}

// Error implementa a interface error
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Entity, e.Name)
}

// IsNotFound verifica se o erro (ou algum erro encadeado) é um NotFoundError
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
