package dataset

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingHeader    = errors.New("dataset sem cabeçalho")
	ErrMissingColumns   = errors.New("colunas obrigatórias ausentes")
	ErrDatasetNotLoaded = errors.New("dataset ainda não carregado")
)

// ParseError descreve um campo que não pôde ser interpretado e foi tratado como nulo
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("linha %d, coluna %s: valor %q inválido: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
