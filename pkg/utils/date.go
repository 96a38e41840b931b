package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos na leitura de datas, na ordem em que são tentados.
// Datas ambíguas com barra são lidas como mês/dia.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02.01.2006",
	"2006-01",
	"Jan 2, 2006",
	"January 2, 2006",
	"02-Jan-2006",
	"2 Jan 2006",
}

// ParseLenientDate tenta interpretar a data em vários formatos comuns.
// Retorna erro quando nenhum formato é aceito ou o valor está vazio.
func ParseLenientDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("data vazia")
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("formato de data não reconhecido: %q", value)
}
