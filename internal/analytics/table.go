// Package analytics implementa o motor de agregação sobre o dataset de
// investimentos. Todas as funções são puras: recebem a tabela carregada e
// devolvem resultados novos, sem alterar a entrada.
package analytics

import (
	"sort"

	"github.com/vfg2006/funding-dashboard-api/internal/domain"
)

// Limites usados pelas visões do dashboard
const (
	TopStartupsLimit        = 5
	RecentInvestmentsLimit  = 5
	BiggestInvestmentsLimit = 5
	TopInvestorsLimit       = 10
)

// Table é um handle somente leitura para os registros carregados.
// Pode ser compartilhado entre requisições concorrentes.
type Table struct {
	records []domain.FundingRecord
}

// NewTable cria uma tabela a partir de uma cópia profunda dos registros
func NewTable(records []domain.FundingRecord) *Table {
	return &Table{records: cloneRecords(records)}
}

// Len retorna a quantidade de linhas da tabela
func (t *Table) Len() int {
	return len(t.rows())
}

// Records retorna uma cópia profunda das linhas na ordem original
func (t *Table) Records() []domain.FundingRecord {
	return cloneRecords(t.rows())
}

// Where retorna uma nova tabela apenas com as linhas que satisfazem o predicado
func (t *Table) Where(predicate func(domain.FundingRecord) bool) *Table {
	filtered := make([]domain.FundingRecord, 0)
	for _, r := range t.rows() {
		if predicate(r) {
			filtered = append(filtered, r)
		}
	}
	return &Table{records: filtered}
}

// Startups retorna os nomes distintos de startups em ordem alfabética.
// Nomes vazios ficam de fora, como em todas as contagens de startups.
func (t *Table) Startups() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, r := range t.rows() {
		if r.Startup == "" {
			continue
		}
		if _, ok := seen[r.Startup]; ok {
			continue
		}
		seen[r.Startup] = struct{}{}
		names = append(names, r.Startup)
	}
	sort.Strings(names)
	return names
}

// Investors retorna os investidores distintos, após separar a coluna de
// investidores por vírgula, em ordem alfabética
func (t *Table) Investors() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, r := range t.rows() {
		for _, investor := range ExplodeInvestors(r.Investors) {
			if _, ok := seen[investor]; ok {
				continue
			}
			seen[investor] = struct{}{}
			names = append(names, investor)
		}
	}
	sort.Strings(names)
	return names
}

// cloneRecords garante que nenhum resultado aponte para a memória da tabela
func cloneRecords(records []domain.FundingRecord) []domain.FundingRecord {
	cloned := make([]domain.FundingRecord, len(records))
	for i, r := range records {
		cloned[i] = r.Clone()
	}
	return cloned
}

func (t *Table) rows() []domain.FundingRecord {
	if t == nil {
		return nil
	}
	return t.records
}
