package simulation

import (
	"fmt"

	"smithwagnercv/domain/core"
	"smithwagnercv/domain/learning"
)

// ResultTable holds the statistics of every trial of one (class size, mu) cell.
// Row order carries no meaning.
type ResultTable struct {
	ClassSize  int
	Mu         float64
	NumOptions int
	Rows       []learning.TrialStatistics
}

// NewResultTable wraps trial rows with the parameters that produced them
func NewResultTable(classSize int, mu float64, numOptions int, rows []learning.TrialStatistics) *ResultTable {
	return &ResultTable{
		ClassSize:  classSize,
		Mu:         mu,
		NumOptions: numOptions,
		Rows:       rows,
	}
}

// Len returns the number of trials in the table
func (t *ResultTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column extracts one column in row order
func (t *ResultTable) Column(name learning.StatisticName) ([]float64, error) {
	if t.Len() == 0 {
		return nil, core.ErrEmptyTable
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := row.Value(name)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}
