// Package derive builds display-ready tables from the base dataset and the
// current session selections. Everything here is a pure function of its
// inputs: rebuilding on every event is always safe.
package derive

import (
	"fmt"
	"math"

	"github.com/andareed/marketscope/dataset"
)

// YearColumn names the per-year variant of a metric column, e.g.
// "Market Cap" + 2021 -> "Market Cap 2021".
func YearColumn(metric string, year int) string {
	return fmt.Sprintf("%s %d", metric, year)
}

// MaskBelow copies the table and blanks out the identifying and metric cells
// of every row whose metric is below lower. Rows are kept so row alignment
// survives for grouping; a NaN metric never masks.
func MaskBelow(t *dataset.Table, metricCol string, lower float64, maskCols []string) (*dataset.Table, error) {
	metric, err := t.Numeric(metricCol)
	if err != nil {
		return nil, err
	}
	for _, name := range maskCols {
		if !t.HasColumn(name) {
			return nil, &dataset.MissingColumnError{Column: name}
		}
	}

	cols := t.CloneColumns()
	byName := make(map[string]*dataset.Column, len(cols))
	for i := range cols {
		byName[cols[i].Name] = &cols[i]
	}

	for row, v := range metric {
		if math.IsNaN(v) || v >= lower {
			continue
		}
		for _, name := range maskCols {
			c := byName[name]
			if c.Kind == dataset.Numeric {
				c.Nums[row] = math.NaN()
			} else {
				c.Strs[row] = ""
			}
		}
	}

	return dataset.New(cols)
}
