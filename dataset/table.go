// Package dataset holds the immutable base table every view is derived from.
// A table is loaded once at startup and never mutated afterwards; derived
// views copy what they need.
package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Kind classifies a column once at load time so the rest of the code can
// switch on it instead of re-inspecting cell values.
type Kind int

const (
	Categorical Kind = iota
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Column is a single named column. Exactly one of Strs or Nums is populated,
// matching Kind. NaN marks a missing numeric cell, "" a missing categorical
// one.
type Column struct {
	Name string
	Kind Kind
	Strs []string
	Nums []float64
}

func (c *Column) len() int {
	if c.Kind == Numeric {
		return len(c.Nums)
	}
	return len(c.Strs)
}

// Bounds returns the min and max over the non-missing numeric cells.
// Returns (0, 0) for a column with no usable values.
func (c *Column) Bounds() (min, max float64) {
	vals := c.present()
	if len(vals) == 0 {
		return 0, 0
	}
	s := stats.Sample{Xs: vals}
	return s.Bounds()
}

// Mean returns the mean over the non-missing numeric cells, or NaN if there
// are none.
func (c *Column) Mean() float64 {
	vals := c.present()
	if len(vals) == 0 {
		return math.NaN()
	}
	return stats.Mean(vals)
}

func (c *Column) present() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	vals := make([]float64, 0, len(c.Nums))
	for _, v := range c.Nums {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	return vals
}

// MissingColumnError is the one loud failure in this package: asking for a
// column the dataset does not have is a configuration error, not a data
// condition.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset: missing column %q", e.Column)
}

// IsMissingColumn reports whether err is (or wraps) a MissingColumnError.
func IsMissingColumn(err error) bool {
	var mc *MissingColumnError
	return errors.As(err, &mc)
}

// Table is the base dataset: a fixed set of columns of equal length.
type Table struct {
	cols  []Column
	byPos map[string]int
	rows  int
}

// New builds a table from columns, validating that lengths agree and names
// are unique.
func New(cols []Column) (*Table, error) {
	t := &Table{
		cols:  cols,
		byPos: make(map[string]int, len(cols)),
	}
	for i := range cols {
		c := &cols[i]
		if _, dup := t.byPos[c.Name]; dup {
			return nil, fmt.Errorf("dataset: duplicate column %q", c.Name)
		}
		t.byPos[c.Name] = i
		if i == 0 {
			t.rows = c.len()
		} else if c.len() != t.rows {
			return nil, fmt.Errorf("dataset: column %q has %d rows, want %d", c.Name, c.len(), t.rows)
		}
	}
	return t, nil
}

func (t *Table) NumRows() int { return t.rows }

func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i := range t.cols {
		names[i] = t.cols[i].Name
	}
	return names
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.byPos[name]
	return ok
}

// Column returns the named column. The returned column must be treated as
// read-only; derived views copy cells before modifying them.
func (t *Table) Column(name string) (*Column, error) {
	i, ok := t.byPos[name]
	if !ok {
		return nil, &MissingColumnError{Column: name}
	}
	return &t.cols[i], nil
}

// Numeric returns the cells of a numeric column.
func (t *Table) Numeric(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Numeric {
		return nil, fmt.Errorf("dataset: column %q is %s, want numeric", name, c.Kind)
	}
	return c.Nums, nil
}

// Categorical returns the cells of a categorical column.
func (t *Table) Categorical(name string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Categorical {
		return nil, fmt.Errorf("dataset: column %q is %s, want categorical", name, c.Kind)
	}
	return c.Strs, nil
}

// NumericColumns returns the names of all numeric columns in table order.
func (t *Table) NumericColumns() []string {
	var names []string
	for i := range t.cols {
		if t.cols[i].Kind == Numeric {
			names = append(names, t.cols[i].Name)
		}
	}
	return names
}

// CategoricalColumns returns the names of all categorical columns in table
// order.
func (t *Table) CategoricalColumns() []string {
	var names []string
	for i := range t.cols {
		if t.cols[i].Kind == Categorical {
			names = append(names, t.cols[i].Name)
		}
	}
	return names
}

// CloneColumns returns deep copies of all columns, for derived views that
// rewrite cells.
func (t *Table) CloneColumns() []Column {
	out := make([]Column, len(t.cols))
	for i := range t.cols {
		c := t.cols[i]
		if c.Kind == Numeric {
			c.Nums = append([]float64(nil), c.Nums...)
		} else {
			c.Strs = append([]string(nil), c.Strs...)
		}
		out[i] = c
	}
	return out
}
