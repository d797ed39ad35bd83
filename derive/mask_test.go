package derive

import (
	"math"
	"testing"

	"github.com/andareed/marketscope/dataset"
)

func maskFixture(t *testing.T) *dataset.Table {
	t.Helper()
	tab, err := dataset.New([]dataset.Column{
		{Name: "Symbol", Kind: dataset.Categorical, Strs: []string{"A", "B", "C"}},
		{Name: "City", Kind: dataset.Categorical, Strs: []string{"Austin", "Austin", "Reno"}},
		{Name: "Market Cap 2020", Kind: dataset.Numeric, Nums: []float64{50, 150, math.NaN()}},
		{Name: "Employees 2020", Kind: dataset.Numeric, Nums: []float64{10, 20, 30}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tab
}

func TestYearColumn(t *testing.T) {
	if got := YearColumn("Market Cap", 2021); got != "Market Cap 2021" {
		t.Errorf("YearColumn = %q", got)
	}
}

func TestMaskBelowBlanksOnlyRowsUnderBound(t *testing.T) {
	tab := maskFixture(t)
	maskCols := []string{"Symbol", "Market Cap 2020", "Employees 2020"}

	masked, err := MaskBelow(tab, "Market Cap 2020", 100, maskCols)
	if err != nil {
		t.Fatalf("MaskBelow: %v", err)
	}

	syms, _ := masked.Categorical("Symbol")
	if syms[0] != "" {
		t.Errorf("row under bound kept symbol %q", syms[0])
	}
	if syms[1] != "B" {
		t.Errorf("row over bound lost symbol: %q", syms[1])
	}

	caps, _ := masked.Numeric("Market Cap 2020")
	if !math.IsNaN(caps[0]) {
		t.Errorf("masked cap = %v, want NaN", caps[0])
	}
	if caps[1] != 150 {
		t.Errorf("unmasked cap = %v, want 150", caps[1])
	}

	emps, _ := masked.Numeric("Employees 2020")
	if !math.IsNaN(emps[0]) {
		t.Errorf("masked employees = %v, want NaN", emps[0])
	}
}

func TestMaskBelowKeepsRowCount(t *testing.T) {
	tab := maskFixture(t)
	masked, err := MaskBelow(tab, "Market Cap 2020", 100, []string{"Symbol"})
	if err != nil {
		t.Fatalf("MaskBelow: %v", err)
	}
	if masked.NumRows() != tab.NumRows() {
		t.Errorf("masked rows = %d, want %d", masked.NumRows(), tab.NumRows())
	}
}

func TestMaskBelowNaNMetricNeverMasks(t *testing.T) {
	tab := maskFixture(t)
	masked, err := MaskBelow(tab, "Market Cap 2020", 100, []string{"Symbol"})
	if err != nil {
		t.Fatalf("MaskBelow: %v", err)
	}
	syms, _ := masked.Categorical("Symbol")
	if syms[2] != "C" {
		t.Errorf("NaN-metric row was masked: %q", syms[2])
	}
}

func TestMaskBelowDoesNotMutateBase(t *testing.T) {
	tab := maskFixture(t)
	if _, err := MaskBelow(tab, "Market Cap 2020", 1000, []string{"Symbol", "Employees 2020"}); err != nil {
		t.Fatalf("MaskBelow: %v", err)
	}
	syms, _ := tab.Categorical("Symbol")
	if syms[0] != "A" || syms[1] != "B" {
		t.Errorf("base table mutated: %v", syms)
	}
}

func TestMaskBelowMissingColumns(t *testing.T) {
	tab := maskFixture(t)

	_, err := MaskBelow(tab, "Market Cap 1999", 100, []string{"Symbol"})
	if !dataset.IsMissingColumn(err) {
		t.Errorf("metric column: got %v, want MissingColumnError", err)
	}

	_, err = MaskBelow(tab, "Market Cap 2020", 100, []string{"Nope"})
	if !dataset.IsMissingColumn(err) {
		t.Errorf("mask column: got %v, want MissingColumnError", err)
	}
}
