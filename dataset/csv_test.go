package dataset

import (
	"math"
	"strings"
	"testing"
)

const sampleCSV = `Symbol,Sector,Market Cap 2020,Employees 2020
AAPL,Technology,2.2e12,147000
XOM,Energy,1.8e11,72000
ACME,,5.0e9,
ZZZ,Energy,,120
`

func TestLoadClassifiesColumns(t *testing.T) {
	tab, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tab.NumRows(); got != 4 {
		t.Fatalf("NumRows = %d, want 4", got)
	}

	cases := map[string]Kind{
		"Symbol":          Categorical,
		"Sector":          Categorical,
		"Market Cap 2020": Numeric,
		"Employees 2020":  Numeric,
	}
	for name, want := range cases {
		col, err := tab.Column(name)
		if err != nil {
			t.Fatalf("Column(%q): %v", name, err)
		}
		if col.Kind != want {
			t.Errorf("column %q classified %s, want %s", name, col.Kind, want)
		}
	}
}

func TestLoadMissingCells(t *testing.T) {
	tab, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sectors, err := tab.Categorical("Sector")
	if err != nil {
		t.Fatalf("Categorical: %v", err)
	}
	if sectors[2] != "" {
		t.Errorf("missing categorical cell = %q, want empty", sectors[2])
	}

	emp, err := tab.Numeric("Employees 2020")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	if !math.IsNaN(emp[2]) {
		t.Errorf("missing numeric cell = %v, want NaN", emp[2])
	}

	caps, _ := tab.Numeric("Market Cap 2020")
	if !math.IsNaN(caps[3]) {
		t.Errorf("missing cap cell = %v, want NaN", caps[3])
	}
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	csv := "\uFEFFSymbol,Rank\nAAPL,1\n"
	tab, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !tab.HasColumn("Symbol") {
		t.Errorf("BOM not stripped from first header cell: %v", tab.ColumnNames())
	}
}

func TestLoadMixedColumnIsCategorical(t *testing.T) {
	// one non-parsing cell makes the whole column categorical
	csv := "Rank\n1\n2\nn/a\n"
	tab, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	col, err := tab.Column("Rank")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if col.Kind != Categorical {
		t.Errorf("mixed column classified %s, want categorical", col.Kind)
	}
}

func TestLoadAllEmptyColumnIsCategorical(t *testing.T) {
	csv := "A,B\n1,\n2,\n"
	tab, err := Load(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	col, _ := tab.Column("B")
	if col.Kind != Categorical {
		t.Errorf("empty column classified %s, want categorical", col.Kind)
	}
}

func TestLoadShortRowsPad(t *testing.T) {
	r := csvReaderAllowingShortRows("A,B\nx,1\ny\n")
	tab, err := Load(r)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	bs, err := tab.Numeric("B")
	if err != nil {
		t.Fatalf("Numeric: %v", err)
	}
	if !math.IsNaN(bs[1]) {
		t.Errorf("short row cell = %v, want NaN", bs[1])
	}
}

// encoding/csv rejects ragged rows by default, so pad the input instead; the
// loader's cellAt padding still covers rows that arrive short.
func csvReaderAllowingShortRows(s string) *strings.Reader {
	return strings.NewReader(strings.ReplaceAll(s, "\ny\n", "\ny,\n"))
}
