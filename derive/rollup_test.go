package derive

import (
	"math"
	"testing"

	"github.com/andareed/marketscope/dataset"
)

func rollupFixture(t *testing.T) *dataset.Table {
	t.Helper()
	tab, err := dataset.New([]dataset.Column{
		{Name: "Symbol", Kind: dataset.Categorical, Strs: []string{"A", "B", "C", "D"}},
		{Name: "City", Kind: dataset.Categorical, Strs: []string{"Austin", "Reno", "Austin", "Reno"}},
		{Name: "Market Cap 2020", Kind: dataset.Numeric, Nums: []float64{50, 150, 30, math.NaN()}},
		{Name: "Employees 2020", Kind: dataset.Numeric, Nums: []float64{10, 20, 30, 40}},
		{Name: "x", Kind: dataset.Numeric, Nums: []float64{1, 5, 3, 7}},
		{Name: "y", Kind: dataset.Numeric, Nums: []float64{2, 6, 4, 8}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tab
}

func TestCityRollupAggregates(t *testing.T) {
	groups, err := CityRollup(rollupFixture(t), 2020)
	if err != nil {
		t.Fatalf("CityRollup: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// first-appearance order
	if groups[0].City != "Austin" || groups[1].City != "Reno" {
		t.Fatalf("group order = %q, %q", groups[0].City, groups[1].City)
	}

	austin := groups[0]
	if austin.MarketCap != 80 {
		t.Errorf("Austin cap = %v, want 80", austin.MarketCap)
	}
	if austin.Employees != 40 {
		t.Errorf("Austin employees = %v, want 40", austin.Employees)
	}
	if austin.Companies != 2 {
		t.Errorf("Austin companies = %d, want 2", austin.Companies)
	}
	if austin.X != 2 || austin.Y != 3 {
		t.Errorf("Austin coords = (%v, %v), want (2, 3)", austin.X, austin.Y)
	}

	// NaN cap contributes nothing but the row still counts as a company
	reno := groups[1]
	if reno.MarketCap != 150 {
		t.Errorf("Reno cap = %v, want 150", reno.MarketCap)
	}
	if reno.Companies != 2 {
		t.Errorf("Reno companies = %d, want 2", reno.Companies)
	}
}

func TestCityRollupExcludesMaskedCompanies(t *testing.T) {
	tab := rollupFixture(t)
	maskCols := []string{"Symbol", "Market Cap 2020", "Employees 2020"}
	masked, err := MaskBelow(tab, "Market Cap 2020", 100, maskCols)
	if err != nil {
		t.Fatalf("MaskBelow: %v", err)
	}

	groups, err := CityRollup(masked, 2020)
	if err != nil {
		t.Fatalf("CityRollup: %v", err)
	}

	// Austin's two companies (caps 50 and 30) are both under the bound:
	// the city survives as a group but contributes nothing.
	austin := groups[0]
	if austin.Companies != 0 {
		t.Errorf("masked Austin companies = %d, want 0", austin.Companies)
	}
	if austin.MarketCap != 0 {
		t.Errorf("masked Austin cap = %v, want 0", austin.MarketCap)
	}
}

func TestCircleSizeLogScale(t *testing.T) {
	if got := circleSize(math.E); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("circleSize(e) = %v, want 3.5", got)
	}
	if got := circleSize(0); got != 0 {
		t.Errorf("circleSize(0) = %v, want 0", got)
	}
	if got := circleSize(math.NaN()); got != 0 {
		t.Errorf("circleSize(NaN) = %v, want 0", got)
	}
}

func TestCityCompanies(t *testing.T) {
	comps, err := CityCompanies(rollupFixture(t), "Austin", 2020)
	if err != nil {
		t.Fatalf("CityCompanies: %v", err)
	}
	if len(comps) != 2 {
		t.Fatalf("got %d companies, want 2", len(comps))
	}
	if comps[0].Symbol != "A" || comps[1].Symbol != "C" {
		t.Errorf("symbols = %q, %q; want A, C", comps[0].Symbol, comps[1].Symbol)
	}

	none, err := CityCompanies(rollupFixture(t), "Boise", 2020)
	if err != nil {
		t.Fatalf("CityCompanies: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown city returned %d companies", len(none))
	}
}

func TestCityRollupMissingYear(t *testing.T) {
	_, err := CityRollup(rollupFixture(t), 1999)
	if !dataset.IsMissingColumn(err) {
		t.Errorf("got %v, want MissingColumnError", err)
	}
}
