package derive

import (
	"math"
	"reflect"
	"testing"

	"github.com/andareed/marketscope/dataset"
)

func distFixture(t *testing.T) *dataset.Table {
	t.Helper()
	tab, err := dataset.New([]dataset.Column{
		{Name: "Sector", Kind: dataset.Categorical, Strs: []string{
			"Tech", "Energy", "Tech", "", "Energy", "Health",
		}},
		{Name: "Mean Recommendation", Kind: dataset.Numeric, Nums: []float64{
			1.0, 2.5, 3.0, 4.5, math.NaN(), 5.0,
		}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tab
}

func TestCategoryCountsFirstAppearanceOrder(t *testing.T) {
	d, err := FeatureDistribution(distFixture(t), "Sector", nil, 10)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	if d.Kind != DistBars {
		t.Fatalf("Kind = %v, want DistBars", d.Kind)
	}
	wantLabels := []string{"Tech", "Energy", "Health"}
	if !reflect.DeepEqual(d.Labels, wantLabels) {
		t.Errorf("Labels = %v, want %v", d.Labels, wantLabels)
	}
	wantAll := []float64{2, 2, 1}
	if !reflect.DeepEqual(d.All, wantAll) {
		t.Errorf("All = %v, want %v", d.All, wantAll)
	}
}

func TestEmptySelectionYieldsZeroSeries(t *testing.T) {
	d, err := FeatureDistribution(distFixture(t), "Sector", map[int]struct{}{}, 10)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	if len(d.Selected) != len(d.All) {
		t.Fatalf("Selected len %d != All len %d", len(d.Selected), len(d.All))
	}
	for i, v := range d.Selected {
		if v != 0 {
			t.Errorf("Selected[%d] = %v, want 0", i, v)
		}
	}
}

func TestSelectionCountsOnlySelectedRows(t *testing.T) {
	// rows 0 and 2 are both Tech
	sel := map[int]struct{}{0: {}, 2: {}}
	d, err := FeatureDistribution(distFixture(t), "Sector", sel, 10)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	want := []float64{2, 0, 0}
	if !reflect.DeepEqual(d.Selected, want) {
		t.Errorf("Selected = %v, want %v", d.Selected, want)
	}
}

func TestHistogramCounts(t *testing.T) {
	sel := map[int]struct{}{0: {}, 5: {}}
	d, err := FeatureDistribution(distFixture(t), "Mean Recommendation", sel, 4)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	if d.Kind != DistHist {
		t.Fatalf("Kind = %v, want DistHist", d.Kind)
	}
	if len(d.All) != 4 || len(d.Selected) != 4 || len(d.Labels) != 4 {
		t.Fatalf("series lengths = %d/%d/%d, want 4", len(d.All), len(d.Selected), len(d.Labels))
	}
	if len(d.Edges) != 5 {
		t.Fatalf("edges len = %d, want 5", len(d.Edges))
	}
	if d.Edges[0] != 1.0 || d.Edges[4] != 5.0 {
		t.Errorf("edge range = [%v, %v], want [1, 5]", d.Edges[0], d.Edges[4])
	}

	// NaN rows are excluded from both series
	sumAll := 0.0
	for _, v := range d.All {
		sumAll += v
	}
	if sumAll != 5 {
		t.Errorf("All total = %v, want 5 (NaN row excluded)", sumAll)
	}

	// the max value folds into the last bin instead of an overflow bucket
	if d.All[3] == 0 {
		t.Errorf("last bin empty; max value was dropped: %v", d.All)
	}

	sumSel := 0.0
	for _, v := range d.Selected {
		sumSel += v
	}
	if sumSel != 2 {
		t.Errorf("Selected total = %v, want 2", sumSel)
	}
}

func TestHistogramDegenerateRange(t *testing.T) {
	tab, err := dataset.New([]dataset.Column{
		{Name: "v", Kind: dataset.Numeric, Nums: []float64{7, 7, 7}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	d, err := FeatureDistribution(tab, "v", nil, 5)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	if d.All[0] != 3 {
		t.Errorf("All[0] = %v, want all 3 values in bin 0", d.All[0])
	}
}

func TestDistributionRecomputeIsDeterministic(t *testing.T) {
	sel := map[int]struct{}{1: {}, 4: {}}
	a, err := FeatureDistribution(distFixture(t), "Sector", sel, 10)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	b, err := FeatureDistribution(distFixture(t), "Sector", sel, 10)
	if err != nil {
		t.Fatalf("FeatureDistribution: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("recompute differs:\n%+v\n%+v", a, b)
	}
}

func TestDistributionMissingFeature(t *testing.T) {
	_, err := FeatureDistribution(distFixture(t), "Nope", nil, 10)
	if !dataset.IsMissingColumn(err) {
		t.Errorf("got %v, want MissingColumnError", err)
	}
}
