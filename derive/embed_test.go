package derive

import (
	"math"
	"reflect"
	"testing"

	"github.com/andareed/marketscope/dataset"
)

func embedFixture(t *testing.T) *dataset.Table {
	t.Helper()
	tab, err := dataset.New([]dataset.Column{
		{Name: "Symbol", Kind: dataset.Categorical, Strs: []string{"A", "B", "C", "D", "E", "F"}},
		{Name: "Market Cap 2020", Kind: dataset.Numeric, Nums: []float64{
			100, 110, 95, 1000, 1100, math.NaN(),
		}},
		{Name: "Employees 2020", Kind: dataset.Numeric, Nums: []float64{
			10, 12, 9, 400, 420, 410,
		}},
		{Name: "lng", Kind: dataset.Numeric, Nums: []float64{1, 2, 3, 4, 5, 6}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return tab
}

func TestEmbedShapeAndCoordinateExclusion(t *testing.T) {
	e, err := Embed(embedFixture(t), 2, 0)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(e.X) != 6 || len(e.Y) != 6 || len(e.Cluster) != 6 {
		t.Fatalf("lengths = %d/%d/%d, want 6", len(e.X), len(e.Y), len(e.Cluster))
	}
	for _, f := range e.Features {
		if f == "lng" || f == "lat" || f == "x" || f == "y" {
			t.Errorf("coordinate column %q used as embedding feature", f)
		}
	}
	for i, v := range e.X {
		if math.IsNaN(v) || math.IsNaN(e.Y[i]) {
			t.Errorf("row %d projected to NaN; imputation failed", i)
		}
	}
}

func TestEmbedSameSeedSameLabels(t *testing.T) {
	a, err := Embed(embedFixture(t), 2, 0)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	b, err := Embed(embedFixture(t), 2, 0)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if !reflect.DeepEqual(a.Cluster, b.Cluster) {
		t.Errorf("same seed gave different labels:\n%v\n%v", a.Cluster, b.Cluster)
	}
	if !reflect.DeepEqual(a.X, b.X) || !reflect.DeepEqual(a.Y, b.Y) {
		t.Errorf("same inputs gave different projections")
	}
}

func TestEmbedSeparatesObviousClusters(t *testing.T) {
	e, err := Embed(embedFixture(t), 2, 0)
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	// rows 0-2 are small companies, rows 3-5 large; they must not share a label
	small := e.Cluster[0]
	if e.Cluster[1] != small || e.Cluster[2] != small {
		t.Errorf("small companies split: %v", e.Cluster)
	}
	if e.Cluster[3] == small || e.Cluster[4] == small {
		t.Errorf("small and large companies merged: %v", e.Cluster)
	}
}

func TestEmbedNeedsTwoFeatures(t *testing.T) {
	tab, err := dataset.New([]dataset.Column{
		{Name: "only", Kind: dataset.Numeric, Nums: []float64{1, 2, 3}},
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if _, err := Embed(tab, 2, 0); err == nil {
		t.Error("expected error with a single numeric feature")
	}
}

func TestKmeansDeterministic(t *testing.T) {
	xs := []float64{0, 0.1, 0.2, 10, 10.1, 10.2}
	ys := []float64{0, 0.1, 0.2, 10, 10.1, 10.2}

	a := kmeans(xs, ys, 2, 42)
	b := kmeans(xs, ys, 2, 42)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different labels: %v vs %v", a, b)
	}

	if a[0] != a[1] || a[1] != a[2] {
		t.Errorf("near points split: %v", a)
	}
	if a[0] == a[3] {
		t.Errorf("far points merged: %v", a)
	}
}

func TestKmeansClampK(t *testing.T) {
	xs := []float64{1, 2}
	ys := []float64{1, 2}
	labels := kmeans(xs, ys, 5, 0)
	for _, l := range labels {
		if l < 0 || l >= 2 {
			t.Errorf("label %d out of range with clamped k", l)
		}
	}
	if got := kmeans(nil, nil, 2, 0); len(got) != 0 {
		t.Errorf("empty input gave %v", got)
	}
}
