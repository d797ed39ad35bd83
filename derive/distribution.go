package derive

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/andareed/marketscope/dataset"
)

// DistKind says how a feature distribution should be drawn.
type DistKind int

const (
	// DistBars is a per-category bar chart (categorical features).
	DistBars DistKind = iota
	// DistHist is a fixed-bin histogram (numeric features).
	DistHist
)

// Distribution is the subplot table: one All series over the whole dataset
// and one Selected series over the lasso-selected rows. Both always have the
// same length; an empty selection yields an all-zero Selected series.
type Distribution struct {
	Feature string
	Kind    DistKind

	// Labels name the bars: category values for DistBars, "lo–hi" ranges
	// for DistHist.
	Labels []string
	// Edges are the bin edges for DistHist (len = bins+1); nil for DistBars.
	Edges []float64

	All      []float64
	Selected []float64
}

// FeatureDistribution dispatches on the feature's declared kind and counts
// the full table and the selected subset. Categories found in the table but
// not in the selection get an explicit zero, never a gap.
func FeatureDistribution(t *dataset.Table, feature string, selected map[int]struct{}, bins int) (*Distribution, error) {
	col, err := t.Column(feature)
	if err != nil {
		return nil, err
	}
	if col.Kind == dataset.Categorical {
		return categoryCounts(col, selected)
	}
	return histogramCounts(col, selected, bins)
}

func categoryCounts(col *dataset.Column, selected map[int]struct{}) (*Distribution, error) {
	var labels []string
	pos := make(map[string]int)
	d := &Distribution{Feature: col.Name, Kind: DistBars}

	for row, v := range col.Strs {
		if v == "" {
			continue
		}
		p, ok := pos[v]
		if !ok {
			p = len(labels)
			pos[v] = p
			labels = append(labels, v)
			d.All = append(d.All, 0)
			d.Selected = append(d.Selected, 0)
		}
		d.All[p]++
		if _, sel := selected[row]; sel {
			d.Selected[p]++
		}
	}
	d.Labels = labels
	return d, nil
}

func histogramCounts(col *dataset.Column, selected map[int]struct{}, bins int) (*Distribution, error) {
	if bins <= 0 {
		bins = 10
	}

	vals := make([]float64, 0, len(col.Nums))
	for _, v := range col.Nums {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}

	min, max := 0.0, 1.0
	if len(vals) > 0 {
		min, max = stats.Sample{Xs: vals}.Bounds()
	}
	if min == max {
		// degenerate range, widen so every value lands in bin 0
		max = min + 1
	}

	all := stats.NewLinearHist(min, max, bins)
	sel := stats.NewLinearHist(min, max, bins)
	for row, v := range col.Nums {
		if math.IsNaN(v) {
			continue
		}
		all.Add(v)
		if _, ok := selected[row]; ok {
			sel.Add(v)
		}
	}

	edges := vec.Linspace(min, max, bins+1)
	d := &Distribution{
		Feature:  col.Name,
		Kind:     DistHist,
		Edges:    edges,
		All:      foldCounts(all, bins),
		Selected: foldCounts(sel, bins),
	}
	d.Labels = make([]string, bins)
	for i := 0; i < bins; i++ {
		d.Labels[i] = fmt.Sprintf("%.4g–%.4g", edges[i], edges[i+1])
	}
	return d, nil
}

// foldCounts flattens a LinearHist into per-bin counts, folding the
// under/overflow buckets into the edge bins so nothing is dropped.
func foldCounts(h *stats.LinearHist, bins int) []float64 {
	under, counts, over := h.Counts()
	out := make([]float64, bins)
	for i, c := range counts {
		out[i] = float64(c)
	}
	out[0] += float64(under)
	out[bins-1] += float64(over)
	return out
}
