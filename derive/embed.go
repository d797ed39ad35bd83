package derive

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/andareed/marketscope/dataset"
)

// coordinateColumns are numeric columns that describe where a row is drawn,
// not what it is; they stay out of the embedding.
var coordinateColumns = map[string]bool{
	"lng": true,
	"lat": true,
	"x":   true,
	"y":   true,
}

// Embedding is the explorer's scatter table: a 2-D PCA projection of every
// numeric feature plus a k-means cluster label per row.
type Embedding struct {
	Features []string
	X        []float64
	Y        []float64
	Cluster  []int
	K        int
}

// Embed runs the fixed pipeline: min-max normalize each numeric feature,
// impute missing cells with the column mean, project onto 2 principal
// components, then cluster the projection with a seeded k-means. The seed is
// part of the contract: same table, k, and seed always give the same labels.
func Embed(t *dataset.Table, k int, seed int64) (*Embedding, error) {
	var features []string
	for _, name := range t.NumericColumns() {
		if !coordinateColumns[name] {
			features = append(features, name)
		}
	}
	if len(features) < 2 {
		return nil, fmt.Errorf("embed: need at least 2 numeric features, have %d", len(features))
	}
	n := t.NumRows()
	if n < 2 {
		return nil, fmt.Errorf("embed: need at least 2 rows, have %d", n)
	}

	d := len(features)
	data := make([]float64, n*d)
	for j, name := range features {
		col, err := t.Numeric(name)
		if err != nil {
			return nil, err
		}
		writeNormalized(data, col, j, d)
	}

	X := mat.NewDense(n, d, data)

	var pc stat.PC
	if ok := pc.PrincipalComponents(X, nil); !ok {
		return nil, fmt.Errorf("embed: principal components failed")
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	var proj mat.Dense
	proj.Mul(X, vecs.Slice(0, d, 0, 2))

	e := &Embedding{
		Features: features,
		X:        make([]float64, n),
		Y:        make([]float64, n),
		K:        k,
	}
	for i := 0; i < n; i++ {
		e.X[i] = proj.At(i, 0)
		e.Y[i] = proj.At(i, 1)
	}
	e.Cluster = kmeans(e.X, e.Y, k, seed)
	return e, nil
}

// writeNormalized scales a column to [0, 1] and fills missing cells with the
// mean of the scaled values, writing into column j of a row-major n×d buffer.
// Scale-then-impute, in that order.
func writeNormalized(data []float64, col []float64, j, d int) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range col {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	scaled := make([]float64, len(col))
	sum, cnt := 0.0, 0
	for i, v := range col {
		if math.IsNaN(v) {
			scaled[i] = math.NaN()
			continue
		}
		s := 0.0
		if max > min {
			s = (v - min) / (max - min)
		}
		scaled[i] = s
		sum += s
		cnt++
	}

	mean := 0.0
	if cnt > 0 {
		mean = sum / float64(cnt)
	}
	for i, s := range scaled {
		if math.IsNaN(s) {
			s = mean
		}
		data[i*d+j] = s
	}
}
