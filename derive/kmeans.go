package derive

import (
	"math"
	"math/rand"
)

const kmeansMaxIter = 64

// kmeans is plain Lloyd's over 2-D points with a seeded source. Every choice
// is deterministic: seeded initial centroids, lowest-index centroid wins
// distance ties, empty clusters keep their previous centroid.
func kmeans(xs, ys []float64, k int, seed int64) []int {
	n := len(xs)
	labels := make([]int, n)
	if n == 0 {
		return labels
	}
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	cx := make([]float64, k)
	cy := make([]float64, k)
	for c := 0; c < k; c++ {
		cx[c] = xs[perm[c]]
		cy[c] = ys[perm[c]]
	}

	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i := 0; i < n; i++ {
			best, bestDist := 0, math.Inf(1)
			for c := 0; c < k; c++ {
				dx, dy := xs[i]-cx[c], ys[i]-cy[c]
				if dist := dx*dx + dy*dy; dist < bestDist {
					best, bestDist = c, dist
				}
			}
			if labels[i] != best {
				labels[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		sumX := make([]float64, k)
		sumY := make([]float64, k)
		count := make([]int, k)
		for i := 0; i < n; i++ {
			c := labels[i]
			sumX[c] += xs[i]
			sumY[c] += ys[i]
			count[c]++
		}
		for c := 0; c < k; c++ {
			if count[c] == 0 {
				continue
			}
			cx[c] = sumX[c] / float64(count[c])
			cy[c] = sumY[c] / float64(count[c])
		}
	}
	return labels
}
