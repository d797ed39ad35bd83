package dataset

import "math"

// earthRadius in meters, for the web Mercator projection.
const earthRadius = 6378137

// MercatorX converts a longitude in degrees to web Mercator meters.
func MercatorX(lng float64) float64 {
	return lng * (earthRadius * math.Pi / 180.0)
}

// MercatorY converts a latitude in degrees to web Mercator meters.
func MercatorY(lat float64) float64 {
	return math.Log(math.Tan((90+lat)*math.Pi/360.0)) * earthRadius
}

// WithMercator returns a new table with "x" and "y" columns appended, the
// web Mercator projection of the given longitude and latitude columns.
// Missing coordinates project to NaN.
func WithMercator(t *Table, lngCol, latCol string) (*Table, error) {
	lng, err := t.Numeric(lngCol)
	if err != nil {
		return nil, err
	}
	lat, err := t.Numeric(latCol)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(lng))
	ys := make([]float64, len(lat))
	for i := range lng {
		xs[i] = MercatorX(lng[i])
		ys[i] = MercatorY(lat[i])
	}

	cols := t.CloneColumns()
	cols = append(cols,
		Column{Name: "x", Kind: Numeric, Nums: xs},
		Column{Name: "y", Kind: Numeric, Nums: ys},
	)
	return New(cols)
}
