package derive

import (
	"math"

	"github.com/andareed/marketscope/dataset"
)

// CityGroup is one aggregated city circle on the map: caps and employees
// summed, coordinates averaged, companies counted.
type CityGroup struct {
	City       string
	MarketCap  float64
	Employees  float64
	X          float64
	Y          float64
	Companies  int
	CircleSize float64
}

// Company is one row of the per-city drill-down subview.
type Company struct {
	Symbol     string
	MarketCap  float64
	Employees  float64
	CircleSize float64
}

// circleSize scales a circle to the log of the employee count, matching the
// map's log-scale size encoding. Non-positive counts get no circle.
func circleSize(employees float64) float64 {
	if !(employees > 0) {
		return 0
	}
	return math.Log(employees) * 3.5
}

type cityAcc struct {
	cap, emp   float64
	sumX, sumY float64
	nXY        int
	companies  int
}

// CityRollup groups the (typically masked) table by city for one year.
// Masked companies contribute nothing: their symbol is blank so they are not
// counted, and their NaN cap and employees are skipped by the sums. Groups
// come back in first-appearance order so recomputation is deterministic.
func CityRollup(t *dataset.Table, year int) ([]CityGroup, error) {
	cities, err := t.Categorical("City")
	if err != nil {
		return nil, err
	}
	symbols, err := t.Categorical("Symbol")
	if err != nil {
		return nil, err
	}
	caps, err := t.Numeric(YearColumn("Market Cap", year))
	if err != nil {
		return nil, err
	}
	emps, err := t.Numeric(YearColumn("Employees", year))
	if err != nil {
		return nil, err
	}
	xs, err := t.Numeric("x")
	if err != nil {
		return nil, err
	}
	ys, err := t.Numeric("y")
	if err != nil {
		return nil, err
	}

	var order []string
	accs := make(map[string]*cityAcc)
	for i, city := range cities {
		if city == "" {
			continue
		}
		acc, ok := accs[city]
		if !ok {
			acc = &cityAcc{}
			accs[city] = acc
			order = append(order, city)
		}
		if !math.IsNaN(caps[i]) {
			acc.cap += caps[i]
		}
		if !math.IsNaN(emps[i]) {
			acc.emp += emps[i]
		}
		if !math.IsNaN(xs[i]) && !math.IsNaN(ys[i]) {
			acc.sumX += xs[i]
			acc.sumY += ys[i]
			acc.nXY++
		}
		if symbols[i] != "" {
			acc.companies++
		}
	}

	groups := make([]CityGroup, 0, len(order))
	for _, city := range order {
		acc := accs[city]
		g := CityGroup{
			City:       city,
			MarketCap:  acc.cap,
			Employees:  acc.emp,
			Companies:  acc.companies,
			CircleSize: circleSize(acc.emp),
		}
		if acc.nXY > 0 {
			g.X = acc.sumX / float64(acc.nXY)
			g.Y = acc.sumY / float64(acc.nXY)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// CityCompanies lists the unmasked companies of one city for one year, in
// row order.
func CityCompanies(t *dataset.Table, city string, year int) ([]Company, error) {
	cities, err := t.Categorical("City")
	if err != nil {
		return nil, err
	}
	symbols, err := t.Categorical("Symbol")
	if err != nil {
		return nil, err
	}
	caps, err := t.Numeric(YearColumn("Market Cap", year))
	if err != nil {
		return nil, err
	}
	emps, err := t.Numeric(YearColumn("Employees", year))
	if err != nil {
		return nil, err
	}

	var out []Company
	for i := range cities {
		if cities[i] != city || symbols[i] == "" {
			continue
		}
		out = append(out, Company{
			Symbol:     symbols[i],
			MarketCap:  caps[i],
			Employees:  emps[i],
			CircleSize: circleSize(emps[i]),
		})
	}
	return out, nil
}
