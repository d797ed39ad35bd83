package main

import (
	"github.com/andareed/marketscope/dataset"
	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/logging"
)

// sessionState is the one mutable record behind every derived view: which
// features are picked, which points are lassoed, which city is tapped, the
// market-cap lower bound, and where the animation sits. Only Update-loop
// handlers touch it.
type sessionState struct {
	ColorFeature string
	SubFeature   string
	Selected     map[int]struct{}
	City         string
	CapLower     float64
	Year         int
	Playing      bool

	firstYear int
	lastYear  int
}

func newSessionState(cfg Config, t *dataset.Table) *sessionState {
	s := &sessionState{
		ColorFeature: clusterFeature,
		Selected:     make(map[int]struct{}),
		Year:         cfg.FirstYear,
		firstYear:    cfg.FirstYear,
		lastYear:     cfg.LastYear,
	}

	// prefer a recommendation-style column for the initial subplot, else
	// the first non-coordinate column
	if t.HasColumn("Mean Recommendation") {
		s.SubFeature = "Mean Recommendation"
	} else {
		for _, name := range t.ColumnNames() {
			if name == "lng" || name == "lat" || name == "x" || name == "y" {
				continue
			}
			s.SubFeature = name
			break
		}
	}
	return s
}

// SetCapLower clamps the threshold into the bounds of the cap column for the
// current year before storing it.
func (s *sessionState) SetCapLower(v float64, t *dataset.Table) {
	min, max := s.capBounds(t)
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	s.CapLower = v
}

func (s *sessionState) capBounds(t *dataset.Table) (min, max float64) {
	col, err := t.Column(derive.YearColumn("Market Cap", s.Year))
	if err != nil {
		logging.Warnf("capBounds: %v", err)
		return 0, 0
	}
	return col.Bounds()
}

// SetYear wraps any year into the cyclic [firstYear, lastYear] range.
func (s *sessionState) SetYear(year int) {
	span := s.lastYear - s.firstYear + 1
	offset := (year - s.firstYear) % span
	if offset < 0 {
		offset += span
	}
	s.Year = s.firstYear + offset
}

// AdvanceYear steps the animation forward one period, wrapping at the end of
// the range.
func (s *sessionState) AdvanceYear() {
	s.SetYear(s.Year + 1)
}

// SetSelected replaces the lasso selection. A nil set means empty, not
// unchanged.
func (s *sessionState) SetSelected(rows map[int]struct{}) {
	if rows == nil {
		rows = make(map[int]struct{})
	}
	s.Selected = rows
}

func (s *sessionState) ClearSelected() {
	s.Selected = make(map[int]struct{})
}
