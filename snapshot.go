package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/andareed/marketscope/derive"
	"github.com/andareed/marketscope/logging"
)

// --- Wire format ---

const snapshotVersion = 1

// sessionDTO is the saved interaction state. The dataset itself is not
// snapshotted; a session only makes sense against the CSV it was taken from,
// recorded in Dataset for a sanity check on restore.
type sessionDTO struct {
	Version      int     `json:"version"`
	Dataset      string  `json:"dataset,omitempty"`
	ColorFeature string  `json:"colorFeature"`
	SubFeature   string  `json:"subFeature"`
	Selected     []int   `json:"selected,omitempty"`
	City         string  `json:"city,omitempty"`
	CapLower     float64 `json:"capLower"`
	Year         int     `json:"year"`
}

// --- Public API ---

// SaveSession writes the current interaction state to a JSON file.
func SaveSession(m *model, path string) error {
	dto := sessionDTO{
		Version:      snapshotVersion,
		Dataset:      m.InitialPath,
		ColorFeature: m.sess.ColorFeature,
		SubFeature:   m.sess.SubFeature,
		City:         m.sess.City,
		CapLower:     m.sess.CapLower,
		Year:         m.sess.Year,
	}
	for i := range m.sess.Selected {
		dto.Selected = append(dto.Selected, i)
	}
	sort.Ints(dto.Selected)

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSession restores a saved interaction state into m. Rows past the end of
// the current dataset are dropped from the selection rather than erroring, so
// a session survives a shrunk CSV.
func LoadSession(m *model, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dto sessionDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	if dto.Version != snapshotVersion {
		return fmt.Errorf("session version %d not supported (want %d)", dto.Version, snapshotVersion)
	}
	if dto.Dataset != "" && m.InitialPath != "" && dto.Dataset != m.InitialPath {
		logging.Warnf("session %s was saved against %q, restoring onto %q", path, dto.Dataset, m.InitialPath)
	}

	if dto.ColorFeature != "" {
		m.sess.ColorFeature = dto.ColorFeature
	}
	if dto.SubFeature != "" {
		m.sess.SubFeature = dto.SubFeature
	}
	selected := make(map[int]struct{}, len(dto.Selected))
	for _, i := range dto.Selected {
		if i >= 0 && i < m.base.NumRows() {
			selected[i] = struct{}{}
		}
	}
	m.sess.SetSelected(selected)
	m.sess.City = dto.City
	m.sess.SetYear(dto.Year)
	m.sess.SetCapLower(dto.CapLower, m.base)

	m.rebuildAll()
	return nil
}

// ExportView writes the current screen's derived table to a CSV file: the
// feature distribution for the explorer, the city rollup for the map.
func ExportView(m *model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if m.currentScreen == screenExplorer {
		if err := exportDistribution(m, w); err != nil {
			return err
		}
	} else {
		if err := exportRollup(m, w); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func exportDistribution(m *model, w *csv.Writer) error {
	dist, err := derive.FeatureDistribution(m.base, m.sess.SubFeature, m.sess.Selected, m.cfg.Bins)
	if err != nil {
		return err
	}
	if err := w.Write([]string{m.sess.SubFeature, "All", "Selected"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, label := range dist.Labels {
		row := []string{
			label,
			strconv.FormatFloat(dist.All[i], 'g', -1, 64),
			strconv.FormatFloat(dist.Selected[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}

func exportRollup(m *model, w *csv.Writer) error {
	groups, err := derive.CityRollup(m.maskedForYear(), m.sess.Year)
	if err != nil {
		return err
	}
	header := []string{"City", "Market Cap", "Employees", "Companies"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, g := range groups {
		row := []string{
			g.City,
			strconv.FormatFloat(g.MarketCap, 'g', -1, 64),
			strconv.FormatFloat(g.Employees, 'g', -1, 64),
			strconv.Itoa(g.Companies),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	return nil
}
