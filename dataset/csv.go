package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Load reads a CSV table with a header row and classifies each column once:
// a column whose non-empty cells all parse as floats is Numeric, everything
// else is Categorical. Empty cells become the missing marker (NaN or "").
func Load(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	header := records[0]
	body := records[1:]

	cols := make([]Column, len(header))
	for j, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")
		cols[j] = buildColumn(name, j, body)
	}

	return New(cols)
}

// LoadFile is Load over a file on disk.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return t, nil
}

func buildColumn(name string, j int, body [][]string) Column {
	numeric := true
	sawValue := false
	for _, row := range body {
		cell := cellAt(row, j)
		if cell == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
	}

	if numeric && sawValue {
		nums := make([]float64, len(body))
		for i, row := range body {
			cell := cellAt(row, j)
			if cell == "" {
				nums[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				nums[i] = math.NaN()
				continue
			}
			nums[i] = v
		}
		return Column{Name: name, Kind: Numeric, Nums: nums}
	}

	strs := make([]string, len(body))
	for i, row := range body {
		strs[i] = cellAt(row, j)
	}
	return Column{Name: name, Kind: Categorical, Strs: strs}
}

func cellAt(row []string, j int) string {
	if j >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[j])
}
