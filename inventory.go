package minpairs

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxSegmentRunes bounds a selectable chart cell; longer cells are
// labels such as place or manner of articulation.
const maxSegmentRunes = 4

// Chart is a segment chart (consonants or vowels) laid out as a table:
// the first column and the header row hold labels, the other cells hold
// segments or are blank.
type Chart struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReadChart reads a chart from CSV with a header row.
func ReadChart(r io.Reader, name string) (*Chart, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	all, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read chart %s: %w", name, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("read chart %s: empty table", name)
	}
	c := &Chart{Name: name, Columns: all[0]}
	for _, row := range all[1:] {
		cells := make([]string, len(c.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
		}
		c.Rows = append(c.Rows, cells)
	}
	return c, nil
}

// LoadChart opens path and reads it with ReadChart.
func LoadChart(path, name string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart %s: %w", name, err)
	}
	defer f.Close()
	return ReadChart(f, name)
}

// Selectable reports whether the cell at row, col holds a segment.
func (c *Chart) Selectable(row, col int) (string, bool) {
	if row < 0 || row >= len(c.Rows) || col <= 0 || col >= len(c.Columns) {
		return "", false
	}
	cell := NormalizeSegment(c.Rows[row][col])
	if cell == "" || utf8.RuneCountInString(cell) >= maxSegmentRunes || cell == Placeholder {
		return "", false
	}
	return cell, true
}

// Segments lists the chart's selectable segments row by row.
func (c *Chart) Segments() []string {
	var out []string
	for r := range c.Rows {
		for col := range c.Columns {
			if seg, ok := c.Selectable(r, col); ok {
				out = append(out, seg)
			}
		}
	}
	return out
}
