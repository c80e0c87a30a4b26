package chart

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// HeatmapQuestion is one question's values, one per step.
type HeatmapQuestion struct {
	ID     string
	Values []float64
}

// HeatmapCategory groups the questions of one focus.
type HeatmapCategory struct {
	Name      string
	Questions []HeatmapQuestion
}

// Heatmap renders a questions × steps grid. Rows are grouped by category in
// the given order. With MaskNonPositive set, cells at or below zero are left
// blank to tell "not evaluated" apart from an evaluated zero.
type Heatmap struct {
	Title           string
	Steps           []string
	Categories      []HeatmapCategory
	MaskNonPositive bool
}

// HeatmapRow is one ordered grid row.
type HeatmapRow struct {
	Category string
	ID       string
	Level    int
	Values   []float64
}

// Label returns the y-axis text for the row.
func (r HeatmapRow) Label() string {
	return fmt.Sprintf("%s · %s", r.Category, r.ID)
}

func (h Heatmap) Kind() Kind      { return KindHeatmap }
func (h Heatmap) Heading() string { return h.Title }

// Validate checks that every question has one value per step.
func (h Heatmap) Validate() error {
	if len(h.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "heatmap %q has no steps", h.Title)
	}
	rows := 0
	for _, c := range h.Categories {
		for _, q := range c.Questions {
			what := fmt.Sprintf("question %s/%s", c.Name, q.ID)
			if err := errors.CheckLength(what, len(q.Values), len(h.Steps)); err != nil {
				return err
			}
			rows++
		}
	}
	if rows == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "heatmap %q has no questions", h.Title)
	}
	return nil
}

// Level derives the ordering bucket of a question id from its trailing
// digits: the number itself below 10, otherwise the number modulo 10. Ids
// without trailing digits have level 0.
func Level(id string) int {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return 0
	}
	if n >= 10 {
		return n % 10
	}
	return n
}

// Rows returns the grid rows top to bottom: categories in input order, and
// inside each category questions by level, then id.
func (h Heatmap) Rows() []HeatmapRow {
	var rows []HeatmapRow
	for _, c := range h.Categories {
		group := make([]HeatmapRow, len(c.Questions))
		for i, q := range c.Questions {
			group[i] = HeatmapRow{Category: c.Name, ID: q.ID, Level: Level(q.ID), Values: q.Values}
		}
		slices.SortStableFunc(group, func(a, b HeatmapRow) int {
			if c := cmp.Compare(a.Level, b.Level); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		rows = append(rows, group...)
	}
	return rows
}

// Separators returns the row indices at which a new category starts,
// excluding the first row. A separator line is drawn above each.
func (h Heatmap) Separators() []int {
	var out []int
	start := 0
	for _, c := range h.Categories {
		if len(c.Questions) == 0 {
			continue
		}
		if start > 0 {
			out = append(out, start)
		}
		start += len(c.Questions)
	}
	return out
}

// Cell maps a raw value to what the grid shows: the value clamped to [0, 1],
// or NaN and masked=true when masking hides it.
func (h Heatmap) Cell(v float64) (shown float64, masked bool) {
	if h.MaskNonPositive && v <= 0 {
		return math.NaN(), true
	}
	return math.Min(math.Max(v, 0), 1), false
}
