package chart

import (
	"math"
	"testing"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"Q1", 1},
		{"Q4", 4},
		{"Q9", 9},
		{"Q10", 0},
		{"Q13", 3},
		{"Q101", 1},
		{"Q1104", 4},
		{"Q", 0},
		{"intro", 0},
	}
	for _, tt := range tests {
		if got := Level(tt.id); got != tt.want {
			t.Errorf("Level(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestHeatmapRowOrdering(t *testing.T) {
	h := Heatmap{
		Steps: []string{"Step 1", "Step 2"},
		Categories: []HeatmapCategory{
			{Name: "A", Questions: []HeatmapQuestion{
				{ID: "Q10", Values: []float64{0.1, 0.2}},
				{ID: "Q1", Values: []float64{0.3, 0.4}},
			}},
			{Name: "B", Questions: []HeatmapQuestion{
				{ID: "Q12", Values: []float64{0.5, 0.6}},
				{ID: "Q2", Values: []float64{0.7, 0.8}},
				{ID: "Q11", Values: []float64{0.9, 1.0}},
			}},
		},
	}
	if err := h.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	rows := h.Rows()
	want := []struct{ cat, id string }{
		{"A", "Q10"}, // level 0
		{"A", "Q1"},  // level 1
		{"B", "Q11"}, // level 1
		{"B", "Q12"}, // level 2, id "Q12" < "Q2"
		{"B", "Q2"},
	}
	if len(rows) != len(want) {
		t.Fatalf("Rows() returned %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Category != w.cat || rows[i].ID != w.id {
			t.Errorf("rows[%d] = %s/%s, want %s/%s", i, rows[i].Category, rows[i].ID, w.cat, w.id)
		}
	}

	if seps := h.Separators(); len(seps) != 1 || seps[0] != 2 {
		t.Errorf("Separators() = %v, want [2]", seps)
	}
	if rows[0].Label() != "A · Q10" {
		t.Errorf("Label() = %q", rows[0].Label())
	}
}

func TestHeatmapSeparatorsSkipEmpty(t *testing.T) {
	h := Heatmap{Categories: []HeatmapCategory{
		{Name: "empty"},
		{Name: "A", Questions: []HeatmapQuestion{{ID: "Q1"}}},
		{Name: "B", Questions: []HeatmapQuestion{{ID: "Q1"}, {ID: "Q2"}}},
		{Name: "C", Questions: []HeatmapQuestion{{ID: "Q1"}}},
	}}
	seps := h.Separators()
	if len(seps) != 2 || seps[0] != 1 || seps[1] != 3 {
		t.Errorf("Separators() = %v, want [1 3]", seps)
	}
}

func TestHeatmapCell(t *testing.T) {
	plain := Heatmap{}
	masked := Heatmap{MaskNonPositive: true}

	tests := []struct {
		name       string
		h          Heatmap
		in         float64
		want       float64
		wantMasked bool
	}{
		{"plain zero", plain, 0, 0, false},
		{"plain clamp high", plain, 1.4, 1, false},
		{"plain clamp low", plain, -0.2, 0, false},
		{"masked zero", masked, 0, math.NaN(), true},
		{"masked negative", masked, -1, math.NaN(), true},
		{"masked positive", masked, 0.04, 0.04, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, m := tt.h.Cell(tt.in)
			if m != tt.wantMasked {
				t.Errorf("masked = %v, want %v", m, tt.wantMasked)
			}
			if tt.wantMasked {
				if !math.IsNaN(got) {
					t.Errorf("value = %v, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeatmapValidate(t *testing.T) {
	bad := Heatmap{
		Steps:      []string{"s1", "s2", "s3"},
		Categories: []HeatmapCategory{{Name: "A", Questions: []HeatmapQuestion{{ID: "Q1", Values: []float64{1, 2}}}}},
	}
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeLengthMismatch) {
		t.Errorf("Validate() = %v, want LENGTH_MISMATCH", err)
	}
	if err := (Heatmap{Steps: []string{"s"}}).Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate(no rows) = %v, want INVALID_INPUT", err)
	}
	if err := (Heatmap{}).Validate(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Validate(no steps) = %v, want INVALID_INPUT", err)
	}
}

func TestFormatCell(t *testing.T) {
	if got := FormatCell(0.96); got != "0.96" {
		t.Errorf("FormatCell(0.96) = %q", got)
	}
	if got := FormatCell(0.04); got != "0.04" {
		t.Errorf("FormatCell(0.04) = %q", got)
	}
}
