package chart

import (
	"fmt"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// Kind names a chart model type. It is recorded in the report manifest.
type Kind string

const (
	KindGroupedBar Kind = "grouped_bar"
	KindDeltaBar   Kind = "delta_bar"
	KindLine       Kind = "line"
	KindHeatmap    Kind = "heatmap"
)

// Chart is implemented by every chart model.
type Chart interface {
	Kind() Kind
	Heading() string
	Validate() error
}

// Series is a named sequence of values aligned with a chart's axis labels.
type Series struct {
	Name   string
	Values []float64
}

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// FormatValue formats a bar value for annotation.
func FormatValue(v float64) string { return fmt.Sprintf("%.3f", v) }

// FormatDelta formats a signed change for annotation.
func FormatDelta(v float64) string { return fmt.Sprintf("%+.3f", v) }

// FormatCell formats a heatmap cell for annotation.
func FormatCell(v float64) string { return fmt.Sprintf("%.2f", v) }

func validateSeries(labels []string, series []Series) error {
	if len(labels) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "chart has no axis labels")
	}
	if len(series) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "chart has no series")
	}
	for _, s := range series {
		if err := errors.CheckLength(fmt.Sprintf("series %q", s.Name), len(s.Values), len(labels)); err != nil {
			return err
		}
	}
	return nil
}

func validateRange(r Range) error {
	if !(r.Max > r.Min) {
		return errors.New(errors.ErrCodeInvalidInput, "empty axis range [%g, %g]", r.Min, r.Max)
	}
	return nil
}
