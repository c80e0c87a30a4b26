package results

import (
	"github.com/matzehuels/evalcharts/pkg/errors"
)

// Checkpoint is one row of a [Summary]: a named evaluation stage and its
// accuracy per metric.
type Checkpoint struct {
	Name    string
	Metrics map[string]float64
}

// Summary is an ordered list of checkpoints sharing a metric set.
type Summary []Checkpoint

// Series returns, for each checkpoint, its values for metrics in the given
// order. A metric missing from a checkpoint is an INVALID_INPUT error.
func (s Summary) Series(metrics []string) ([][]float64, error) {
	out := make([][]float64, len(s))
	for i, cp := range s {
		row := make([]float64, len(metrics))
		for j, m := range metrics {
			v, ok := cp.Metrics[m]
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidInput, "checkpoint %q has no metric %q", cp.Name, m)
			}
			row[j] = v
		}
		out[i] = row
	}
	return out, nil
}

// ByMetric transposes the summary: for each metric, one value per checkpoint.
func (s Summary) ByMetric(metrics []string) ([][]float64, error) {
	rows, err := s.Series(metrics)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(metrics))
	for j := range metrics {
		col := make([]float64, len(rows))
		for i := range rows {
			col[i] = rows[i][j]
		}
		out[j] = col
	}
	return out, nil
}

// Names returns the checkpoint names in order.
func (s Summary) Names() []string {
	names := make([]string, len(s))
	for i, cp := range s {
		names[i] = cp.Name
	}
	return names
}

// Comparison holds the accuracies of one focus's question variants at two
// checkpoints. Labels, Before and After are parallel.
type Comparison struct {
	Focus  string
	Labels []string
	Before []float64
	After  []float64
}

// Validate checks that Before and After align with Labels.
func (c Comparison) Validate() error {
	if err := errors.CheckLength(c.Focus+" before", len(c.Before), len(c.Labels)); err != nil {
		return err
	}
	return errors.CheckLength(c.Focus+" after", len(c.After), len(c.Labels))
}

// ComparisonTable is an ordered list of per-focus comparisons.
type ComparisonTable []Comparison

// Validate checks every comparison in the table.
func (t ComparisonTable) Validate() error {
	for _, c := range t {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the comparison for focus.
func (t ComparisonTable) Lookup(focus string) (Comparison, bool) {
	for _, c := range t {
		if c.Focus == focus {
			return c, true
		}
	}
	return Comparison{}, false
}

// FocusSeries is one focus's accuracy across curriculum steps.
type FocusSeries struct {
	Focus  string
	Values []float64
}

// Curriculum is an ordered list of per-focus step accuracies.
type Curriculum []FocusSeries
