package results

import "math"

// Mean returns the arithmetic mean of xs, or NaN when xs is empty.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// PairedMean is the mean accuracy of one focus before and after a stage.
type PairedMean struct {
	Focus  string
	Before float64
	After  float64
}

// FocusMeans reduces each comparison to the means of its before and after
// values, in table order.
func FocusMeans(t ComparisonTable) []PairedMean {
	out := make([]PairedMean, len(t))
	for i, c := range t {
		out[i] = PairedMean{
			Focus:  c.Focus,
			Before: Mean(c.Before),
			After:  Mean(c.After),
		}
	}
	return out
}

// FocusDelta is the signed change of a focus's mean accuracy.
type FocusDelta struct {
	Focus string
	Delta float64
}

// Deltas computes After - Before for every paired mean, preserving order.
func Deltas(means []PairedMean) []FocusDelta {
	out := make([]FocusDelta, len(means))
	for i, m := range means {
		out[i] = FocusDelta{Focus: m.Focus, Delta: m.After - m.Before}
	}
	return out
}
