package chart

import (
	"cmp"
	"slices"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// Delta is a labeled signed change.
type Delta struct {
	Label string
	Value float64
}

// Annotation returns the signed label printed next to the bar tip.
func (d Delta) Annotation() string { return FormatDelta(d.Value) }

// Positive reports whether the annotation belongs on the right of the tip.
func (d Delta) Positive() bool { return d.Value >= 0 }

// DeltaBar shows signed changes as horizontal bars sorted ascending.
type DeltaBar struct {
	Title  string
	XLabel string
	Items  []Delta
}

func (d DeltaBar) Kind() Kind      { return KindDeltaBar }
func (d DeltaBar) Heading() string { return d.Title }

// Validate rejects an empty item list.
func (d DeltaBar) Validate() error {
	if len(d.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "delta chart %q has no items", d.Title)
	}
	return nil
}

// Sorted returns the items ordered by value ascending. The sort is stable,
// so equal deltas keep their input order. The receiver is not modified.
func (d DeltaBar) Sorted() []Delta {
	return SortDeltas(d.Items)
}

// SortDeltas returns a stably sorted copy of items, ascending by value.
func SortDeltas(items []Delta) []Delta {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b Delta) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

// Extent returns the smallest range covering zero and every value.
func (d DeltaBar) Extent() Range {
	r := Range{}
	for _, it := range d.Items {
		r.Min = min(r.Min, it.Value)
		r.Max = max(r.Max, it.Value)
	}
	return r
}
