// Package chart defines renderer-independent chart models and the geometry
// derived from them.
//
// # Overview
//
// A chart model describes what a figure shows, not how it is drawn. Four
// kinds exist:
//
//   - [GroupedBar]: clusters of bars, one bar per series in each category
//   - [DeltaBar]: horizontal bars of signed changes, sorted ascending
//   - [Line]: one marked line per series over ordered x labels
//   - [Heatmap]: questions × steps grid grouped by category
//
// Every model has a Validate method that enforces the parallel-sequence
// invariant (values align with their axis labels) and a geometry method that
// the renderers consume: [GroupedBar.Bars], [DeltaBar.Sorted],
// [Heatmap.Rows] and [Heatmap.Separators]. Keeping the geometry here makes
// placement, ordering and annotation text testable without drawing anything.
//
// # Annotations
//
// Bar values are printed with [FormatValue] (three decimals), deltas with
// [FormatDelta] (three decimals and an explicit sign) and heatmap cells with
// [FormatCell] (two decimals).
//
// # Heatmap ordering
//
// Rows follow category order; inside a category they are ordered by [Level]
// and then by question id. Level is the numeric suffix of the id, reduced
// modulo 10 once it reaches 10, so "Q10" (level 0) sorts before "Q1"
// (level 1).
package chart
