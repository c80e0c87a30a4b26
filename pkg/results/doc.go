// Package results holds the accuracy tables behind the evaluation charts and
// the small aggregations computed over them.
//
// # Tables
//
// [Summary] maps an evaluation checkpoint to per-metric accuracies.
// [ComparisonTable] pairs two checkpoints over the question variants of each
// focus. [Curriculum] holds one accuracy per curriculum step for each focus.
// All of them keep their rows in presentation order; nothing here is sorted.
//
// # Aggregation
//
// [Mean] averages a sequence and returns NaN for an empty one.
// [FocusMeans] reduces a [ComparisonTable] to one (before, after) pair per
// focus and [Deltas] turns those pairs into signed changes:
//
//	means := results.FocusMeans(table)
//	for _, d := range results.Deltas(means) {
//	    fmt.Printf("%s %+.3f\n", d.Focus, d.Delta)
//	}
package results
