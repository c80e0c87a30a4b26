// Package paper holds the evaluation results reported in the paper and the
// list of figures generated from them.
//
// The tables are literals and never change at run time. [Jobs] turns them
// into chart jobs with fixed filename stems, in the order the figures are
// produced.
package paper
