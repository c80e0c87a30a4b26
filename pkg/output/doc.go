// Package output writes generated files into a single flat directory.
//
// Every file is named <stem>.<ext>. Stems are plain file names: no path
// separators, no traversal, no hidden files. Writing the same stem twice
// overwrites the earlier file, so reruns replace previous output.
package output
