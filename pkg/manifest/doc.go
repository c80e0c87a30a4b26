// Package manifest describes a generated chart set.
//
// A [Manifest] lists every chart of a run with its stem, kind, title, file
// name and a digest of the numbers behind it. It is written twice: as
// manifest.json for tools and as index.md for people browsing the output
// directory.
//
// # Digests
//
// [Digest] hashes the chart's canonical JSON encoding, so it depends only on
// the chart model and not on the rendered bytes (which vary with format and
// DPI). Two runs over the same tables produce identical manifests.
package manifest
