package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/matzehuels/evalcharts/pkg/chart"
	"github.com/matzehuels/evalcharts/pkg/errors"
)

// Stems of the index files written next to the charts.
const (
	JSONStem     = "manifest"
	MarkdownStem = "index"
)

// Entry describes one generated chart.
type Entry struct {
	Stem   string     `json:"stem"`
	Kind   chart.Kind `json:"kind"`
	Title  string     `json:"title"`
	File   string     `json:"file"`
	Digest string     `json:"digest"`
}

// Manifest lists the charts of one run in generation order.
type Manifest struct {
	Format string  `json:"format"`
	DPI    int     `json:"dpi,omitempty"`
	Charts []Entry `json:"charts"`
}

// Add appends an entry for c written to file.
func (m *Manifest) Add(stem string, c chart.Chart, file string) error {
	digest, err := Digest(c)
	if err != nil {
		return err
	}
	m.Charts = append(m.Charts, Entry{
		Stem:   stem,
		Kind:   c.Kind(),
		Title:  c.Heading(),
		File:   file,
		Digest: digest,
	})
	return nil
}

// Kinds returns each chart kind with its count, in order of first use.
func (m *Manifest) Kinds() ([]chart.Kind, map[chart.Kind]int) {
	var order []chart.Kind
	counts := make(map[chart.Kind]int)
	for _, e := range m.Charts {
		if counts[e.Kind] == 0 {
			order = append(order, e.Kind)
		}
		counts[e.Kind]++
	}
	return order, counts
}

// Digest returns the SHA-256 of c's kind and canonical JSON encoding as 64
// hex characters.
func Digest(c chart.Chart) (string, error) {
	data, err := json.Marshal([]any{c.Kind(), c})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode %s %q", c.Kind(), c.Heading())
	}
	return Hash(data), nil
}

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// WriteJSON encodes m as indented JSON and writes it to w.
func WriteJSON(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "encode manifest")
	}
	return nil
}
