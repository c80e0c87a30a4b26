package manifest

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// WriteMarkdown renders m as a Markdown index page and writes it to w.
// Image references are relative, so the page belongs in the output
// directory next to the charts.
func WriteMarkdown(m *Manifest, w io.Writer) error {
	md := markdown.NewMarkdown(w)

	md.H1("Evaluation charts")
	md.PlainText("")
	md.PlainTextf("%d charts, format `%s`.", len(m.Charts), m.Format)
	md.PlainText("")

	writeTable(md, m)
	writeKinds(md, m)

	for _, e := range m.Charts {
		md.H2(e.Title)
		md.PlainText("")
		md.PlainTextf("![%s](%s)", e.Stem, e.File)
		md.PlainText("")
	}

	if err := md.Build(); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "build index")
	}
	return nil
}

func writeTable(md *markdown.Markdown, m *Manifest) {
	rows := make([][]string, len(m.Charts))
	for i, e := range m.Charts {
		rows[i] = []string{
			"`" + e.Stem + "`",
			string(e.Kind),
			e.Title,
			fmt.Sprintf("[%s](%s)", e.File, e.File),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Stem", "Kind", "Title", "File"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeKinds writes a mermaid pie chart of the chart kinds.
func writeKinds(md *markdown.Markdown, m *Manifest) {
	order, counts := m.Kinds()
	if len(order) == 0 {
		return
	}

	pie := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Charts by kind"),
		piechart.WithShowData(true),
	)
	for _, k := range order {
		pie.LabelAndIntValue(string(k), uint64(counts[k]))
	}

	md.H2("Charts by kind")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, pie.String())
	md.PlainText("")
}
