package chart

// slotWidth is the share of a category slot occupied by its bar cluster.
const slotWidth = 0.8

// GroupedBar compares several series across ordered categories.
type GroupedBar struct {
	Title      string
	Categories []string
	Series     []Series
	YLabel     string
	YRange     Range
	Annotate   bool
}

// Bar is one positioned bar of a [GroupedBar], in data coordinates.
type Bar struct {
	Series   int
	Category int
	Left     float64
	Right    float64
	Value    float64
}

// Center returns the horizontal midpoint of the bar.
func (b Bar) Center() float64 { return (b.Left + b.Right) / 2 }

// Width returns the bar width in data units.
func (b Bar) Width() float64 { return b.Right - b.Left }

// Label returns the annotation printed above the bar.
func (b Bar) Label() string { return FormatValue(b.Value) }

func (g GroupedBar) Kind() Kind      { return KindGroupedBar }
func (g GroupedBar) Heading() string { return g.Title }

// Validate checks that every series has one value per category.
func (g GroupedBar) Validate() error {
	if err := validateSeries(g.Categories, g.Series); err != nil {
		return err
	}
	return validateRange(g.YRange)
}

// BarWidth returns the width of a single bar: the slot share divided among
// the series.
func (g GroupedBar) BarWidth() float64 {
	return slotWidth / float64(max(len(g.Series), 1))
}

// Bars lays out every bar, series-major. Category c is centered on x = c and
// series i is shifted by (i - (n-1)/2) bar widths, so a cluster is centered
// on its category and its bars never overlap. The result has
// len(Categories) * len(Series) entries.
func (g GroupedBar) Bars() []Bar {
	n := len(g.Series)
	w := g.BarWidth()
	bars := make([]Bar, 0, n*len(g.Categories))
	for i, s := range g.Series {
		shift := (float64(i) - float64(n-1)/2) * w
		for c, v := range s.Values {
			center := float64(c) + shift
			bars = append(bars, Bar{
				Series:   i,
				Category: c,
				Left:     center - w/2,
				Right:    center + w/2,
				Value:    v,
			})
		}
	}
	return bars
}
