package chart

// Line draws one marked line per series over ordered x labels.
type Line struct {
	Title   string
	XLabels []string
	Series  []Series
	YLabel  string
	YRange  Range
}

func (l Line) Kind() Kind      { return KindLine }
func (l Line) Heading() string { return l.Title }

// Validate checks that every series has one value per x label.
func (l Line) Validate() error {
	if err := validateSeries(l.XLabels, l.Series); err != nil {
		return err
	}
	return validateRange(l.YRange)
}
