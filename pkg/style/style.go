// Package style holds the figure constants shared by every chart: output
// format, resolution, figure size and font sizes.
//
// [Default] reproduces the house style of the paper figures. A TOML or YAML
// file can override any subset of fields through [Load]:
//
//	dpi = 300
//	figure_width = 12.0
//
//	[fonts]
//	title = 18
package style

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/evalcharts/pkg/errors"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{FormatPNG: true, FormatSVG: true, FormatPDF: true}

// Fonts are point sizes for each text role.
type Fonts struct {
	Title      float64 `toml:"title" yaml:"title"`
	AxisLabel  float64 `toml:"axis_label" yaml:"axis_label"`
	TickLabel  float64 `toml:"tick_label" yaml:"tick_label"`
	Legend     float64 `toml:"legend" yaml:"legend"`
	BarValue   float64 `toml:"bar_value" yaml:"bar_value"`
	DeltaValue float64 `toml:"delta_value" yaml:"delta_value"`
	CellValue  float64 `toml:"cell_value" yaml:"cell_value"`
}

// Theme configures figure output. Sizes are in inches, fonts in points.
type Theme struct {
	Format       string  `toml:"format" yaml:"format"`
	DPI          int     `toml:"dpi" yaml:"dpi"`
	FigureWidth  float64 `toml:"figure_width" yaml:"figure_width"`
	FigureHeight float64 `toml:"figure_height" yaml:"figure_height"`
	TitlePrefix  string  `toml:"title_prefix" yaml:"title_prefix"`
	TitlePadding float64 `toml:"title_padding" yaml:"title_padding"`
	Fonts        Fonts   `toml:"fonts" yaml:"fonts"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Format:       FormatPNG,
		DPI:          220,
		FigureWidth:  11.0,
		FigureHeight: 6.0,
		TitlePadding: 12,
		Fonts: Fonts{
			Title:      16,
			AxisLabel:  12,
			TickLabel:  10,
			Legend:     10,
			BarValue:   8,
			DeltaValue: 9,
			CellValue:  7,
		},
	}
}

// Validate checks that the theme can be rendered.
func (t Theme) Validate() error {
	if !ValidFormats[t.Format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'png', 'svg', or 'pdf')", t.Format)
	}
	if t.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "dpi must be positive, got %d", t.DPI)
	}
	if t.FigureWidth <= 0 || t.FigureHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "figure size must be positive, got %gx%g", t.FigureWidth, t.FigureHeight)
	}
	f := t.Fonts
	for _, size := range []float64{f.Title, f.AxisLabel, f.TickLabel, f.Legend, f.BarValue, f.DeltaValue, f.CellValue} {
		if size <= 0 {
			return errors.New(errors.ErrCodeInvalidStyle, "font sizes must be positive")
		}
	}
	return nil
}

// Title applies the configured prefix to a chart title.
func (t Theme) Title(s string) string {
	return t.TitlePrefix + s
}

// Parse decodes TOML overrides on top of the default theme.
func Parse(data string) (Theme, error) {
	t := Default()
	md, err := toml.Decode(data, &t)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse theme")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Theme{}, errors.New(errors.ErrCodeInvalidStyle, "unknown theme key: %s", undecoded[0])
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// ParseYAML decodes YAML overrides on top of the default theme. Unknown keys
// are rejected.
func ParseYAML(data []byte) (Theme, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse theme")
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Load reads a theme file. Files ending in .yaml or .yml are YAML, anything
// else is TOML. An empty path yields the default theme.
func Load(path string) (Theme, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "read theme %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(string(data))
	}
}
