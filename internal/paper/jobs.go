package paper

import (
	"fmt"
	"slices"

	"github.com/matzehuels/evalcharts/pkg/chart"
	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/pipeline"
	"github.com/matzehuels/evalcharts/pkg/results"
)

const accuracyLabel = "Accuracy"

// Fixed y ranges.
var (
	summaryRange    = chart.Range{Min: 0, Max: 0.45}
	curriculumRange = chart.Range{Min: 0, Max: 0.50}
	variantRange    = chart.Range{Min: 0, Max: 1.05}
	focusRange      = chart.Range{Min: 0, Max: 1.0}
)

// Jobs returns every figure of the paper in generation order.
func Jobs() ([]pipeline.Job, error) {
	visualSummary, err := summaryBars("Overall Summary — Pre-Train vs Post-Visual", SummaryPrePostVisual)
	if err != nil {
		return nil, fmt.Errorf("visual summary: %w", err)
	}
	strategySummary, err := summaryBars("Overall Summary — Post-Visual vs Post-Strategy", SummaryPostVisualPostStrategy)
	if err != nil {
		return nil, fmt.Errorf("strategy summary: %w", err)
	}
	curriculum, err := curriculumSummary()
	if err != nil {
		return nil, fmt.Errorf("curriculum summary: %w", err)
	}
	heatmap, err := CheckpointHeatmap(false)
	if err != nil {
		return nil, fmt.Errorf("checkpoint heatmap: %w", err)
	}
	masked, err := CheckpointHeatmap(true)
	if err != nil {
		return nil, fmt.Errorf("checkpoint heatmap: %w", err)
	}

	jobs := []pipeline.Job{
		{Stem: "summary_pre_vs_post_visual", Chart: visualSummary},
		{Stem: "summary_post_visual_vs_post_strategy", Chart: strategySummary},
		{Stem: "curriculum_summary_lines", Chart: curriculum},
		{Stem: "delta_by_focus_visual_ft", Chart: focusDeltas(
			"Visual Fine-Tuning — Δ Accuracy by Focus (mean over variants)",
			"Δ (Post-Visual − Pre-Train)",
			VisualPrePostVisual,
		)},
		{Stem: "delta_by_focus_strategy_ft", Chart: focusDeltas(
			"Strategy Fine-Tuning — Δ Accuracy by Focus (mean over variants)",
			"Δ (Post-Strategy − Post-Visual)",
			VisualPostVisualPostStrategy,
		)},
	}
	for _, c := range VisualPrePostVisual {
		jobs = append(jobs, pipeline.Job{
			Stem:  "variants_pre_vs_post_visual__" + c.Focus,
			Chart: variantBars(PreTrain, PostVisual, c),
		})
	}
	for _, c := range VisualPostVisualPostStrategy {
		jobs = append(jobs, pipeline.Job{
			Stem:  "variants_post_visual_vs_post_strategy__" + c.Focus,
			Chart: variantBars(PostVisual, PostStrategy, c),
		})
	}
	jobs = append(jobs,
		pipeline.Job{Stem: "curriculum_focus_trends", Chart: curriculumFocus()},
		pipeline.Job{Stem: "checkpoint_heatmap", Chart: heatmap},
		pipeline.Job{Stem: "checkpoint_heatmap_masked", Chart: masked},
	)
	return jobs, nil
}

// summaryBars compares the checkpoints of s across the summary metrics.
func summaryBars(title string, s results.Summary) (chart.GroupedBar, error) {
	rows, err := s.Series(Metrics)
	if err != nil {
		return chart.GroupedBar{}, err
	}
	series := make([]chart.Series, len(s))
	for i, cp := range s {
		series[i] = chart.Series{Name: cp.Name, Values: rows[i]}
	}
	return chart.GroupedBar{
		Title:      title,
		Categories: slices.Clone(Metrics),
		Series:     series,
		YLabel:     accuracyLabel,
		YRange:     summaryRange,
		Annotate:   true,
	}, nil
}

// curriculumSummary plots each summary metric across the curriculum steps.
func curriculumSummary() (chart.Line, error) {
	cols, err := SummaryCurriculum.ByMetric(Metrics)
	if err != nil {
		return chart.Line{}, err
	}
	series := make([]chart.Series, len(Metrics))
	for i, m := range Metrics {
		series[i] = chart.Series{Name: m, Values: cols[i]}
	}
	return chart.Line{
		Title:   "Curriculum Learning — Overall Summary",
		XLabels: SummaryCurriculum.Names(),
		Series:  series,
		YLabel:  accuracyLabel,
		YRange:  curriculumRange,
	}, nil
}

// focusDeltas charts the change of each focus's mean accuracy in t.
func focusDeltas(title, xLabel string, t results.ComparisonTable) chart.DeltaBar {
	deltas := results.Deltas(results.FocusMeans(t))
	items := make([]chart.Delta, len(deltas))
	for i, d := range deltas {
		items[i] = chart.Delta{Label: d.Focus, Value: d.Delta}
	}
	return chart.DeltaBar{Title: title, XLabel: xLabel, Items: items}
}

func variantBars(before, after string, c results.Comparison) chart.GroupedBar {
	return chart.GroupedBar{
		Title:      fmt.Sprintf("%s vs %s — %s", before, after, c.Focus),
		Categories: c.Labels,
		Series: []chart.Series{
			{Name: before, Values: c.Before},
			{Name: after, Values: c.After},
		},
		YLabel: accuracyLabel,
		YRange: variantRange,
	}
}

func curriculumFocus() chart.Line {
	series := make([]chart.Series, len(CurriculumFocus))
	for i, f := range CurriculumFocus {
		series[i] = chart.Series{Name: f.Focus, Values: f.Values}
	}
	return chart.Line{
		Title:   "Curriculum Learning — Focus Accuracies Across Steps",
		XLabels: slices.Clone(Steps),
		Series:  series,
		YLabel:  accuracyLabel,
		YRange:  focusRange,
	}
}

// CheckpointHeatmap lays out every question's accuracy at the three
// checkpoints, grouped by focus. The Post-Visual column comes from the
// visual fine-tuning table. With mask set, zero cells are left blank.
func CheckpointHeatmap(mask bool) (chart.Heatmap, error) {
	title := "Per-Question Accuracy by Checkpoint"
	if mask {
		title += " (zeros blanked)"
	}

	cats := make([]chart.HeatmapCategory, 0, len(VisualPrePostVisual))
	for _, visual := range VisualPrePostVisual {
		strategy, ok := VisualPostVisualPostStrategy.Lookup(visual.Focus)
		if !ok {
			return chart.Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "focus %q has no strategy results", visual.Focus)
		}
		if err := visual.Validate(); err != nil {
			return chart.Heatmap{}, err
		}
		if err := strategy.Validate(); err != nil {
			return chart.Heatmap{}, err
		}
		if !slices.Equal(visual.Labels, strategy.Labels) {
			return chart.Heatmap{}, errors.New(errors.ErrCodeInvalidInput, "focus %q has different questions per table", visual.Focus)
		}

		qs := make([]chart.HeatmapQuestion, len(visual.Labels))
		for i, id := range visual.Labels {
			qs[i] = chart.HeatmapQuestion{
				ID:     id,
				Values: []float64{visual.Before[i], visual.After[i], strategy.After[i]},
			}
		}
		cats = append(cats, chart.HeatmapCategory{Name: visual.Focus, Questions: qs})
	}

	return chart.Heatmap{
		Title:           title,
		Steps:           []string{PreTrain, PostVisual, PostStrategy},
		Categories:      cats,
		MaskNonPositive: mask,
	}, nil
}
