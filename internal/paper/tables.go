package paper

import "github.com/matzehuels/evalcharts/pkg/results"

// Checkpoint names.
const (
	PreTrain     = "Pre-Train"
	PostVisual   = "Post-Visual"
	PostStrategy = "Post-Strategy"
)

// Metrics are the summary metrics in presentation order.
var Metrics = []string{"all", "perception", "strategy"}

// Steps are the curriculum steps in order.
var Steps = []string{"Step 1", "Step 2", "Step 3", "Step 4"}

// SummaryPrePostVisual compares the base model with the visually fine-tuned one.
var SummaryPrePostVisual = results.Summary{
	{Name: PreTrain, Metrics: map[string]float64{"all": 0.160, "perception": 0.207, "strategy": 0.003}},
	{Name: PostVisual, Metrics: map[string]float64{"all": 0.284, "perception": 0.367, "strategy": 0.007}},
}

// SummaryPostVisualPostStrategy compares visual and strategy fine-tuning.
var SummaryPostVisualPostStrategy = results.Summary{
	{Name: PostVisual, Metrics: map[string]float64{"all": 0.284, "perception": 0.367, "strategy": 0.007}},
	{Name: PostStrategy, Metrics: map[string]float64{"all": 0.238, "perception": 0.285, "strategy": 0.080}},
}

// SummaryCurriculum holds the summary metrics after each curriculum step.
var SummaryCurriculum = results.Summary{
	{Name: "Step 1", Metrics: map[string]float64{"all": 0.165, "perception": 0.213, "strategy": 0.003}},
	{Name: "Step 2", Metrics: map[string]float64{"all": 0.301, "perception": 0.410, "strategy": 0.030}},
	{Name: "Step 3", Metrics: map[string]float64{"all": 0.307, "perception": 0.414, "strategy": 0.040}},
	{Name: "Step 4", Metrics: map[string]float64{"all": 0.249, "perception": 0.323, "strategy": 0.003}},
}

// VisualPrePostVisual holds per-variant accuracy before and after visual
// fine-tuning.
var VisualPrePostVisual = results.ComparisonTable{
	{
		Focus:  "color_at_position",
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Before: []float64{0.640, 0.680, 0.400, 0.200},
		After:  []float64{0.960, 0.760, 0.640, 0.520},
	},
	{
		Focus:  "count_black_stones",
		Labels: []string{"Q101", "Q102", "Q103", "Q104"},
		Before: []float64{0.040, 0.000, 0.000, 0.000},
		After:  []float64{0.600, 0.120, 0.040, 0.200},
	},
	{
		Focus:  "count_white_stones",
		Labels: []string{"Q201", "Q202", "Q203", "Q204"},
		Before: []float64{0.120, 0.040, 0.000, 0.000},
		After:  []float64{0.680, 0.160, 0.040, 0.200},
	},
	{
		Focus:  "count_empty_intersections",
		Labels: []string{"Q301", "Q302", "Q303", "Q304"},
		Before: []float64{0.000, 0.000, 0.000, 0.040},
		After:  []float64{0.040, 0.000, 0.000, 0.080},
	},
	{
		Focus:  "three_in_a_row",
		Labels: []string{"Q401", "Q402", "Q403", "Q404"},
		Before: []float64{0.000, 0.200, 0.080, 0.000},
		After:  []float64{0.680, 0.160, 0.160, 0.080},
	},
	{
		Focus:  "four_in_a_row",
		Labels: []string{"Q501", "Q502", "Q503", "Q504"},
		Before: []float64{0.000, 0.000, 0.040, 0.040},
		After:  []float64{0.600, 0.200, 0.080, 0.080},
	},
	{
		Focus:  "determine_who_won",
		Labels: []string{"Q601", "Q602", "Q603", "Q604"},
		Before: []float64{0.480, 0.480, 0.120, 0.480},
		After:  []float64{0.520, 0.640, 0.440, 0.320},
	},
	{
		Focus:  "can_you_win",
		Labels: []string{"Q701", "Q702", "Q703", "Q704"},
		Before: []float64{0.480, 0.640, 0.520, 0.520},
		After:  []float64{0.720, 0.920, 0.560, 0.960},
	},
	{
		Focus:  "can_you_lose",
		Labels: []string{"Q801", "Q802", "Q803", "Q804"},
		Before: []float64{0.520, 0.680, 0.280, 0.560},
		After:  []float64{0.600, 0.680, 0.560, 0.680},
	},
	{
		Focus:  "print_board_matrix",
		Labels: []string{"Q901", "Q902", "Q903", "Q904"},
		Before: []float64{0.000, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.000, 0.000},
	},
	{
		Focus:  "win_next_turn",
		Labels: []string{"Q1101", "Q1102", "Q1103", "Q1104"},
		Before: []float64{0.000, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.040, 0.000},
	},
	{
		Focus:  "best_next_move",
		Labels: []string{"Q1201", "Q1202", "Q1203", "Q1204"},
		Before: []float64{0.040, 0.000, 0.000, 0.000},
		After:  []float64{0.040, 0.000, 0.000, 0.000},
	},
	{
		Focus:  "reason_next_move",
		Labels: []string{"Q1301", "Q1302", "Q1303", "Q1304"},
		Before: []float64{0.000, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.000, 0.000},
	},
}

// VisualPostVisualPostStrategy holds per-variant accuracy before and after
// strategy fine-tuning.
var VisualPostVisualPostStrategy = results.ComparisonTable{
	{
		Focus:  "color_at_position",
		Labels: []string{"Q1", "Q2", "Q3", "Q4"},
		Before: []float64{0.960, 0.760, 0.640, 0.520},
		After:  []float64{0.960, 0.800, 0.640, 0.480},
	},
	{
		Focus:  "count_black_stones",
		Labels: []string{"Q101", "Q102", "Q103", "Q104"},
		Before: []float64{0.600, 0.120, 0.040, 0.200},
		After:  []float64{0.120, 0.000, 0.080, 0.080},
	},
	{
		Focus:  "count_white_stones",
		Labels: []string{"Q201", "Q202", "Q203", "Q204"},
		Before: []float64{0.680, 0.160, 0.040, 0.200},
		After:  []float64{0.120, 0.040, 0.000, 0.040},
	},
	{
		Focus:  "count_empty_intersections",
		Labels: []string{"Q301", "Q302", "Q303", "Q304"},
		Before: []float64{0.040, 0.000, 0.000, 0.080},
		After:  []float64{0.000, 0.000, 0.000, 0.040},
	},
	{
		Focus:  "three_in_a_row",
		Labels: []string{"Q401", "Q402", "Q403", "Q404"},
		Before: []float64{0.680, 0.160, 0.160, 0.080},
		After:  []float64{0.520, 0.160, 0.000, 0.000},
	},
	{
		Focus:  "four_in_a_row",
		Labels: []string{"Q501", "Q502", "Q503", "Q504"},
		Before: []float64{0.600, 0.200, 0.080, 0.080},
		After:  []float64{0.560, 0.240, 0.120, 0.000},
	},
	{
		Focus:  "determine_who_won",
		Labels: []string{"Q601", "Q602", "Q603", "Q604"},
		Before: []float64{0.520, 0.640, 0.440, 0.320},
		After:  []float64{0.440, 0.520, 0.640, 0.480},
	},
	{
		Focus:  "can_you_win",
		Labels: []string{"Q701", "Q702", "Q703", "Q704"},
		Before: []float64{0.720, 0.920, 0.560, 0.960},
		After:  []float64{0.520, 0.680, 0.600, 0.560},
	},
	{
		Focus:  "can_you_lose",
		Labels: []string{"Q801", "Q802", "Q803", "Q804"},
		Before: []float64{0.600, 0.680, 0.560, 0.680},
		After:  []float64{0.440, 0.520, 0.520, 0.480},
	},
	{
		Focus:  "print_board_matrix",
		Labels: []string{"Q901", "Q902", "Q903", "Q904"},
		Before: []float64{0.000, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.000, 0.000},
	},
	{
		Focus:  "win_next_turn",
		Labels: []string{"Q1101", "Q1102", "Q1103", "Q1104"},
		Before: []float64{0.000, 0.000, 0.040, 0.000},
		After:  []float64{0.160, 0.280, 0.240, 0.280},
	},
	{
		Focus:  "best_next_move",
		Labels: []string{"Q1201", "Q1202", "Q1203", "Q1204"},
		Before: []float64{0.040, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.000, 0.000},
	},
	{
		Focus:  "reason_next_move",
		Labels: []string{"Q1301", "Q1302", "Q1303", "Q1304"},
		Before: []float64{0.000, 0.000, 0.000, 0.000},
		After:  []float64{0.000, 0.000, 0.000, 0.000},
	},
}

// CurriculumFocus holds per-focus accuracy after each curriculum step.
var CurriculumFocus = results.Curriculum{
	{Focus: "color_at_position", Values: []float64{0.670, 0.660, 0.710, 0.730}},
	{Focus: "count_black_stones", Values: []float64{0.030, 0.000, 0.000, 0.110}},
	{Focus: "count_white_stones", Values: []float64{0.070, 0.000, 0.000, 0.100}},
	{Focus: "count_empty_intersections", Values: []float64{0.010, 0.000, 0.000, 0.010}},
	{Focus: "three_in_a_row", Values: []float64{0.050, 0.170, 0.180, 0.220}},
	{Focus: "four_in_a_row", Values: []float64{0.060, 0.230, 0.200, 0.210}},
	{Focus: "determine_who_won", Values: []float64{0.220, 0.000, 0.000, 0.500}},
	{Focus: "can_you_win", Values: []float64{0.480, 0.520, 0.510, 0.820}},
	{Focus: "can_you_lose", Values: []float64{0.540, 0.470, 0.470, 0.530}},
	{Focus: "print_board_matrix", Values: []float64{0.000, 0.000, 0.000, 0.000}},
}
