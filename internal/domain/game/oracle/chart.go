package oracle

// Odds is a likelihood label on the fate chart
type Odds string

const (
	OddsImpossible       Odds = "Impossible"
	OddsNearlyImpossible Odds = "Nearly Impossible"
	OddsVeryUnlikely     Odds = "Very Unlikely"
	OddsUnlikely         Odds = "Unlikely"
	OddsFiftyFifty       Odds = "50/50"
	OddsLikely           Odds = "Likely"
	OddsVeryLikely       Odds = "Very Likely"
	OddsNearlyCertain    Odds = "Nearly Certain"
	OddsCertain          Odds = "Certain"
)

// AllOdds lists the nine likelihood labels from least to most likely
var AllOdds = []Odds{
	OddsImpossible,
	OddsNearlyImpossible,
	OddsVeryUnlikely,
	OddsUnlikely,
	OddsFiftyFifty,
	OddsLikely,
	OddsVeryLikely,
	OddsNearlyCertain,
	OddsCertain,
}

// ChartEntry holds the three d100 thresholds for one odds/chaos cell.
// A roll at or below ExceptionalYes is an exceptional yes, at or below Yes a
// yes, at or above ExceptionalNo an exceptional no, anything else a no.
type ChartEntry struct {
	ExceptionalYes int
	Yes            int
	ExceptionalNo  int
}

// fateChart is the Mythic fate chart: nine chaos-factor columns (index 0 is
// chaos factor 1) for each odds label. The values match the published table.
var fateChart = map[Odds][9]ChartEntry{
	OddsCertain: {
		{10, 50, 91}, {13, 65, 94}, {15, 75, 96}, {17, 85, 98}, {18, 90, 99},
		{19, 95, 100}, {20, 99, 101}, {20, 99, 101}, {20, 99, 101},
	},
	OddsNearlyCertain: {
		{7, 35, 88}, {10, 50, 91}, {13, 65, 94}, {15, 75, 96}, {17, 85, 98},
		{18, 90, 99}, {19, 95, 100}, {20, 99, 101}, {20, 99, 101},
	},
	OddsVeryLikely: {
		{5, 25, 86}, {7, 35, 88}, {10, 50, 91}, {13, 65, 94}, {15, 75, 96},
		{17, 85, 98}, {18, 90, 99}, {19, 95, 100}, {20, 99, 101},
	},
	OddsLikely: {
		{3, 15, 84}, {5, 25, 86}, {7, 35, 88}, {10, 50, 91}, {13, 65, 94},
		{15, 75, 96}, {17, 85, 98}, {18, 90, 99}, {19, 95, 100},
	},
	OddsFiftyFifty: {
		{2, 10, 83}, {3, 15, 84}, {5, 25, 86}, {7, 35, 88}, {10, 50, 91},
		{13, 65, 94}, {15, 75, 96}, {17, 85, 98}, {18, 90, 99},
	},
	OddsUnlikely: {
		{1, 5, 82}, {2, 10, 83}, {3, 15, 84}, {5, 25, 86}, {7, 35, 88},
		{10, 50, 91}, {13, 65, 94}, {15, 75, 96}, {17, 85, 98},
	},
	OddsVeryUnlikely: {
		{0, 1, 81}, {1, 5, 82}, {2, 10, 83}, {3, 15, 84}, {5, 25, 86},
		{7, 35, 88}, {10, 50, 91}, {13, 65, 94}, {15, 75, 96},
	},
	OddsNearlyImpossible: {
		{0, 1, 81}, {0, 1, 81}, {1, 5, 82}, {2, 10, 83}, {3, 15, 84},
		{5, 25, 86}, {7, 35, 88}, {10, 50, 91}, {13, 65, 94},
	},
	OddsImpossible: {
		{0, 1, 81}, {0, 1, 81}, {0, 1, 81}, {1, 5, 82}, {2, 10, 83},
		{3, 15, 84}, {5, 25, 86}, {7, 35, 88}, {10, 50, 91},
	},
}

// FateThresholds returns the chart entry for the given odds and chaos factor.
// The chaos factor is clamped into [1, 9]. Returns false for an unknown odds
// label.
func FateThresholds(odds Odds, chaosFactor int) (ChartEntry, bool) {
	column, ok := fateChart[odds]
	if !ok {
		return ChartEntry{}, false
	}
	return column[ClampChaosFactor(chaosFactor)-1], true
}

// MinChaosFactor and MaxChaosFactor bound the chaos factor range
const (
	MinChaosFactor = 1
	MaxChaosFactor = 9
)

// ClampChaosFactor clamps a chaos factor into [1, 9]
func ClampChaosFactor(chaosFactor int) int {
	if chaosFactor < MinChaosFactor {
		return MinChaosFactor
	}
	if chaosFactor > MaxChaosFactor {
		return MaxChaosFactor
	}
	return chaosFactor
}
