package scoring

import "math"

// The weight tables below are hand-authored per question and keyed by
// catalog ID. They encode judgment about what each answer says about a
// player, not a general formula; treat the constants as data.

// agreeRule applies the centered agreement score (value minus 3) to each
// axis through a signed multiplier. A zero multiplier leaves the axis
// untouched.
type agreeRule struct {
	wx float64
	wy float64
}

var agreeRules = map[string]agreeRule{
	"bluff_thrill":     {wx: 1.0},
	"raise_first":      {wx: 0.8},
	"move_up_stakes":   {wx: 0.7},
	"certainty_first":  {wx: -0.7},
	"table_image_play": {wx: 0.5},
	"blind_defense":    {wx: 0.3},
	"gut_call":         {wy: 1.0},
	"solver_study":     {wy: -0.8},
	"live_tells":       {wy: 0.7},
	"range_discipline": {wy: -0.7},
	"table_feel":       {wy: 0.5},
	"note_taking":      {wy: -0.3},
	"bankroll_guard":   {wx: -0.8, wy: -0.8},
	"hero_call":        {wx: 0.7, wy: 0.7},
	"slow_play":        {wx: -0.5, wy: -0.5},
	"tilt_rebuy":       {wx: 0.3, wy: 0.3},
}

// delta is one option's literal effect on the axes
type delta struct {
	dx float64
	dy float64
}

// choiceRule maps an exact option string to its effect. Options missing
// from the table (and the unweighted demographic questions, which have
// no table at all) score zero.
type choiceRule map[string]delta

var choiceRules = map[string]choiceRule{
	"final_table_choice": {
		"Win with a safe, small hand": {-2, -1},
		"Win with an all-in bluff":    {2, 1},
	},
	"busted_reaction": {
		"Buy back in right away":                 {1.5, 0.5},
		"Rail a friend and read the table":       {-0.5, 1},
		"Run the bust-out hand through a solver": {-1, -1.5},
		"Call it a night and protect the roll":   {-1.5, -0.5},
	},
	"preferred_opponent": {
		"The maniac who three-bets blind":        {1.5, 0.5},
		"The rock you can read like a book":      {0.5, 1.5},
		"The regular who plays by the chart":     {-0.5, -1.5},
		"Nobody special, I just want soft games": {-1.5, -0.5},
	},
	"prep_ritual": {
		"One last pass over my ranges":                        {-0.5, -2},
		"Psyching myself up to play fearless":                 {2, 1},
		"Setting a hard stop-loss for the night":              {-2, -0.5},
		"Nothing, I trust the feel once cards are in the air": {0.5, 2},
	},
}

type axisTag int

const (
	axisX axisTag = iota
	axisY
)

// sliderRule feeds a piecewise-linear curve of the raw position into a
// single axis. ceil is the curve's absolute ceiling and doubles as the
// declared maximum.
type sliderRule struct {
	axis  axisTag
	ceil  float64
	curve func(v int) float64
}

var sliderRules = map[string]sliderRule{
	// Shallow buy-ins read as risk-averse, a flat zone covers the
	// unremarkable middle, and effect ramps up with depth from there.
	"comfort_buyin": {axis: axisX, ceil: 2, curve: rampCurve(30, 40, 150, -2, 2)},
	// Counting pot odds every time is pure calculation, never is pure
	// instinct; a straight line between the two.
	"math_check": {axis: axisY, ceil: 1.5, curve: descendingCurve(0, 100, 1.5)},
}

// rampCurve holds at floor through lo, sits at zero through mid, then
// climbs linearly toward ceil at hi, clamped there.
func rampCurve(lo, mid, hi int, floor, ceil float64) func(int) float64 {
	span := float64(hi - mid)
	return func(v int) float64 {
		switch {
		case v <= lo:
			return floor
		case v <= mid:
			return 0
		default:
			return math.Min(ceil, float64(v-mid)/span*ceil)
		}
	}
}

// descendingCurve runs from +ceil at lo down to -ceil at hi.
func descendingCurve(lo, hi int, ceil float64) func(int) float64 {
	span := float64(hi - lo)
	return func(v int) float64 {
		return ceil - float64(v-lo)/span*(2*ceil)
	}
}
