package scoring

import (
	"math"
	"tableread/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxXAnswers pushes every question to its strongest positive-X value.
func maxXAnswers() model.AnswerSet {
	set := model.AnswerSet{}
	for id, r := range agreeRules {
		if r.wx >= 0 {
			set[id] = agree(5)
		} else {
			set[id] = agree(1)
		}
	}
	for id, table := range choiceRules {
		best, bestDX := "", math.Inf(-1)
		for opt, d := range table {
			if d.dx > bestDX {
				best, bestDX = opt, d.dx
			}
		}
		set[id] = choose(best)
	}
	set["comfort_buyin"] = slide(150)
	set["math_check"] = slide(0)
	return set
}

func TestEmptyAnswerSet(t *testing.T) {
	p := Evaluate(nil)

	assert.Equal(t, 0.0, p.NormX)
	assert.Equal(t, 0.0, p.NormY)
	assert.Equal(t, model.QuadrantTR, p.Quadrant)
	assert.Equal(t, model.PersonaMaverick, p.Persona)
	assert.Greater(t, p.MaxX, 0.0, "denominators count the full catalog even with no answers")
	assert.Greater(t, p.MaxY, 0.0)
}

func TestMidpointNeutral(t *testing.T) {
	set := model.AnswerSet{}
	for _, q := range Catalog() {
		switch q.Modality {
		case model.ModalityAgree:
			set[q.ID] = agree(3)
		case model.ModalityChoice:
			set[q.ID] = choose("pass")
		}
	}
	set["comfort_buyin"] = slide(35)
	set["math_check"] = slide(50)

	p := Evaluate(set)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 0.0, p.Y)
	assert.Equal(t, 0.0, p.NormX)
	assert.Equal(t, 0.0, p.NormY)
	assert.Equal(t, model.QuadrantTR, p.Quadrant)
}

func TestFixedDenominator(t *testing.T) {
	full := Evaluate(maxXAnswers())
	partial := Evaluate(model.AnswerSet{"bluff_thrill": agree(5)})
	empty := Evaluate(nil)

	assert.Equal(t, full.MaxX, partial.MaxX)
	assert.Equal(t, full.MaxY, partial.MaxY)
	assert.Equal(t, full.MaxX, empty.MaxX)
	assert.Equal(t, full.MaxY, empty.MaxY)

	assert.Equal(t, 2.0, partial.X)
	assert.Less(t, partial.NormX, 2.0, "a lone answer is pulled toward the center")
	assert.Greater(t, partial.NormX, 0.0)
}

func TestNormalizationSaturation(t *testing.T) {
	p := Evaluate(maxXAnswers())
	assert.Equal(t, 10.0, p.NormX, "every question at its positive-X extreme saturates the scale")
	assert.LessOrEqual(t, math.Abs(p.NormY), 10.0)
}

func TestNormalizeClamp(t *testing.T) {
	assert.Equal(t, 10.0, normalize(5, 1))
	assert.Equal(t, -10.0, normalize(-5, 1))
	assert.Equal(t, 5.0, normalize(1, 2))
	assert.Equal(t, 0.0, normalize(0, 0), "zero denominator stays neutral")
	assert.Equal(t, 0.0, normalize(3, 0))
}

func TestOrderIndependence(t *testing.T) {
	set := model.AnswerSet{
		"bluff_thrill":       agree(5),
		"solver_study":       agree(4),
		"bankroll_guard":     agree(2),
		"final_table_choice": choose("Win with a safe, small hand"),
		"comfort_buyin":      slide(95),
		"math_check":         slide(80),
	}

	qs := Catalog()
	rev := make([]model.Question, len(qs))
	for i, q := range qs {
		rev[len(qs)-1-i] = q
	}

	a := Aggregate(qs, set)
	b := Aggregate(rev, set)

	require.InDelta(t, a.NormX, b.NormX, 1e-9)
	require.InDelta(t, a.NormY, b.NormY, 1e-9)
	assert.Equal(t, a.Quadrant, b.Quadrant)
	assert.Equal(t, a.Persona, b.Persona)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		quad    model.Quadrant
		persona string
	}{
		{"origin ties up and right", 0, 0, model.QuadrantTR, model.PersonaMaverick},
		{"both positive", 4.2, 1.1, model.QuadrantTR, model.PersonaMaverick},
		{"x positive y negative", 3, -2, model.QuadrantBR, model.PersonaTactician},
		{"x tie y negative", 0, -0.1, model.QuadrantBR, model.PersonaTactician},
		{"x negative y tie", -1, 0, model.QuadrantTL, model.PersonaSage},
		{"x negative y positive", -5, 9, model.QuadrantTL, model.PersonaSage},
		{"both negative", -0.1, -0.1, model.QuadrantBL, model.PersonaGuardian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quad, persona := Classify(tt.x, tt.y)
			assert.Equal(t, tt.quad, quad)
			assert.Equal(t, tt.persona, persona)
		})
	}

	t.Run("sign flips move to the adjacent quadrant", func(t *testing.T) {
		tr, _ := Classify(3, 2)
		tl, _ := Classify(-3, 2)
		br, _ := Classify(3, -2)
		assert.Equal(t, model.QuadrantTR, tr)
		assert.Equal(t, model.QuadrantTL, tl)
		assert.Equal(t, model.QuadrantBR, br)
	})
}

func TestPersonaProfiles(t *testing.T) {
	merge := func(sets ...model.AnswerSet) model.AnswerSet {
		out := model.AnswerSet{}
		for _, s := range sets {
			for id, v := range s {
				out[id] = v
			}
		}
		return out
	}

	daring := model.AnswerSet{
		"bluff_thrill":     agree(5),
		"raise_first":      agree(5),
		"move_up_stakes":   agree(5),
		"certainty_first":  agree(1),
		"table_image_play": agree(5),
		"blind_defense":    agree(5),
		"comfort_buyin":    slide(150),
	}
	careful := model.AnswerSet{
		"bluff_thrill":     agree(1),
		"raise_first":      agree(1),
		"move_up_stakes":   agree(1),
		"certainty_first":  agree(5),
		"table_image_play": agree(1),
		"blind_defense":    agree(1),
		"comfort_buyin":    slide(25),
	}
	instinct := model.AnswerSet{
		"gut_call":         agree(5),
		"live_tells":       agree(5),
		"table_feel":       agree(5),
		"solver_study":     agree(1),
		"range_discipline": agree(1),
		"note_taking":      agree(1),
		"math_check":       slide(0),
	}
	calculating := model.AnswerSet{
		"gut_call":         agree(1),
		"live_tells":       agree(1),
		"table_feel":       agree(1),
		"solver_study":     agree(5),
		"range_discipline": agree(5),
		"note_taking":      agree(5),
		"math_check":       slide(100),
	}

	tests := []struct {
		name    string
		answers model.AnswerSet
		quad    model.Quadrant
		persona string
	}{
		{"daring instinct", merge(daring, instinct), model.QuadrantTR, model.PersonaMaverick},
		{"daring calculating", merge(daring, calculating), model.QuadrantBR, model.PersonaTactician},
		{"careful instinct", merge(careful, instinct), model.QuadrantTL, model.PersonaSage},
		{"careful calculating", merge(careful, calculating), model.QuadrantBL, model.PersonaGuardian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Evaluate(tt.answers)
			assert.Equal(t, tt.quad, p.Quadrant)
			assert.Equal(t, tt.persona, p.Persona)
		})
	}
}
