package scoring

import (
	"math"
	"tableread/internal/model"
)

// agreeMidpoint centers the 1-5 agreement scale; 3 is neutral.
const agreeMidpoint = 3

// Score maps one question and its raw answer to a weighted contribution
// on the two axes. It is total: missing, wrong-typed, out-of-range and
// unrecognized answers yield zero effect, and question IDs with no
// weight rule yield the all-zero contribution. The declared maxima
// depend only on the question's rule, never on the answer.
func Score(q model.Question, raw model.ResponseValue) model.Contribution {
	switch q.Modality {
	case model.ModalityAgree:
		return scoreAgree(q, raw)
	case model.ModalityChoice:
		return scoreChoice(q, raw)
	case model.ModalitySlider:
		return scoreSlider(q, raw)
	default:
		return model.Contribution{}
	}
}

func scoreAgree(q model.Question, raw model.ResponseValue) model.Contribution {
	rule, ok := agreeRules[q.ID]
	if !ok {
		return model.Contribution{}
	}
	c := model.Contribution{MaxDX: 2 * math.Abs(rule.wx), MaxDY: 2 * math.Abs(rule.wy)}
	if raw.Scale == nil {
		return c
	}
	v := *raw.Scale
	if v < q.ScaleMin || v > q.ScaleMax {
		return c
	}
	s := float64(v - agreeMidpoint)
	c.DX = s * rule.wx
	c.DY = s * rule.wy
	return c
}

func scoreChoice(q model.Question, raw model.ResponseValue) model.Contribution {
	table, ok := choiceRules[q.ID]
	if !ok {
		return model.Contribution{}
	}
	var c model.Contribution
	for _, d := range table {
		c.MaxDX = math.Max(c.MaxDX, math.Abs(d.dx))
		c.MaxDY = math.Max(c.MaxDY, math.Abs(d.dy))
	}
	if d, ok := table[raw.Option]; ok {
		c.DX = d.dx
		c.DY = d.dy
	}
	return c
}

func scoreSlider(q model.Question, raw model.ResponseValue) model.Contribution {
	rule, ok := sliderRules[q.ID]
	if !ok {
		return model.Contribution{}
	}
	var c model.Contribution
	if rule.axis == axisX {
		c.MaxDX = rule.ceil
	} else {
		c.MaxDY = rule.ceil
	}
	if raw.Slider == nil {
		return c
	}
	v := *raw.Slider
	if v < q.ScaleMin || v > q.ScaleMax {
		return c
	}
	if rule.axis == axisX {
		c.DX = rule.curve(v)
	} else {
		c.DY = rule.curve(v)
	}
	return c
}
