package scoring

import (
	"math"
	"tableread/internal/model"
)

const normScale = 10

// Aggregate folds one contribution per question into a profile. It
// walks the question set it is given, never a presentation order, so
// the result is order-independent. Partial answer sets are fine: absent
// answers contribute zero effect while the denominators keep counting
// every question, which pulls an incomplete run toward the neutral
// center rather than rescaling it.
func Aggregate(questions []model.Question, answers model.AnswerSet) model.Profile {
	var p model.Profile
	for _, q := range questions {
		c := Score(q, answers[q.ID])
		p.X += c.DX
		p.Y += c.DY
		p.MaxX += math.Abs(c.MaxDX)
		p.MaxY += math.Abs(c.MaxDY)
	}
	p.NormX = normalize(p.X, p.MaxX)
	p.NormY = normalize(p.Y, p.MaxY)
	p.Quadrant, p.Persona = Classify(p.NormX, p.NormY)
	return p
}

// Evaluate runs the full catalog through Aggregate.
func Evaluate(answers model.AnswerSet) model.Profile {
	return Aggregate(catalog, answers)
}

// normalize scales a raw axis sum into [-normScale, normScale] against
// the axis's theoretical maximum. An axis no question touches stays
// neutral.
func normalize(sum, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return clamp(sum/max*normScale, -normScale, normScale)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Classify maps a normalized point to its quadrant and persona. Ties on
// an axis land on the non-negative side.
func Classify(normX, normY float64) (model.Quadrant, string) {
	switch {
	case normX >= 0 && normY >= 0:
		return model.QuadrantTR, model.PersonaMaverick
	case normX >= 0:
		return model.QuadrantBR, model.PersonaTactician
	case normY >= 0:
		return model.QuadrantTL, model.PersonaSage
	default:
		return model.QuadrantBL, model.PersonaGuardian
	}
}
