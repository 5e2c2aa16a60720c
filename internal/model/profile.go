package model

// Contribution is one question's scored effect: signed deltas on both
// axes plus the largest absolute effect the question could have produced.
// Ephemeral; never stored.
type Contribution struct {
	DX    float64 `json:"dx"`
	DY    float64 `json:"dy"`
	MaxDX float64 `json:"maxDx"`
	MaxDY float64 `json:"maxDy"`
}

// Quadrant tags one of the four regions of the profile plane
type Quadrant string

const (
	QuadrantTR Quadrant = "TR"
	QuadrantBR Quadrant = "BR"
	QuadrantTL Quadrant = "TL"
	QuadrantBL Quadrant = "BL"
)

// Persona names for each quadrant
const (
	PersonaMaverick  = "Maverick"
	PersonaTactician = "Tactician"
	PersonaSage      = "Sage"
	PersonaGuardian  = "Guardian"
)

// Profile is the two-axis read of a completed session. X is risk
// appetite (right = daring), Y is decision style (up = instinct,
// down = calculation). Immutable once computed.
type Profile struct {
	X        float64  `json:"x" bson:"x"`       // raw sum
	Y        float64  `json:"y" bson:"y"`       // raw sum
	MaxX     float64  `json:"maxX" bson:"maxX"` // full-catalog maximum
	MaxY     float64  `json:"maxY" bson:"maxY"` // full-catalog maximum
	NormX    float64  `json:"normX" bson:"normX"`
	NormY    float64  `json:"normY" bson:"normY"`
	Quadrant Quadrant `json:"quadrant" bson:"quadrant"`
	Persona  string   `json:"persona" bson:"persona"`
}
