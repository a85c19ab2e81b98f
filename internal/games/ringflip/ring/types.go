package ring

// Type is the special behaviour of a ring, fixed at spawn.
type Type int

const (
	Normal Type = iota
	ColorChange
	Slanted
	Shield
	GravityFlip
)

func (t Type) String() string {
	switch t {
	case Normal:
		return "normal"
	case ColorChange:
		return "color-change"
	case Slanted:
		return "slanted"
	case Shield:
		return "shield"
	case GravityFlip:
		return "gravity-flip"
	default:
		return "unknown"
	}
}

type threshold struct {
	below float64
	typ   Type
}

// Cumulative distributions over a single uniform draw in [0,1). Inverted
// gravity favours GravityFlip so the player is offered a way back.
var (
	normalGravityTable = []threshold{
		{0.65, Normal},
		{0.75, ColorChange},
		{0.85, Slanted},
		{0.90, Shield},
		{1.00, GravityFlip},
	}
	invertedGravityTable = []threshold{
		{0.40, GravityFlip},
		{0.70, Normal},
		{0.80, ColorChange},
		{0.90, Slanted},
		{1.00, Shield},
	}
)

// TypeFor maps a uniform draw r in [0,1) to a ring type.
func TypeFor(r float64, inverted bool) Type {
	table := normalGravityTable
	if inverted {
		table = invertedGravityTable
	}
	for _, th := range table {
		if r < th.below {
			return th.typ
		}
	}
	return table[len(table)-1].typ
}
