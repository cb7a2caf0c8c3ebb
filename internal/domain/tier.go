// internal/domain/tier.go
package domain

// Tier is one of five totally ordered difficulty levels. It doubles as a
// movement attribute (how hard the movement itself is) and as a scaling
// target (how hard the prescribed workout should be).
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
	TierRx           Tier = "rx"
	TierRxPlus       Tier = "rx_plus"
)

// AllTiers lists the tiers in ascending difficulty order.
var AllTiers = []Tier{TierBeginner, TierIntermediate, TierAdvanced, TierRx, TierRxPlus}

// Index returns the tier's position in the total order
// (Beginner=0 … RxPlus=4). An unrecognized value is treated as Rx so a bad
// record degrades to the benchmark rather than failing a whole scaling pass.
func (t Tier) Index() int {
	switch t {
	case TierBeginner:
		return 0
	case TierIntermediate:
		return 1
	case TierAdvanced:
		return 2
	case TierRx:
		return 3
	case TierRxPlus:
		return 4
	default:
		return 3
	}
}

// Valid reports whether t is one of the five known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierBeginner, TierIntermediate, TierAdvanced, TierRx, TierRxPlus:
		return true
	}
	return false
}

// Label returns the display form of the tier, e.g. "Rx+".
func (t Tier) Label() string {
	switch t {
	case TierBeginner:
		return "Beginner"
	case TierIntermediate:
		return "Intermediate"
	case TierAdvanced:
		return "Advanced"
	case TierRx:
		return "Rx"
	case TierRxPlus:
		return "Rx+"
	default:
		return string(t)
	}
}
