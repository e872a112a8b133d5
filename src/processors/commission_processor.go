package processors

import (
	"fmt"
	"math"
)

const (
	// BaseCommission is paid on every case regardless of bonus structure.
	BaseCommission = 125.0

	// bonusUnit accrues once per whole target multiple above the threshold.
	bonusUnit = 10.0
)

// BonusStructure selects which tiered bonus scheme applies to a case.
type BonusStructure int

const (
	BonusNone BonusStructure = iota
	BonusStructure1
	BonusStructure2
)

type bonusTier struct {
	threshold float64
	target    float64
}

var bonusTiers = map[BonusStructure]bonusTier{
	BonusStructure1: {threshold: 100000, target: 10000},
	BonusStructure2: {threshold: 250000, target: 50000},
}

// ParseBonusStructure maps the request/flag value to a structure.
func ParseBonusStructure(s string) (BonusStructure, error) {
	switch s {
	case "", "none":
		return BonusNone, nil
	case "1":
		return BonusStructure1, nil
	case "2":
		return BonusStructure2, nil
	default:
		return BonusNone, fmt.Errorf("unknown bonus structure: %q", s)
	}
}

func (b BonusStructure) String() string {
	switch b {
	case BonusStructure1:
		return "1"
	case BonusStructure2:
		return "2"
	default:
		return "none"
	}
}

// Bonus computes the tiered bonus for a case value against one tier: zero at
// or below the threshold, then bonusUnit per whole multiple of target above
// it. Partial multiples earn nothing.
func Bonus(amount, threshold, target float64) float64 {
	if amount <= threshold {
		return 0
	}
	return math.Floor((amount-threshold)/target) * bonusUnit
}

// CalculateBonus dispatches on the selected structure. Structure 2 accrues
// the Structure 1 bonus on top of its own, both computed independently
// against the full case value.
func CalculateBonus(amount float64, structure BonusStructure) float64 {
	switch structure {
	case BonusStructure1:
		t := bonusTiers[BonusStructure1]
		return Bonus(amount, t.threshold, t.target)
	case BonusStructure2:
		t1 := bonusTiers[BonusStructure1]
		t2 := bonusTiers[BonusStructure2]
		return Bonus(amount, t1.threshold, t1.target) + Bonus(amount, t2.threshold, t2.target)
	default:
		return 0
	}
}
