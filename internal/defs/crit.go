// internal/defs/crit.go
package defs

import "math"

// CritTier — порог максимального здоровья врага и шанс максимального удара.
// Тир подходит, если MaxHP врага <= UpTo.
type CritTier struct {
	UpTo   int
	Chance float64
}

// CritTiers is evaluated top to bottom; the first matching tier wins.
// maxHp == 8 falls into the middle tier.
var CritTiers = []CritTier{
	{UpTo: 5, Chance: 0.10},
	{UpTo: 8, Chance: 0.20},
	{UpTo: math.MaxInt, Chance: 0.30},
}

// CritChance returns the max-hit probability for an enemy with the given max hp.
func CritChance(maxHP int) float64 {
	for _, tier := range CritTiers {
		if maxHP <= tier.UpTo {
			return tier.Chance
		}
	}
	return CritTiers[len(CritTiers)-1].Chance
}
