package econ

// GlobalCap bounds the composed multiplier no matter how the individual
// factors stack. Clamping happens once, at the end.
const GlobalCap = 10.0

// PrestigeIncrement reports the per-level compounding rate used when a
// prestige is triggered at the given new level.
func PrestigeIncrement(level int) float64 {
	switch {
	case level <= 5:
		return 1.25
	case level <= 20:
		return 1.18
	default:
		return 1.12
	}
}

// PrestigeMultiplier compounds the tiered per-level rates: levels 1-5
// at 1.25, 6-20 at 1.18, beyond at 1.12.
func PrestigeMultiplier(level int) float64 {
	mult := 1.0
	for i := 1; i <= level; i++ {
		mult *= PrestigeIncrement(i)
	}
	return mult
}

// Compose folds every global factor into one multiplier:
// prestige x (1 + additive bonuses) x phase x sentiment x efficiency x
// events, clamped to [0, GlobalCap].
func Compose(prestigeLevel int, additiveBonus, phaseMult, sentimentMult, efficiencyMult, eventMult float64) float64 {
	mult := PrestigeMultiplier(prestigeLevel)
	mult *= 1 + additiveBonus
	mult *= phaseMult
	mult *= sentimentMult
	mult *= efficiencyMult
	mult *= eventMult
	if mult < 0 {
		return 0
	}
	if mult > GlobalCap {
		return GlobalCap
	}
	return mult
}
