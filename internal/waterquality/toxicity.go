package waterquality

import "math"

// UnionizedAmmoniaLimitPPM is the fixed toxicity threshold for unionized
// NH₃. Any concentration above it is reported as too_high regardless of the
// tank's configured ammonia band.
const UnionizedAmmoniaLimitPPM = 0.02

// UnionizedFraction returns the fraction of total ammonia present as toxic
// unionized NH₃ at the given pH and temperature. The pKa approximation is
// valid across typical aquarium temperatures; the fraction rises with both
// pH and warmth.
func UnionizedFraction(ph, tempC float64) float64 {
	pka := 0.09018 + 2729.92/(273.15+tempC)
	return 1 / (1 + math.Pow(10, pka-ph))
}

// UnionizedAmmonia converts a total ammonia reading (NH₃ + NH₄⁺, in ppm)
// into the unionized NH₃ concentration in ppm.
func UnionizedAmmonia(totalPPM, ph, tempC float64) float64 {
	return totalPPM * UnionizedFraction(ph, tempC)
}
