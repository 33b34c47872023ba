package transform

// Source is the random generator used by the operators. *math/rand.Rand implements it.
type Source interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// Intn returns a number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// intRange draws an integer in [lo, hi), or returns lo when the range is empty.
func intRange(rng Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo)
}
