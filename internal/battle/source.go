package battle

// Source supplies the random trials a battle consumes. *math/rand.Rand
// satisfies it. The engine never creates a generator on its own; callers
// inject one so runs are replayable and parallel battles never share state.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// binomial counts successes over n independent trials at probability p.
// n <= 0 or p <= 0 returns 0 without touching src; otherwise exactly n
// values are consumed, with p capped at 1.
func binomial(src Source, n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p > 1 {
		p = 1
	}
	successes := 0
	for i := 0; i < n; i++ {
		if src.Float64() < p {
			successes++
		}
	}
	return successes
}

// multinomial spreads n trials across buckets proportionally to weights,
// consuming one value per trial. The returned counts sum to n exactly.
// n <= 0 or a non-positive total weight returns nil without touching src.
func multinomial(src Source, n int, weights []int) []int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if n <= 0 || total <= 0 {
		return nil
	}
	counts := make([]int, len(weights))
	for i := 0; i < n; i++ {
		roll := src.Intn(total)
		for j, w := range weights {
			if w <= 0 {
				continue
			}
			if roll < w {
				counts[j]++
				break
			}
			roll -= w
		}
	}
	return counts
}
