// internal/discover/ranking.go
// Tiered randomized ranking: candidates are grouped into fixed score bands,
// shuffled within each band, and concatenated high-to-low. A candidate in a
// higher band never appears after one in a lower band; order within a band
// is uniformly random per call.

package discover

import "math/rand"

// tierFloors are the inclusive lower bounds of the five score bands:
// [81,100] [61,80] [41,60] [21,40] [0,20].
var tierFloors = [5]int{81, 61, 41, 21, 0}

// tierIndex returns the band a score belongs to, 0 being the highest
func tierIndex(score int) int {
	for i, floor := range tierFloors {
		if score >= floor {
			return i
		}
	}
	return len(tierFloors) - 1
}

// RankWithRandomization orders scored candidates by band, shuffling within
// each band using rng. The input slice is not modified.
func RankWithRandomization(candidates []*ScoredCandidate, rng *rand.Rand) []*ScoredCandidate {
	tiers := make([][]*ScoredCandidate, len(tierFloors))
	for _, candidate := range candidates {
		idx := tierIndex(candidate.CompatibilityScore)
		tiers[idx] = append(tiers[idx], candidate)
	}

	ranked := make([]*ScoredCandidate, 0, len(candidates))
	for _, tier := range tiers {
		shuffle(tier, rng)
		ranked = append(ranked, tier...)
	}

	return ranked
}

// shuffle performs an unbiased Fisher-Yates permutation in place
func shuffle(items []*ScoredCandidate, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
