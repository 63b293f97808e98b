package discover

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

func scoredCandidate(userID string, score int) *ScoredCandidate {
	return &ScoredCandidate{
		Profile:            &profile.Profile{UserID: userID},
		CompatibilityScore: score,
	}
}

func TestTierIndex(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{100, 0}, {81, 0},
		{80, 1}, {61, 1},
		{60, 2}, {41, 2},
		{40, 3}, {21, 3},
		{20, 4}, {0, 4},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			assert.Equal(t, tt.want, tierIndex(tt.score))
		})
	}
}

func TestRankWithRandomizationTierOrder(t *testing.T) {
	candidates := []*ScoredCandidate{
		scoredCandidate("low-1", 5),
		scoredCandidate("top-1", 95),
		scoredCandidate("mid-1", 50),
		scoredCandidate("top-2", 85),
		scoredCandidate("mid-2", 45),
		scoredCandidate("low-2", 15),
		scoredCandidate("top-3", 81),
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		ranked := RankWithRandomization(candidates, rng)
		require.Len(t, ranked, len(candidates))

		// A candidate from a higher band must never follow one from a
		// lower band, whatever the seed.
		for i := 1; i < len(ranked); i++ {
			prev := tierIndex(ranked[i-1].CompatibilityScore)
			curr := tierIndex(ranked[i].CompatibilityScore)
			assert.LessOrEqual(t, prev, curr,
				"seed %d: %s (score %d) ranked before %s (score %d)",
				seed, ranked[i-1].UserID, ranked[i-1].CompatibilityScore,
				ranked[i].UserID, ranked[i].CompatibilityScore)
		}
	}
}

func TestRankWithRandomizationShufflesWithinTier(t *testing.T) {
	candidates := make([]*ScoredCandidate, 10)
	for i := range candidates {
		candidates[i] = scoredCandidate(fmt.Sprintf("user-%d", i), 90)
	}

	orders := make(map[string]bool)
	for seed := int64(0); seed < 10; seed++ {
		ranked := RankWithRandomization(candidates, rand.New(rand.NewSource(seed)))

		key := ""
		for _, c := range ranked {
			key += c.UserID + ","
		}
		orders[key] = true
	}

	// Ten seeds over 10! possible orders virtually never collide into one
	assert.Greater(t, len(orders), 1, "expected different orders across seeds")
}

func TestRankWithRandomizationPreservesInput(t *testing.T) {
	candidates := []*ScoredCandidate{
		scoredCandidate("a", 90),
		scoredCandidate("b", 10),
		scoredCandidate("c", 50),
	}

	RankWithRandomization(candidates, rand.New(rand.NewSource(1)))

	assert.Equal(t, "a", candidates[0].UserID)
	assert.Equal(t, "b", candidates[1].UserID)
	assert.Equal(t, "c", candidates[2].UserID)
}

func TestRankWithRandomizationEmpty(t *testing.T) {
	ranked := RankWithRandomization(nil, rand.New(rand.NewSource(1)))
	assert.Empty(t, ranked)
}
