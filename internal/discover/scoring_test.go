package discover

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

func testProfile(userID string, mutate func(*profile.Profile)) *profile.Profile {
	p := &profile.Profile{
		UserID:            userID,
		Birthdate:         time.Date(2004, time.June, 15, 0, 0, 0, 0, time.UTC),
		Gender:            "female",
		SexualOrientation: "straight",
		UniversityID:      "uni-1",
		Interests:         pq.StringArray{"music", "hiking", "cooking"},
		GenderPreference:  pq.StringArray{"male"},
		MinAge:            18,
		MaxAge:            25,
		Intent:            profile.IntentSeriousRelationship,
	}
	if mutate != nil {
		mutate(p)
	}
	return p
}

func TestSharedInterestsScore(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical sets", []string{"music", "hiking"}, []string{"music", "hiking"}, 1.0},
		{"disjoint sets", []string{"music"}, []string{"chess"}, 0.0},
		{"one shared of four", []string{"music", "hiking"}, []string{"music", "chess", "films"}, 0.25},
		{"empty side scores zero", nil, []string{"music"}, 0.0},
		{"both empty score zero", nil, nil, 0.0},
		{"case and whitespace insensitive", []string{" Music ", "HIKING"}, []string{"music", "hiking"}, 1.0},
		{"duplicates count once", []string{"music", "music"}, []string{"music"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SharedInterestsScore(tt.a, tt.b), 1e-9)
		})
	}
}

func TestIntentScore(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"same intent", profile.IntentSeriousRelationship, profile.IntentSeriousRelationship, 1.0},
		{"serious vs casual", profile.IntentSeriousRelationship, profile.IntentCasualDating, 0.4},
		{"symmetric lookup", profile.IntentCasualDating, profile.IntentSeriousRelationship, 0.4},
		{"casual vs hookup", profile.IntentCasualDating, profile.IntentHookup, 0.8},
		{"friendship vs study partner", profile.IntentFriendship, profile.IntentStudyPartner, 0.7},
		{"both unsure", profile.IntentUnsure, profile.IntentUnsure, 0.6},
		{"missing intent is neutral", "", profile.IntentHookup, neutralIntentScore},
		{"unknown intent is neutral", "something_else", profile.IntentHookup, neutralIntentScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IntentScore(tt.a, tt.b), 1e-9)
		})
	}
}

func TestOrientationScore(t *testing.T) {
	anyGender := []string{"male", "female", "non-binary"}

	tests := []struct {
		name         string
		oa, ob       string
		ga, gb       string
		prefA, prefB []string
		want         float64
	}{
		{
			"gender preference gate beats everything",
			"straight", "straight", "female", "male",
			[]string{"female"}, []string{"female"},
			genderMismatchScore,
		},
		{
			"identical orientations, different genders",
			"straight", "straight", "female", "male",
			[]string{"male"}, []string{"female"},
			1.0,
		},
		{
			"two straight people of the same gender",
			"straight", "straight", "female", "female",
			anyGender, anyGender,
			sameGenderHeteroScore,
		},
		{
			"open orientation on either side",
			"bisexual", "straight", "female", "male",
			[]string{"male"}, anyGender,
			openOrientationScore,
		},
		{
			"hetero and gay across binary genders",
			"straight", "gay", "female", "male",
			[]string{"male"}, anyGender,
			heteroHomoCrossScore,
		},
		{
			"unmapped pairing is neutral",
			"asexual", "straight", "female", "male",
			[]string{"male"}, []string{"female"},
			neutralOrientationScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrientationScore(tt.oa, tt.ob, tt.ga, tt.gb, tt.prefA, tt.prefB)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompatibilityScore(t *testing.T) {
	t.Run("worked composite", func(t *testing.T) {
		// One shared interest out of three distinct, same intent, mutually
		// compatible straight man and woman: 0.6/3 + 0.25 + 0.15 = 0.60.
		a := testProfile("a", func(p *profile.Profile) {
			p.Interests = pq.StringArray{"music", "hiking"}
		})
		b := testProfile("b", func(p *profile.Profile) {
			p.Gender = "male"
			p.GenderPreference = pq.StringArray{"female"}
			p.Interests = pq.StringArray{"music", "chess"}
		})

		assert.Equal(t, 60, CompatibilityScore(a, b))
	})

	t.Run("perfect pair scores 100", func(t *testing.T) {
		a := testProfile("a", nil)
		b := testProfile("b", func(p *profile.Profile) {
			p.Gender = "male"
			p.GenderPreference = pq.StringArray{"female"}
		})

		assert.Equal(t, 100, CompatibilityScore(a, b))
	})

	t.Run("symmetry", func(t *testing.T) {
		a := testProfile("a", func(p *profile.Profile) {
			p.Intent = profile.IntentCasualDating
		})
		b := testProfile("b", func(p *profile.Profile) {
			p.Gender = "male"
			p.GenderPreference = pq.StringArray{"female"}
			p.Interests = pq.StringArray{"hiking", "films"}
			p.Intent = profile.IntentHookup
		})

		assert.Equal(t, CompatibilityScore(a, b), CompatibilityScore(b, a))
	})

	t.Run("always within bounds", func(t *testing.T) {
		a := testProfile("a", func(p *profile.Profile) {
			p.Interests = nil
			p.Intent = ""
			p.GenderPreference = pq.StringArray{"female"}
		})
		b := testProfile("b", nil)

		score := CompatibilityScore(a, b)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	})
}
