// internal/discover/scoring.go
// Pure compatibility scoring between two profiles. All functions are
// side-effect free; the composite score is an integer 0-100.

package discover

import (
	"math"
	"strings"

	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

// Composite score weights. They must sum to 1.0.
const (
	weightInterests   = 0.60
	weightIntent      = 0.25
	weightOrientation = 0.15
)

const (
	// neutralIntentScore applies when either intent is missing or the pair
	// has no entry in the compatibility matrix.
	neutralIntentScore = 0.4

	// genderMismatchScore is the floor returned when either party's gender
	// is outside the other's stated preference. Deliberately distinct from
	// the unknown/neutral scores.
	genderMismatchScore = 0.05

	// openOrientationScore applies when either orientation is broadly
	// compatible (bi/pan/queer/fluid).
	openOrientationScore = 0.9

	// heteroHomoCrossScore applies to a heterosexual paired with a
	// same-gender-attracted orientation across different binary genders.
	heteroHomoCrossScore = 0.8

	// sameGenderHeteroScore applies to two heterosexuals of the same gender
	sameGenderHeteroScore = 0.2

	// neutralOrientationScore applies to any other unmapped pairing
	neutralOrientationScore = 0.5
)

// intentMatrix holds pairwise intent affinity. Lookups go through
// intentScoreFor, which checks both orders, so only one half is listed.
var intentMatrix = map[string]map[string]float64{
	profile.IntentSeriousRelationship: {
		profile.IntentSeriousRelationship: 1.0,
		profile.IntentCasualDating:        0.4,
		profile.IntentFriendship:          0.3,
		profile.IntentStudyPartner:        0.2,
		profile.IntentHookup:              0.1,
		profile.IntentUnsure:              0.5,
	},
	profile.IntentCasualDating: {
		profile.IntentCasualDating:  1.0,
		profile.IntentFriendship:    0.5,
		profile.IntentStudyPartner:  0.3,
		profile.IntentHookup:        0.8,
		profile.IntentUnsure:        0.6,
	},
	profile.IntentFriendship: {
		profile.IntentFriendship:   1.0,
		profile.IntentStudyPartner: 0.7,
		profile.IntentHookup:       0.2,
		profile.IntentUnsure:       0.5,
	},
	profile.IntentStudyPartner: {
		profile.IntentStudyPartner: 1.0,
		profile.IntentHookup:       0.1,
		profile.IntentUnsure:       0.4,
	},
	profile.IntentHookup: {
		profile.IntentHookup: 1.0,
		profile.IntentUnsure: 0.5,
	},
	profile.IntentUnsure: {
		profile.IntentUnsure: 0.6,
	},
}

// SharedInterestsScore is the Jaccard similarity of the two interest sets.
// Either set being empty scores zero.
func SharedInterestsScore(interestsA, interestsB []string) float64 {
	if len(interestsA) == 0 || len(interestsB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(interestsA))
	for _, interest := range interestsA {
		setA[strings.ToLower(strings.TrimSpace(interest))] = true
	}

	setB := make(map[string]bool, len(interestsB))
	shared := 0
	for _, interest := range interestsB {
		key := strings.ToLower(strings.TrimSpace(interest))
		if setB[key] {
			continue
		}
		setB[key] = true
		if setA[key] {
			shared++
		}
	}

	union := len(setA) + len(setB) - shared
	if union == 0 {
		return 0
	}

	return float64(shared) / float64(union)
}

// IntentScore looks the pair up in the fixed symmetric intent matrix
func IntentScore(intentA, intentB string) float64 {
	if intentA == "" || intentB == "" {
		return neutralIntentScore
	}

	if score, ok := intentScoreFor(intentA, intentB); ok {
		return score
	}
	return neutralIntentScore
}

func intentScoreFor(a, b string) (float64, bool) {
	if row, ok := intentMatrix[a]; ok {
		if score, ok := row[b]; ok {
			return score, true
		}
	}
	if row, ok := intentMatrix[b]; ok {
		if score, ok := row[a]; ok {
			return score, true
		}
	}
	return 0, false
}

// Orientation groupings for the pairing table
func isOpenOrientation(orientation string) bool {
	switch orientation {
	case "bisexual", "pansexual", "queer", "fluid":
		return true
	}
	return false
}

func isHeterosexual(orientation string) bool {
	return orientation == "straight" || orientation == "heterosexual"
}

func isSameGenderAttracted(orientation string) bool {
	switch orientation {
	case "gay", "lesbian", "homosexual":
		return true
	}
	return false
}

func isBinaryGender(gender string) bool {
	return gender == "male" || gender == "female"
}

// OrientationScore scores orientation and gender-preference alignment.
// Mutual gender acceptance is a hard gate; failing it returns the mismatch
// floor regardless of orientations.
func OrientationScore(orientationA, orientationB, genderA, genderB string, prefA, prefB []string) float64 {
	if !containsFold(prefA, genderB) || !containsFold(prefB, genderA) {
		return genderMismatchScore
	}

	a := strings.ToLower(strings.TrimSpace(orientationA))
	b := strings.ToLower(strings.TrimSpace(orientationB))
	ga := strings.ToLower(strings.TrimSpace(genderA))
	gb := strings.ToLower(strings.TrimSpace(genderB))

	if a != "" && a == b {
		if isHeterosexual(a) && ga == gb {
			return sameGenderHeteroScore
		}
		return 1.0
	}

	if isOpenOrientation(a) || isOpenOrientation(b) {
		return openOrientationScore
	}

	crossPair := (isHeterosexual(a) && isSameGenderAttracted(b)) ||
		(isHeterosexual(b) && isSameGenderAttracted(a))
	if crossPair && ga != gb && isBinaryGender(ga) && isBinaryGender(gb) {
		return heteroHomoCrossScore
	}

	return neutralOrientationScore
}

// CompatibilityScore is the weighted composite of the three sub-scores,
// rounded to an integer 0-100.
func CompatibilityScore(a, b *profile.Profile) int {
	interests := SharedInterestsScore(a.Interests, b.Interests)
	intent := IntentScore(a.Intent, b.Intent)
	orientation := OrientationScore(
		a.SexualOrientation, b.SexualOrientation,
		a.Gender, b.Gender,
		a.GenderPreference, b.GenderPreference,
	)

	composite := weightInterests*interests + weightIntent*intent + weightOrientation*orientation

	score := int(math.Round(composite * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(target)) {
			return true
		}
	}
	return false
}
