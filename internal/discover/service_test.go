package discover

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmatch/campusmatch-backend/internal/common/apperr"
	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

type fakeProfileRepo struct {
	profiles   map[string]*profile.Profile
	candidates []*profile.Profile
	blocked    []string

	lastCriteria *profile.CandidateCriteria
}

func (f *fakeProfileRepo) GetProfileByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, apperr.NotFound("profile not found")
	}
	return p, nil
}

func (f *fakeProfileRepo) FindCandidates(ctx context.Context, criteria *profile.CandidateCriteria) ([]*profile.Profile, error) {
	f.lastCriteria = criteria
	return f.candidates, nil
}

func (f *fakeProfileRepo) FindBlockedUserIDs(ctx context.Context, userID string) ([]string, error) {
	return f.blocked, nil
}

type fakeLikeRepo struct {
	liked []string
}

func (f *fakeLikeRepo) FindLikedUserIDs(ctx context.Context, fromUserID string) ([]string, error) {
	return f.liked, nil
}

type fakeMatchRepo struct {
	matched []string
}

func (f *fakeMatchRepo) FindMatchedUserIDs(ctx context.Context, userID string) ([]string, error) {
	return f.matched, nil
}

func newTestService(profiles *fakeProfileRepo, likes *fakeLikeRepo, matches *fakeMatchRepo) *service {
	return &service{
		profiles: profiles,
		likes:    likes,
		matches:  matches,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(42))
		},
		now: func() time.Time {
			return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
		},
	}
}

func feedRequester() *profile.Profile {
	return testProfile("requester", func(p *profile.Profile) {
		p.GenderPreference = pq.StringArray{"male"}
	})
}

func feedCandidates(n int) []*profile.Profile {
	candidates := make([]*profile.Profile, n)
	for i := range candidates {
		candidates[i] = testProfile(fmt.Sprintf("candidate-%d", i), func(p *profile.Profile) {
			p.Gender = "male"
			p.GenderPreference = pq.StringArray{"female"}
		})
	}
	return candidates
}

func TestGetDiscoverProfilesUnknownRequester(t *testing.T) {
	svc := newTestService(&fakeProfileRepo{profiles: map[string]*profile.Profile{}}, &fakeLikeRepo{}, &fakeMatchRepo{})

	_, err := svc.GetDiscoverProfiles(context.Background(), "missing", 20, 0)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestGetDiscoverProfilesRequiresGenderPreference(t *testing.T) {
	requester := testProfile("requester", func(p *profile.Profile) {
		p.GenderPreference = nil
	})
	repo := &fakeProfileRepo{profiles: map[string]*profile.Profile{"requester": requester}}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	_, err := svc.GetDiscoverProfiles(context.Background(), "requester", 20, 0)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestGetDiscoverProfilesNegativeOffset(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*profile.Profile{"requester": feedRequester()}}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	_, err := svc.GetDiscoverProfiles(context.Background(), "requester", 20, -1)

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestGetDiscoverProfilesExclusionSet(t *testing.T) {
	repo := &fakeProfileRepo{
		profiles: map[string]*profile.Profile{"requester": feedRequester()},
		blocked:  []string{"blocked-1"},
	}
	svc := newTestService(repo, &fakeLikeRepo{liked: []string{"liked-1", "liked-2"}}, &fakeMatchRepo{matched: []string{"matched-1"}})

	_, err := svc.GetDiscoverProfiles(context.Background(), "requester", 20, 0)
	require.NoError(t, err)

	require.NotNil(t, repo.lastCriteria)
	assert.ElementsMatch(t, []string{"liked-1", "liked-2", "matched-1", "blocked-1"}, repo.lastCriteria.ExcludeUserIDs)
	assert.Equal(t, "uni-1", repo.lastCriteria.UniversityID)
	assert.Equal(t, candidatePoolLimit, repo.lastCriteria.Limit)
}

func TestGetDiscoverProfilesBirthdateWindow(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*profile.Profile{"requester": feedRequester()}}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	_, err := svc.GetDiscoverProfiles(context.Background(), "requester", 20, 0)
	require.NoError(t, err)

	require.NotNil(t, repo.lastCriteria)
	today := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	earliest, latest := BirthdateRange(18, 25, today)
	assert.Equal(t, earliest, repo.lastCriteria.EarliestBirthdate)
	assert.Equal(t, latest, repo.lastCriteria.LatestBirthdate)
	assert.Equal(t, Age(feedRequester().Birthdate, today), repo.lastCriteria.RequesterAge)
}

func TestGetDiscoverProfilesPagination(t *testing.T) {
	repo := &fakeProfileRepo{
		profiles:   map[string]*profile.Profile{"requester": feedRequester()},
		candidates: feedCandidates(25),
	}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	first, err := svc.GetDiscoverProfiles(context.Background(), "requester", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, first.Count)
	assert.True(t, first.HasMore)

	second, err := svc.GetDiscoverProfiles(context.Background(), "requester", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Count)
	assert.False(t, second.HasMore)

	beyond, err := svc.GetDiscoverProfiles(context.Background(), "requester", 10, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, beyond.Count)
	assert.False(t, beyond.HasMore)
	assert.NotNil(t, beyond.Profiles)
}

func TestGetDiscoverProfilesLimitClamping(t *testing.T) {
	repo := &fakeProfileRepo{
		profiles:   map[string]*profile.Profile{"requester": feedRequester()},
		candidates: feedCandidates(100),
	}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	resp, err := svc.GetDiscoverProfiles(context.Background(), "requester", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, resp.Limit)
	assert.Equal(t, DefaultLimit, resp.Count)

	resp, err = svc.GetDiscoverProfiles(context.Background(), "requester", 500, 0)
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, resp.Limit)
	assert.Equal(t, MaxLimit, resp.Count)
}

func TestGetDiscoverProfilesScoresAttached(t *testing.T) {
	repo := &fakeProfileRepo{
		profiles:   map[string]*profile.Profile{"requester": feedRequester()},
		candidates: feedCandidates(5),
	}
	svc := newTestService(repo, &fakeLikeRepo{}, &fakeMatchRepo{})

	resp, err := svc.GetDiscoverProfiles(context.Background(), "requester", 20, 0)
	require.NoError(t, err)
	require.Equal(t, 5, resp.Count)

	for _, candidate := range resp.Profiles {
		assert.GreaterOrEqual(t, candidate.CompatibilityScore, 0)
		assert.LessOrEqual(t, candidate.CompatibilityScore, 100)
	}
}
