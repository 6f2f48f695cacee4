package usecase

import (
	"context"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	matchmock "github.com/riskibarqy/soccer-stats/internal/mocks/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(provider match.Provider, credential string) *MatchService {
	return NewMatchService(provider, clockwork.NewFakeClockAt(testNow), logging.NewNop(), MatchServiceConfig{
		Credential:     credential,
		Competitions:   []string{"PL", "PD"},
		SyntheticCount: 10,
		SyntheticSeed:  17,
	})
}

func upstreamRecords() []match.UpstreamMatch {
	return []match.UpstreamMatch{
		{ID: 1, Status: "FINISHED", HomeTeam: "Arsenal FC", AwayTeam: "Chelsea FC", Competition: "Premier League", Area: "England", FullTime: match.UpstreamScore{Home: intPtr(1), Away: intPtr(0)}},
		{ID: 2, Status: "TIMED", HomeTeam: "Girona FC", AwayTeam: "Real Betis", Competition: "Primera Division", Area: "Spain"},
		{ID: 3, Status: "IN_PLAY", HomeTeam: "Everton FC", AwayTeam: "Fulham FC", Competition: "Premier League", Area: "England", HalfTime: match.UpstreamScore{Home: intPtr(0), Away: intPtr(1)}},
	}
}

func TestMatchService_ListMatches_NoCredentialSkipsUpstream(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	service := newTestService(provider, "  ")

	got, err := service.ListMatches(context.Background(), ListMatchesInput{})
	require.NoError(t, err)
	assert.Equal(t, SourceSynthetic, got.Source)
	assert.Len(t, got.Matches, 10)
	provider.AssertNotCalled(t, "FetchMatches", mock.Anything, mock.Anything, mock.Anything)
}

func TestMatchService_ListMatches_UpstreamNormalizesEveryRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := matchmock.NewProvider(t)
	service := newTestService(provider, "secret-token")

	provider.
		On("FetchMatches", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "secret-token", match.FetchParams{
			Competitions: []string{"PL", "PD"},
			DateFrom:     "2026-03-01",
			DateTo:       "2026-03-07",
		}).
		Return(upstreamRecords(), nil).
		Once()

	got, err := service.ListMatches(ctx, ListMatchesInput{DateFrom: "2026-03-01", DateTo: "2026-03-07"})
	require.NoError(t, err)
	require.Equal(t, SourceUpstream, got.Source)
	require.Len(t, got.Matches, 3)

	assert.Equal(t, "1", got.Matches[0].ID)
	assert.Equal(t, match.StatusFinished, got.Matches[0].Status)
	assert.Equal(t, 1, got.Matches[0].HomeScore)
	assert.Equal(t, match.StatusUpcoming, got.Matches[1].Status)
	assert.Equal(t, match.StatusLive, got.Matches[2].Status)
	assert.Equal(t, 1, got.Matches[2].AwayScore)
}

func TestMatchService_ListMatches_FiltersUpstreamResult(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	service := newTestService(provider, "secret-token")

	provider.
		On("FetchMatches", mock.Anything, "secret-token", mock.Anything).
		Return(upstreamRecords(), nil).
		Once()

	got, err := service.ListMatches(context.Background(), ListMatchesInput{League: "Premier", Status: "live"})
	require.NoError(t, err)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "3", got.Matches[0].ID)
}

func TestMatchService_ListMatches_FallbackReasons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []match.UpstreamMatch
		err     error
	}{
		{name: "transport", err: crerr.Wrap(match.ErrUpstreamTransport, "send request")},
		{name: "status", err: &match.UpstreamStatusError{StatusCode: 429, Body: "too many requests"}},
		{name: "empty", records: []match.UpstreamMatch{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := matchmock.NewProvider(t)
			service := newTestService(provider, "secret-token")
			provider.
				On("FetchMatches", mock.Anything, "secret-token", mock.Anything).
				Return(tc.records, tc.err).
				Once()

			got, err := service.ListMatches(context.Background(), ListMatchesInput{})
			require.NoError(t, err)
			assert.Equal(t, SourceSynthetic, got.Source)

			// Same shape as the no-credential path.
			baseline, err := newTestService(matchmock.NewProvider(t), "").ListMatches(context.Background(), ListMatchesInput{})
			require.NoError(t, err)
			assert.Equal(t, baseline.Matches, got.Matches)
		})
	}
}

func TestMatchService_ListMatches_StatusAndLimitOnSynthetic(t *testing.T) {
	t.Parallel()

	service := newTestService(matchmock.NewProvider(t), "")

	got, err := service.ListMatches(context.Background(), ListMatchesInput{Status: "FT", Limit: 1})
	require.NoError(t, err)
	require.Len(t, got.Matches, 1)
	assert.Equal(t, match.StatusFinished, got.Matches[0].Status)
}

func TestMatchService_ListMatches_DefaultLimit(t *testing.T) {
	t.Parallel()

	service := NewMatchService(matchmock.NewProvider(t), clockwork.NewFakeClockAt(testNow), logging.NewNop(), MatchServiceConfig{
		SyntheticCount: 80,
	})

	got, err := service.ListMatches(context.Background(), ListMatchesInput{Limit: -4})
	require.NoError(t, err)
	assert.Len(t, got.Matches, match.DefaultLimit)
}

func TestMatchService_GetMatchDetail_RequiresID(t *testing.T) {
	t.Parallel()

	service := newTestService(matchmock.NewProvider(t), "secret-token")

	_, err := service.GetMatchDetail(context.Background(), "   ")
	if !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_GetMatchDetail_NoCredential(t *testing.T) {
	t.Parallel()

	service := newTestService(matchmock.NewProvider(t), "")

	got, err := service.GetMatchDetail(context.Background(), "101")
	require.NoError(t, err)
	assert.Equal(t, "101", got.ID)
	assert.NotEmpty(t, got.Events)
	for i := 1; i < len(got.Events); i++ {
		if got.Events[i-1].Minute > got.Events[i].Minute {
			t.Fatalf("events not ordered at %d", i)
		}
	}
}

func TestMatchService_GetMatchDetail_Upstream(t *testing.T) {
	t.Parallel()

	provider := matchmock.NewProvider(t)
	service := newTestService(provider, "secret-token")

	provider.
		On("FetchMatch", mock.Anything, "secret-token", "498112").
		Return(match.UpstreamMatch{
			ID:          498112,
			Status:      "FINISHED",
			HomeTeam:    "Liverpool FC",
			AwayTeam:    "Brentford FC",
			Competition: "Premier League",
			Venue:       "Anfield",
			FullTime:    match.UpstreamScore{Home: intPtr(3), Away: intPtr(0)},
		}, true, nil).
		Once()

	got, err := service.GetMatchDetail(context.Background(), "498112")
	require.NoError(t, err)
	assert.Equal(t, "498112", got.ID)
	assert.Equal(t, "Liverpool FC", got.HomeTeam)
	assert.Equal(t, "Anfield", got.Venue)
	assert.Equal(t, match.StatusFinished, got.Status)
	assert.Equal(t, match.ScoreLine{Home: 3}, got.Score.FullTime)
}

func TestMatchService_GetMatchDetail_FallbackMatchesGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		found bool
		err   error
	}{
		{name: "not found", found: false},
		{name: "status", err: &match.UpstreamStatusError{StatusCode: 404}},
		{name: "transport", err: crerr.Wrap(match.ErrUpstreamTransport, "read response body")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			provider := matchmock.NewProvider(t)
			service := newTestService(provider, "secret-token")
			provider.
				On("FetchMatch", mock.Anything, "secret-token", "205").
				Return(match.UpstreamMatch{}, tc.found, tc.err).
				Once()

			got, err := service.GetMatchDetail(context.Background(), "205")
			require.NoError(t, err)

			want, err := newTestService(matchmock.NewProvider(t), "").GetMatchDetail(context.Background(), "205")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
