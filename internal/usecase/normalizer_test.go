package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/synthetic"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

func testGenerator() *synthetic.Generator {
	return synthetic.New(synthetic.NewRand(9), clockwork.NewFakeClockAt(testNow))
}

func TestNormalizeMatch_ScoreResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fullTime match.UpstreamScore
		halfTime match.UpstreamScore
		wantHome int
		wantAway int
	}{
		{name: "full time wins", fullTime: match.UpstreamScore{Home: intPtr(3), Away: intPtr(1)}, halfTime: match.UpstreamScore{Home: intPtr(1), Away: intPtr(0)}, wantHome: 3, wantAway: 1},
		{name: "half time fallback", halfTime: match.UpstreamScore{Home: intPtr(1), Away: intPtr(2)}, wantHome: 1, wantAway: 2},
		{name: "partial full time", fullTime: match.UpstreamScore{Away: intPtr(2)}, halfTime: match.UpstreamScore{Home: intPtr(1), Away: intPtr(1)}, wantHome: 0, wantAway: 2},
		{name: "nothing", wantHome: 0, wantAway: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeMatch(match.UpstreamMatch{ID: 1, FullTime: tc.fullTime, HalfTime: tc.halfTime}, testGenerator(), testNow)
			if got.HomeScore != tc.wantHome || got.AwayScore != tc.wantAway {
				t.Fatalf("score=%d-%d want=%d-%d", got.HomeScore, got.AwayScore, tc.wantHome, tc.wantAway)
			}
		})
	}
}

func TestNormalizeMatch_Defaults(t *testing.T) {
	t.Parallel()

	got := normalizeMatch(match.UpstreamMatch{ID: 42, UTCDate: "not-a-date"}, testGenerator(), testNow)

	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Unknown Home Team", got.HomeTeam)
	assert.Equal(t, "Unknown Away Team", got.AwayTeam)
	assert.Equal(t, "Unknown League", got.League)
	assert.Equal(t, match.StatusUpcoming, got.Status)
	assert.Equal(t, testNow, got.MatchTime)
	assert.True(t, synthetic.PossessionRange.Contains(got.Stats.Possession))
}

func TestNormalizeMatch_MapsFields(t *testing.T) {
	t.Parallel()

	rec := match.UpstreamMatch{
		ID:          498112,
		UTCDate:     "2026-03-29T15:00:00Z",
		Status:      "FINISHED",
		HomeTeam:    "Arsenal FC",
		AwayTeam:    "Chelsea FC",
		FullTime:    match.UpstreamScore{Home: intPtr(2), Away: intPtr(2)},
		Competition: "Premier League",
		Area:        "England",
	}
	got := normalizeMatch(rec, testGenerator(), testNow)

	assert.Equal(t, "498112", got.ID)
	assert.Equal(t, "Arsenal FC", got.HomeTeam)
	assert.Equal(t, "Chelsea FC", got.AwayTeam)
	assert.Equal(t, match.StatusFinished, got.Status)
	assert.Equal(t, time.Date(2026, 3, 29, 15, 0, 0, 0, time.UTC), got.MatchTime)
	assert.Equal(t, "Premier League", got.League)
	assert.Equal(t, "England", got.Area)
}

func TestNormalizeMatchDetail_Defaults(t *testing.T) {
	t.Parallel()

	rec := match.UpstreamMatch{
		Status:   "PAUSED",
		HalfTime: match.UpstreamScore{Home: intPtr(1)},
	}
	got := normalizeMatchDetail(rec, "777", testGenerator(), testNow)

	assert.Equal(t, "777", got.ID)
	assert.Equal(t, match.StatusHalfTime, got.Status)
	assert.Equal(t, match.ScoreLine{}, got.Score.FullTime)
	assert.Equal(t, match.ScoreLine{Home: 1}, got.Score.HalfTime)
	assert.Equal(t, "Unknown Stadium", got.Venue)
	assert.Equal(t, "Unknown Referee", got.Referee)
	assert.Equal(t, "Unknown League", got.League)
	assert.Equal(t, 1, got.Matchday)
	assert.NotEmpty(t, got.Events)
	assert.Len(t, got.Lineups.Home, 11)
	assert.Equal(t, "Unknown Home Team Striker", got.Events[0].Player)
}

func TestNormalizeMatchDetail_MapsFields(t *testing.T) {
	t.Parallel()

	rec := match.UpstreamMatch{
		ID:          330299,
		UTCDate:     "2026-03-01 20:00:00",
		Status:      "IN_PLAY",
		Matchday:    intPtr(27),
		HomeTeam:    "FC Barcelona",
		AwayTeam:    "Sevilla FC",
		FullTime:    match.UpstreamScore{Home: intPtr(2), Away: intPtr(0)},
		HalfTime:    match.UpstreamScore{Home: intPtr(1), Away: intPtr(0)},
		Competition: "Primera Division",
		Area:        "Spain",
		Venue:       "Estadi Olímpic Lluís Companys",
		Referees: []match.UpstreamReferee{
			{Name: "Assistant One", Type: "ASSISTANT_REFEREE_N1"},
			{Name: "José Sánchez", Type: "REFEREE"},
		},
	}
	got := normalizeMatchDetail(rec, "ignored", testGenerator(), testNow)

	assert.Equal(t, "330299", got.ID)
	assert.Equal(t, match.StatusLive, got.Status)
	assert.Equal(t, 27, got.Matchday)
	assert.Equal(t, match.ScoreLine{Home: 2}, got.Score.FullTime)
	assert.Equal(t, match.ScoreLine{Home: 1}, got.Score.HalfTime)
	assert.Equal(t, "José Sánchez", got.Referee)
	assert.Equal(t, "Estadi Olímpic Lluís Companys", got.Venue)
	assert.Equal(t, time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC), got.MatchTime)
}

func TestResolveReferee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  match.UpstreamMatch
		want string
	}{
		{name: "main referee preferred", rec: match.UpstreamMatch{Referees: []match.UpstreamReferee{{Name: "A", Type: "VAR"}, {Name: "B", Type: "REFEREE"}}}, want: "B"},
		{name: "first listed fallback", rec: match.UpstreamMatch{Referees: []match.UpstreamReferee{{Name: "A", Type: "VAR"}}}, want: "A"},
		{name: "plain field", rec: match.UpstreamMatch{Referee: "Anthony Taylor"}, want: "Anthony Taylor"},
		{name: "sentinel", rec: match.UpstreamMatch{}, want: "Unknown Referee"},
	}

	for _, tc := range tests {
		if got := resolveReferee(tc.rec); got != tc.want {
			t.Fatalf("%s: got=%q want=%q", tc.name, got, tc.want)
		}
	}
}
