package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	matchmock "github.com/riskibarqy/soccer-stats/internal/mocks/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/platform/logging"
	"github.com/riskibarqy/soccer-stats/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)

// newOfflineRouter serves synthetic data only. The provider mock fails the
// test if anything reaches the network layer.
func newOfflineRouter(t *testing.T) http.Handler {
	t.Helper()

	clock := clockwork.NewFakeClockAt(testNow)
	service := usecase.NewMatchService(matchmock.NewProvider(t), clock, logging.NewNop(), usecase.MatchServiceConfig{
		SyntheticSeed: 17,
	})
	handler := NewHandler(service, clock, match.DefaultLimit, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"})
}

func serve(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_ListMatchesWithoutCredential(t *testing.T) {
	router := newOfflineRouter(t)

	rec := serve(t, router, http.MethodGet, "/matches?status=FT&limit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, string(usecase.SourceSynthetic), rec.Header().Get("X-Data-Source"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body matchListResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, match.StatusFinished, body.Matches[0].Status)
	assert.True(t, body.Timestamp.Equal(testNow))
}

func TestRouter_ListMatchesLimitFallsBackToDefault(t *testing.T) {
	router := newOfflineRouter(t)

	for _, target := range []string{"/matches", "/matches?limit=abc", "/matches?limit=-3", "/.netlify/functions/getMatches?limit=0"} {
		rec := serve(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var body matchListResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 10, body.Count, target)
	}
}

func TestRouter_ListMatchesIgnoresInvalidDates(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   match.FetchParams
	}{
		{name: "bad dateFrom", target: "/matches?dateFrom=yesterday&dateTo=2026-03-07", want: match.FetchParams{DateTo: "2026-03-07"}},
		{name: "bad dateTo", target: "/matches?dateFrom=2026-03-01&dateTo=2026-13-40&limit=1", want: match.FetchParams{DateFrom: "2026-03-01"}},
		{name: "both bad", target: "/matches?dateFrom=14-03-2026&dateTo=soon", want: match.FetchParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := clockwork.NewFakeClockAt(testNow)
			provider := matchmock.NewProvider(t)
			provider.On("FetchMatches", mock.Anything, "token-abc", tt.want).Return([]match.UpstreamMatch{}, nil).Once()

			service := usecase.NewMatchService(provider, clock, logging.NewNop(), usecase.MatchServiceConfig{
				Credential:    "token-abc",
				SyntheticSeed: 17,
			})
			router := NewRouter(NewHandler(service, clock, match.DefaultLimit, logging.NewNop()), logging.NewNop(), []string{"*"})

			rec := serve(t, router, http.MethodGet, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var body matchListResponse
			require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotZero(t, body.Count)
		})
	}
}

func TestRouter_MatchPathsRejectOtherMethods(t *testing.T) {
	router := newOfflineRouter(t)

	for _, target := range []string{"/matches", "/matchDetails?matchId=101", "/.netlify/functions/getMatches"} {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			rec := serve(t, router, method, target)
			require.Equal(t, http.StatusMethodNotAllowed, rec.Code, method+" "+target)
			assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Allow"))
			assert.Equal(t, "Method not allowed", decodeError(t, rec))
		}
	}

	rec := serve(t, router, http.MethodPost, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_MatchDetailsRequiresID(t *testing.T) {
	router := newOfflineRouter(t)

	for _, target := range []string{"/matchDetails", "/matchDetails?matchId=", "/.netlify/functions/getMatchDetails?matchId=%20"} {
		rec := serve(t, router, http.MethodGet, target)
		require.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Match ID is required", decodeError(t, rec), target)
		assert.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"), target)
	}
}

func TestRouter_MatchDetailsWithoutCredential(t *testing.T) {
	router := newOfflineRouter(t)

	rec := serve(t, router, http.MethodGet, "/matchDetails?matchId=101")
	require.Equal(t, http.StatusOK, rec.Code)

	var detail match.MatchDetail
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "101", detail.ID)
	require.NotEmpty(t, detail.Events)
	for i := 1; i < len(detail.Events); i++ {
		assert.LessOrEqual(t, detail.Events[i-1].Minute, detail.Events[i].Minute)
	}
	assert.Len(t, detail.Lineups.Home, 11)
	assert.Len(t, detail.Lineups.Away, 11)
}

func TestRouter_Preflight(t *testing.T) {
	router := newOfflineRouter(t)

	targets := []string{
		"/matches",
		"/matches?league=x&limit=abc&dateFrom=bad",
		"/matchDetails",
		"/matchDetails?matchId=",
		"/.netlify/functions/getMatchDetails",
	}
	for _, target := range targets {
		rec := serve(t, router, http.MethodOptions, target)
		require.Equal(t, http.StatusOK, rec.Code, target)

		var body messageResponse
		require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "CORS preflight passed", body.Message)
		assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	}
}

func TestRouter_HealthzAndUnknownPath(t *testing.T) {
	router := newOfflineRouter(t)

	rec := serve(t, router, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(t, router, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeError(t, rec))
}

type stubMatchReader struct {
	listErr   error
	detailErr error
	panicMsg  string
}

func (s stubMatchReader) ListMatches(context.Context, usecase.ListMatchesInput) (usecase.MatchList, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return usecase.MatchList{}, s.listErr
}

func (s stubMatchReader) GetMatchDetail(context.Context, string) (match.MatchDetail, error) {
	return match.MatchDetail{}, s.detailErr
}

func TestRouter_UnexpectedFaults(t *testing.T) {
	tests := []struct {
		name   string
		reader stubMatchReader
		target string
	}{
		{name: "list error", reader: stubMatchReader{listErr: crerr.New("boom")}, target: "/matches"},
		{name: "detail error", reader: stubMatchReader{detailErr: crerr.New("boom")}, target: "/matchDetails?matchId=7"},
		{name: "panic", reader: stubMatchReader{panicMsg: "nil map"}, target: "/matches"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(tt.reader, clockwork.NewFakeClockAt(testNow), 0, logging.NewNop())
			router := NewRouter(handler, logging.NewNop(), nil)

			rec := serve(t, router, http.MethodGet, tt.target)
			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Internal server error", decodeError(t, rec))
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
