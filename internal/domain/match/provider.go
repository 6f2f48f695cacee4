package match

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

// ErrUpstreamTransport marks failures to reach or read the upstream provider.
var ErrUpstreamTransport = crerr.New("upstream transport failure")

// UpstreamStatusError is returned when the provider answers with a non-2xx status.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream status=%d body=%s", e.StatusCode, e.Body)
}

// FetchParams are forwarded to the provider list call. Empty values are omitted.
type FetchParams struct {
	Competitions []string
	DateFrom     string
	DateTo       string
}

// Provider exposes raw match reads from the upstream data source.
type Provider interface {
	FetchMatches(ctx context.Context, credential string, params FetchParams) ([]UpstreamMatch, error)
	FetchMatch(ctx context.Context, credential, id string) (UpstreamMatch, bool, error)
}

// UpstreamMatch is one provider record as received. Pointer and empty fields
// mean the provider did not send them.
type UpstreamMatch struct {
	ID          int64
	UTCDate     string
	Status      string
	Matchday    *int
	HomeTeam    string
	AwayTeam    string
	FullTime    UpstreamScore
	HalfTime    UpstreamScore
	Competition string
	Area        string
	Venue       string
	Referees    []UpstreamReferee
	Referee     string
}

type UpstreamScore struct {
	Home *int
	Away *int
}

// Present reports whether the provider sent at least one side of the score.
func (s UpstreamScore) Present() bool {
	return s.Home != nil || s.Away != nil
}

// Line converts the score, treating a missing side as zero.
func (s UpstreamScore) Line() ScoreLine {
	var out ScoreLine
	if s.Home != nil {
		out.Home = *s.Home
	}
	if s.Away != nil {
		out.Away = *s.Away
	}
	return out
}

type UpstreamReferee struct {
	Name string
	Type string
}
