package footballdata

import (
	"strings"

	"github.com/riskibarqy/soccer-stats/internal/domain/match"
)

type matchesEnvelope struct {
	Matches []matchDTO `json:"matches"`
}

// matchEnvelope accepts both the bare v4 match object and the older
// {"match": {...}} wrapper.
type matchEnvelope struct {
	matchDTO
	Match *matchDTO `json:"match"`
}

type matchDTO struct {
	ID          int64        `json:"id"`
	UTCDate     string       `json:"utcDate"`
	Status      string       `json:"status"`
	Matchday    *int         `json:"matchday"`
	Venue       string       `json:"venue"`
	HomeTeam    teamDTO      `json:"homeTeam"`
	AwayTeam    teamDTO      `json:"awayTeam"`
	Score       scoreDTO     `json:"score"`
	Competition namedDTO     `json:"competition"`
	Area        namedDTO     `json:"area"`
	Referees    []refereeDTO `json:"referees"`
	Referee     string       `json:"referee"`
}

type teamDTO struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

type namedDTO struct {
	Name string `json:"name"`
}

type scoreDTO struct {
	FullTime scoreLineDTO `json:"fullTime"`
	HalfTime scoreLineDTO `json:"halfTime"`
}

type scoreLineDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type refereeDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (d matchDTO) toUpstream() match.UpstreamMatch {
	referees := make([]match.UpstreamReferee, 0, len(d.Referees))
	for _, item := range d.Referees {
		referees = append(referees, match.UpstreamReferee{
			Name: strings.TrimSpace(item.Name),
			Type: strings.TrimSpace(item.Type),
		})
	}

	return match.UpstreamMatch{
		ID:          d.ID,
		UTCDate:     d.UTCDate,
		Status:      d.Status,
		Matchday:    d.Matchday,
		HomeTeam:    firstNonEmpty(d.HomeTeam.Name, d.HomeTeam.ShortName),
		AwayTeam:    firstNonEmpty(d.AwayTeam.Name, d.AwayTeam.ShortName),
		FullTime:    match.UpstreamScore{Home: d.Score.FullTime.Home, Away: d.Score.FullTime.Away},
		HalfTime:    match.UpstreamScore{Home: d.Score.HalfTime.Home, Away: d.Score.HalfTime.Away},
		Competition: strings.TrimSpace(d.Competition.Name),
		Area:        strings.TrimSpace(d.Area.Name),
		Venue:       strings.TrimSpace(d.Venue),
		Referees:    referees,
		Referee:     strings.TrimSpace(d.Referee),
	}
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
