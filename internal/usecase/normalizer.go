package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/soccer-stats/internal/domain/match"
	"github.com/riskibarqy/soccer-stats/internal/synthetic"
)

const (
	unknownHomeTeam = "Unknown Home Team"
	unknownAwayTeam = "Unknown Away Team"
	unknownLeague   = "Unknown League"
	unknownVenue    = "Unknown Stadium"
	unknownReferee  = "Unknown Referee"

	refereeRoleMain = "REFEREE"
)

// normalizeMatch maps one upstream record into the list view. Statistics are
// not provided by the upstream list call and are always synthesized.
func normalizeMatch(rec match.UpstreamMatch, gen *synthetic.Generator, now time.Time) match.Match {
	score := resolveListScore(rec)
	return match.Match{
		ID:        strconv.FormatInt(rec.ID, 10),
		HomeTeam:  firstNonEmpty(rec.HomeTeam, unknownHomeTeam),
		AwayTeam:  firstNonEmpty(rec.AwayTeam, unknownAwayTeam),
		HomeScore: score.Home,
		AwayScore: score.Away,
		Status:    match.MapUpstreamStatus(rec.Status),
		MatchTime: parseUpstreamTime(rec.UTCDate, now),
		League:    firstNonEmpty(rec.Competition, unknownLeague),
		Area:      strings.TrimSpace(rec.Area),
		Stats:     gen.Stats(),
	}
}

// normalizeMatchDetail maps one upstream record into the detail view.
// requestedID is echoed when the record carries no id of its own.
func normalizeMatchDetail(rec match.UpstreamMatch, requestedID string, gen *synthetic.Generator, now time.Time) match.MatchDetail {
	id := requestedID
	if rec.ID != 0 {
		id = strconv.FormatInt(rec.ID, 10)
	}

	homeTeam := firstNonEmpty(rec.HomeTeam, unknownHomeTeam)
	awayTeam := firstNonEmpty(rec.AwayTeam, unknownAwayTeam)

	matchday := 1
	if rec.Matchday != nil && *rec.Matchday > 0 {
		matchday = *rec.Matchday
	}

	return match.MatchDetail{
		ID:       id,
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
		Score: match.Score{
			FullTime: rec.FullTime.Line(),
			HalfTime: rec.HalfTime.Line(),
		},
		Status:     match.MapUpstreamStatus(rec.Status),
		MatchTime:  parseUpstreamTime(rec.UTCDate, now),
		Venue:      firstNonEmpty(rec.Venue, unknownVenue),
		Referee:    resolveReferee(rec),
		League:     firstNonEmpty(rec.Competition, unknownLeague),
		Area:       strings.TrimSpace(rec.Area),
		Matchday:   matchday,
		Events:     synthetic.Events(homeTeam, awayTeam),
		Statistics: gen.Statistics(),
		Lineups:    synthetic.Lineups(),
		HeadToHead: synthetic.HeadToHead(),
	}
}

// resolveListScore prefers full-time, then half-time, then 0-0.
func resolveListScore(rec match.UpstreamMatch) match.ScoreLine {
	switch {
	case rec.FullTime.Present():
		return rec.FullTime.Line()
	case rec.HalfTime.Present():
		return rec.HalfTime.Line()
	default:
		return match.ScoreLine{}
	}
}

func resolveReferee(rec match.UpstreamMatch) string {
	for _, item := range rec.Referees {
		if strings.EqualFold(strings.TrimSpace(item.Type), refereeRoleMain) && strings.TrimSpace(item.Name) != "" {
			return strings.TrimSpace(item.Name)
		}
	}
	for _, item := range rec.Referees {
		if strings.TrimSpace(item.Name) != "" {
			return strings.TrimSpace(item.Name)
		}
	}
	return firstNonEmpty(rec.Referee, unknownReferee)
}

func parseUpstreamTime(raw string, fallback time.Time) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return fallback
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC()
		}
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, item := range values {
		if strings.TrimSpace(item) != "" {
			return strings.TrimSpace(item)
		}
	}
	return ""
}
