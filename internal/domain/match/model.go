package match

import "time"

const (
	StatusFinished    = "FT"
	StatusLive        = "LIVE"
	StatusHalfTime    = "HT"
	StatusUpcoming    = "UPCOMING"
	StatusPostponed   = "POSTPONED"
	StatusSuspended   = "SUSPENDED"
	StatusCancelled   = "CANCELLED"
	StatusAwarded     = "AWARDED"
	StatusInterrupted = "INTERRUPTED"
)

// upstreamStatuses maps football-data.org match statuses to the canonical
// vocabulary. Lookups are case-sensitive.
var upstreamStatuses = map[string]string{
	"FINISHED":    StatusFinished,
	"IN_PLAY":     StatusLive,
	"PAUSED":      StatusHalfTime,
	"SCHEDULED":   StatusUpcoming,
	"TIMED":       StatusUpcoming,
	"POSTPONED":   StatusPostponed,
	"SUSPENDED":   StatusSuspended,
	"CANCELLED":   StatusCancelled,
	"AWARDED":     StatusAwarded,
	"INTERRUPTED": StatusInterrupted,
}

// MapUpstreamStatus returns the canonical status for an upstream status.
// Missing or unrecognised values map to StatusUpcoming.
func MapUpstreamStatus(raw string) string {
	if status, ok := upstreamStatuses[raw]; ok {
		return status
	}
	return StatusUpcoming
}

// Match is the list view of one fixture.
type Match struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	HomeScore int       `json:"homeScore"`
	AwayScore int       `json:"awayScore"`
	Status    string    `json:"status"`
	MatchTime time.Time `json:"matchTime"`
	League    string    `json:"league"`
	Area      string    `json:"area,omitempty"`
	Stats     Stats     `json:"stats"`
}

// Stats carries the home side's headline numbers for the list view.
type Stats struct {
	Shots      int `json:"shots"`
	Corners    int `json:"corners"`
	Possession int `json:"possession"`
}
