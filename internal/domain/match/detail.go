package match

import "time"

const (
	EventGoal         = "GOAL"
	EventYellowCard   = "YELLOW_CARD"
	EventRedCard      = "RED_CARD"
	EventSubstitution = "SUBSTITUTION"
	EventHalfTime     = "HALF_TIME"
	EventFullTime     = "FULL_TIME"
)

const (
	SideHome = "home"
	SideAway = "away"
)

const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DF"
	PositionMidfielder = "MF"
	PositionForward    = "FW"
)

// MatchDetail is the full view of a single fixture.
type MatchDetail struct {
	ID         string     `json:"id"`
	HomeTeam   string     `json:"homeTeam"`
	AwayTeam   string     `json:"awayTeam"`
	Score      Score      `json:"score"`
	Status     string     `json:"status"`
	MatchTime  time.Time  `json:"matchTime"`
	Venue      string     `json:"venue"`
	Referee    string     `json:"referee"`
	League     string     `json:"league"`
	Area       string     `json:"area,omitempty"`
	Matchday   int        `json:"matchday"`
	Events     []Event    `json:"events"`
	Statistics Statistics `json:"statistics"`
	Lineups    Lineups    `json:"lineups"`
	HeadToHead HeadToHead `json:"headToHead"`
}

// Score holds full-time and half-time results. The two are independent.
type Score struct {
	FullTime ScoreLine `json:"fullTime"`
	HalfTime ScoreLine `json:"halfTime"`
}

type ScoreLine struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Event struct {
	Minute      int    `json:"minute"`
	Type        string `json:"type"`
	Team        string `json:"team,omitempty"`
	Player      string `json:"player,omitempty"`
	Description string `json:"description"`
	Score       string `json:"score,omitempty"`
	PlayerIn    string `json:"playerIn,omitempty"`
	PlayerOut   string `json:"playerOut,omitempty"`
}

type TeamPair struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type Statistics struct {
	Shots         TeamPair `json:"shots"`
	ShotsOnTarget TeamPair `json:"shotsOnTarget"`
	Possession    TeamPair `json:"possession"`
	Corners       TeamPair `json:"corners"`
	Fouls         TeamPair `json:"fouls"`
	Offsides      TeamPair `json:"offsides"`
	YellowCards   TeamPair `json:"yellowCards"`
	RedCards      TeamPair `json:"redCards"`
	Passes        TeamPair `json:"passes"`
	PassAccuracy  TeamPair `json:"passAccuracy"`
	Tackles       TeamPair `json:"tackles"`
	Interceptions TeamPair `json:"interceptions"`
	Saves         TeamPair `json:"saves"`
}

// Player is a lineup entry. Substitutes carry no rating.
type Player struct {
	Number   int     `json:"number"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Rating   float64 `json:"rating,omitempty"`
}

type Lineups struct {
	Home        []Player    `json:"home"`
	Away        []Player    `json:"away"`
	Substitutes Substitutes `json:"substitutes"`
}

type Substitutes struct {
	Home []Player `json:"home"`
	Away []Player `json:"away"`
}

type HeadToHead struct {
	TotalMatches  int        `json:"totalMatches"`
	HomeWins      int        `json:"homeWins"`
	AwayWins      int        `json:"awayWins"`
	Draws         int        `json:"draws"`
	LastMeeting   string     `json:"lastMeeting"`
	LastScore     string     `json:"lastScore"`
	RecentMatches []Meeting  `json:"recentMatches"`
	Trends        FormTrends `json:"trends"`
}

// Meeting is one past fixture between the two sides. Winner is home, away or draw.
type Meeting struct {
	Date   string `json:"date"`
	Score  string `json:"score"`
	Winner string `json:"winner"`
}

type FormTrends struct {
	Home Form `json:"home"`
	Away Form `json:"away"`
}

type Form struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}
