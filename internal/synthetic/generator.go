// Package synthetic builds plausible match records without any upstream data.
// Shapes are fixed. Numeric values come from the injected random source.
package synthetic

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/soccer-stats/internal/domain/match"
)

const firstListID = 101

type fixtureSlot struct {
	home   string
	away   string
	venue  string
	league string
	area   string
}

var slots = []fixtureSlot{
	{home: "Manchester City", away: "Arsenal", venue: "Etihad Stadium", league: "Premier League", area: "England"},
	{home: "Manchester United", away: "Liverpool", venue: "Old Trafford", league: "Premier League", area: "England"},
	{home: "Chelsea", away: "Tottenham Hotspur", venue: "Stamford Bridge", league: "Premier League", area: "England"},
	{home: "Barcelona", away: "Real Madrid", venue: "Camp Nou", league: "La Liga", area: "Spain"},
	{home: "Bayern Munich", away: "Borussia Dortmund", venue: "Allianz Arena", league: "Bundesliga", area: "Germany"},
	{home: "Juventus", away: "AC Milan", venue: "Allianz Stadium", league: "Serie A", area: "Italy"},
	{home: "Paris Saint-Germain", away: "Olympique de Marseille", venue: "Parc des Princes", league: "Ligue 1", area: "France"},
	{home: "Ajax", away: "PSV Eindhoven", venue: "Johan Cruyff Arena", league: "Eredivisie", area: "Netherlands"},
}

var statuses = []string{
	match.StatusFinished,
	match.StatusLive,
	match.StatusHalfTime,
	match.StatusUpcoming,
}

// kickoffOffset positions matchTime relative to now so it agrees with the status.
var kickoffOffset = map[string]time.Duration{
	match.StatusFinished: -2 * time.Hour,
	match.StatusLive:     -45 * time.Minute,
	match.StatusHalfTime: -50 * time.Minute,
	match.StatusUpcoming: 3 * time.Hour,
}

const defaultReferee = "Michael Oliver"

// Generator is not safe for concurrent use. Build one per request.
type Generator struct {
	rng   *rand.Rand
	clock clockwork.Clock
}

func New(rng *rand.Rand, clock clockwork.Clock) *Generator {
	if rng == nil {
		rng = NewRand(0)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Generator{rng: rng, clock: clock}
}

// NewRand returns a PCG-backed source. A zero seed draws a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Matches returns n list records with ids starting at 101. Each record uses
// the same slot and status that MatchDetail derives for its id.
func (g *Generator) Matches(n int) []match.Match {
	if n <= 0 {
		return []match.Match{}
	}

	now := g.clock.Now().UTC()
	out := make([]match.Match, 0, n)
	for i := 0; i < n; i++ {
		id := int64(firstListID + i)
		slot, status := slotFor(id), statusFor(id)

		score := g.fullTimeScore(status)
		out = append(out, match.Match{
			ID:        strconv.FormatInt(id, 10),
			HomeTeam:  slot.home,
			AwayTeam:  slot.away,
			HomeScore: score.Home,
			AwayScore: score.Away,
			Status:    status,
			MatchTime: now.Add(kickoffOffset[status]),
			League:    slot.league,
			Area:      slot.area,
			Stats:     g.Stats(),
		})
	}
	return out
}

// MatchDetail returns a full record for id. Team pair, venue, league and
// status depend only on id.
func (g *Generator) MatchDetail(id string) match.MatchDetail {
	key, matchday := resolveKey(id)
	slot, status := slotFor(key), statusFor(key)

	return match.MatchDetail{
		ID:       id,
		HomeTeam: slot.home,
		AwayTeam: slot.away,
		Score: match.Score{
			FullTime: g.fullTimeScore(status),
			HalfTime: g.halfTimeScore(status),
		},
		Status:     status,
		MatchTime:  g.clock.Now().UTC().Add(kickoffOffset[status]),
		Venue:      slot.venue,
		Referee:    defaultReferee,
		League:     slot.league,
		Area:       slot.area,
		Matchday:   matchday,
		Events:     Events(slot.home, slot.away),
		Statistics: g.Statistics(),
		Lineups:    Lineups(),
		HeadToHead: HeadToHead(),
	}
}

func (g *Generator) fullTimeScore(status string) match.ScoreLine {
	if status == match.StatusUpcoming {
		return match.ScoreLine{}
	}
	return match.ScoreLine{Home: g.draw(fullTimeGoalsRange), Away: g.draw(fullTimeGoalsRange)}
}

func (g *Generator) halfTimeScore(status string) match.ScoreLine {
	if status == match.StatusUpcoming {
		return match.ScoreLine{}
	}
	return match.ScoreLine{Home: g.draw(halfTimeGoalsRange), Away: g.draw(halfTimeGoalsRange)}
}

// resolveKey maps a match id onto a non-negative key and a matchday.
// Non-numeric ids are hashed.
func resolveKey(id string) (int64, int) {
	if n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64); err == nil {
		if n < 0 {
			n = -n
		}
		// math.MinInt64 survives negation.
		if n < 0 {
			n = 0
		}
		return n, int(n/100) + 1
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	key := int64(h.Sum32())
	return key, int(key%38) + 1
}

func slotFor(key int64) fixtureSlot {
	return slots[key%int64(len(slots))]
}

func statusFor(key int64) string {
	return statuses[key%int64(len(statuses))]
}
