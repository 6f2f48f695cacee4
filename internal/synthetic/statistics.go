package synthetic

import "github.com/riskibarqy/soccer-stats/internal/domain/match"

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

var (
	ShotsRange         = Range{Min: 3, Max: 30}
	ShotsOnTargetRange = Range{Min: 1, Max: 12}
	PossessionRange    = Range{Min: 25, Max: 75}
	CornersRange       = Range{Min: 1, Max: 15}
	FoulsRange         = Range{Min: 8, Max: 25}
	OffsidesRange      = Range{Min: 0, Max: 8}
	YellowCardsRange   = Range{Min: 0, Max: 6}
	RedCardsRange      = Range{Min: 0, Max: 2}
	PassesRange        = Range{Min: 250, Max: 700}
	PassAccuracyRange  = Range{Min: 60, Max: 92}
	TacklesRange       = Range{Min: 8, Max: 30}
	InterceptionsRange = Range{Min: 3, Max: 18}
	SavesRange         = Range{Min: 0, Max: 10}

	fullTimeGoalsRange = Range{Min: 0, Max: 4}
	halfTimeGoalsRange = Range{Min: 0, Max: 2}
)

func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

func (g *Generator) draw(r Range) int {
	return r.Min + g.rng.IntN(r.Max-r.Min+1)
}

func (g *Generator) pair(r Range) match.TeamPair {
	return match.TeamPair{Home: g.draw(r), Away: g.draw(r)}
}

// Stats returns list-view numbers for the home side.
func (g *Generator) Stats() match.Stats {
	return match.Stats{
		Shots:      g.draw(ShotsRange),
		Corners:    g.draw(CornersRange),
		Possession: g.draw(PossessionRange),
	}
}

// Statistics returns detail counters. Possession sides always sum to 100.
func (g *Generator) Statistics() match.Statistics {
	possession := g.draw(PossessionRange)
	return match.Statistics{
		Shots:         g.pair(ShotsRange),
		ShotsOnTarget: g.pair(ShotsOnTargetRange),
		Possession:    match.TeamPair{Home: possession, Away: 100 - possession},
		Corners:       g.pair(CornersRange),
		Fouls:         g.pair(FoulsRange),
		Offsides:      g.pair(OffsidesRange),
		YellowCards:   g.pair(YellowCardsRange),
		RedCards:      g.pair(RedCardsRange),
		Passes:        g.pair(PassesRange),
		PassAccuracy:  g.pair(PassAccuracyRange),
		Tackles:       g.pair(TacklesRange),
		Interceptions: g.pair(InterceptionsRange),
		Saves:         g.pair(SavesRange),
	}
}
