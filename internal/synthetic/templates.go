package synthetic

import (
	"sort"

	"github.com/riskibarqy/soccer-stats/internal/domain/match"
)

// Events builds the fixed match timeline for the given teams, ordered by minute.
func Events(homeTeam, awayTeam string) []match.Event {
	events := []match.Event{
		{Minute: 12, Type: match.EventGoal, Team: match.SideHome, Player: homeTeam + " Striker", Description: "Long-range strike finds the top corner", Score: "1-0"},
		{Minute: 23, Type: match.EventYellowCard, Team: match.SideAway, Player: awayTeam + " Defender", Description: "Tactical foul to stop a counter"},
		{Minute: 34, Type: match.EventGoal, Team: match.SideAway, Player: awayTeam + " Midfielder", Description: "Direct free kick", Score: "1-1"},
		{Minute: 45, Type: match.EventHalfTime, Description: "End of first half"},
		{Minute: 47, Type: match.EventSubstitution, Team: match.SideHome, PlayerIn: homeTeam + " Substitute Forward", PlayerOut: homeTeam + " Midfielder", Description: "Attacking change"},
		{Minute: 58, Type: match.EventGoal, Team: match.SideHome, Player: homeTeam + " Captain", Description: "Header from a corner", Score: "2-1"},
		{Minute: 67, Type: match.EventYellowCard, Team: match.SideHome, Player: homeTeam + " Holding Midfielder", Description: "Late sliding tackle"},
		{Minute: 78, Type: match.EventSubstitution, Team: match.SideAway, PlayerIn: awayTeam + " Winger", PlayerOut: awayTeam + " Striker", Description: "Fresh legs out wide"},
		{Minute: 85, Type: match.EventGoal, Team: match.SideAway, Player: awayTeam + " Substitute", Description: "Finish on the break", Score: "2-2"},
		{Minute: 90, Type: match.EventFullTime, Description: "Full time"},
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Minute < events[j].Minute
	})
	return events
}

// Lineups returns a fixed 4-3-3 for both sides plus four substitutes each.
func Lineups() match.Lineups {
	return match.Lineups{
		Home: []match.Player{
			{Number: 1, Name: "Goalkeeper", Position: match.PositionGoalkeeper, Rating: 7.2},
			{Number: 2, Name: "Right Back", Position: match.PositionDefender, Rating: 6.8},
			{Number: 5, Name: "Centre Back", Position: match.PositionDefender, Rating: 7.5},
			{Number: 6, Name: "Centre Back", Position: match.PositionDefender, Rating: 7.3},
			{Number: 3, Name: "Left Back", Position: match.PositionDefender, Rating: 6.9},
			{Number: 8, Name: "Central Midfielder", Position: match.PositionMidfielder, Rating: 7.8},
			{Number: 16, Name: "Holding Midfielder", Position: match.PositionMidfielder, Rating: 7.1},
			{Number: 17, Name: "Attacking Midfielder", Position: match.PositionMidfielder, Rating: 8.2},
			{Number: 7, Name: "Right Winger", Position: match.PositionForward, Rating: 7.9},
			{Number: 9, Name: "Striker", Position: match.PositionForward, Rating: 8.5},
			{Number: 11, Name: "Left Winger", Position: match.PositionForward, Rating: 7.7},
		},
		Away: []match.Player{
			{Number: 13, Name: "Goalkeeper", Position: match.PositionGoalkeeper, Rating: 6.9},
			{Number: 4, Name: "Right Back", Position: match.PositionDefender, Rating: 6.7},
			{Number: 5, Name: "Centre Back", Position: match.PositionDefender, Rating: 7.2},
			{Number: 6, Name: "Centre Back", Position: match.PositionDefender, Rating: 7.0},
			{Number: 3, Name: "Left Back", Position: match.PositionDefender, Rating: 6.8},
			{Number: 8, Name: "Central Midfielder", Position: match.PositionMidfielder, Rating: 7.4},
			{Number: 25, Name: "Holding Midfielder", Position: match.PositionMidfielder, Rating: 7.3},
			{Number: 10, Name: "Attacking Midfielder", Position: match.PositionMidfielder, Rating: 8.0},
			{Number: 7, Name: "Right Winger", Position: match.PositionForward, Rating: 7.6},
			{Number: 9, Name: "Striker", Position: match.PositionForward, Rating: 8.1},
			{Number: 11, Name: "Left Winger", Position: match.PositionForward, Rating: 7.5},
		},
		Substitutes: match.Substitutes{
			Home: []match.Player{
				{Number: 12, Name: "Reserve Goalkeeper", Position: match.PositionGoalkeeper},
				{Number: 15, Name: "Reserve Defender", Position: match.PositionDefender},
				{Number: 18, Name: "Reserve Midfielder", Position: match.PositionMidfielder},
				{Number: 19, Name: "Reserve Forward", Position: match.PositionForward},
			},
			Away: []match.Player{
				{Number: 14, Name: "Reserve Goalkeeper", Position: match.PositionGoalkeeper},
				{Number: 16, Name: "Reserve Defender", Position: match.PositionDefender},
				{Number: 20, Name: "Reserve Midfielder", Position: match.PositionMidfielder},
				{Number: 21, Name: "Reserve Forward", Position: match.PositionForward},
			},
		},
	}
}

// HeadToHead returns a fixed meeting history, newest first.
func HeadToHead() match.HeadToHead {
	return match.HeadToHead{
		TotalMatches: 25,
		HomeWins:     12,
		AwayWins:     8,
		Draws:        5,
		LastMeeting:  "2024-03-10",
		LastScore:    "2-1",
		RecentMatches: []match.Meeting{
			{Date: "2024-03-10", Score: "2-1", Winner: match.SideHome},
			{Date: "2023-10-15", Score: "1-1", Winner: "draw"},
			{Date: "2023-04-05", Score: "3-2", Winner: match.SideAway},
			{Date: "2022-12-10", Score: "2-0", Winner: match.SideHome},
			{Date: "2022-08-20", Score: "1-1", Winner: "draw"},
		},
		Trends: match.FormTrends{
			Home: match.Form{Wins: 3, Draws: 1, Losses: 1},
			Away: match.Form{Wins: 1, Draws: 2, Losses: 2},
		},
	}
}
