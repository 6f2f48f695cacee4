package match

import "strings"

const DefaultLimit = 50

// Query narrows a produced result set. Zero values disable a constraint.
type Query struct {
	League string
	Status string
	Limit  int
}

// Accepts reports whether m satisfies the league and status constraints.
func (q Query) Accepts(m Match) bool {
	if q.League != "" && !strings.Contains(m.League, q.League) && !strings.Contains(m.Area, q.League) {
		return false
	}
	if q.Status != "" && m.Status != strings.ToUpper(q.Status) {
		return false
	}
	return true
}

// Apply filters matches in producer order and truncates to Limit last.
// The input slice is not modified.
func (q Query) Apply(matches []Match) []Match {
	out := make([]Match, 0, len(matches))
	for _, item := range matches {
		if !q.Accepts(item) {
			continue
		}
		out = append(out, item)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
