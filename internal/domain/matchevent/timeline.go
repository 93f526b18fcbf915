package matchevent

import "sort"

// Score is the pair of goal-event counts. It is derived, never stored; the
// displayed score is by definition the count of the respective goal events.
type Score struct {
	Ours     int `json:"ourScore"`
	Opponent int `json:"opponentScore"`
}

// DeriveScore counts goal events into the displayed score.
func DeriveScore(events []Event) Score {
	var score Score
	for _, e := range events {
		if e.Type != TypeGoal {
			continue
		}
		if e.IsOpponentGoal {
			score.Opponent++
		} else {
			score.Ours++
		}
	}
	return score
}

var typeRank = map[Type]int{
	TypeGoal:         0,
	TypeCard:         1,
	TypeSubstitution: 2,
}

// SortTimeline orders events chronologically by minute; minute ties break by
// event type (goal, card, substitution), then by creation time so repeated
// sorts are stable.
func SortTimeline(events []Event) []Event {
	out := append([]Event(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		if typeRank[out[i].Type] != typeRank[out[j].Type] {
			return typeRank[out[i].Type] < typeRank[out[j].Type]
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
