package matchevent

// PlayerAggregates are the per-player figures derived from the event ledger.
// They are recomputed after every committed event change, never hand-entered.
type PlayerAggregates struct {
	MinutesPlayed int `json:"minutesPlayed"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
}

// DerivePlayerAggregates computes one player's figures from the ledger.
// starters holds the committed starting lineup; totalMinutes is the match
// length events are bounded by.
//
// Minutes run from the player's entry (kickoff for starters, the
// substitution-in minute otherwise) to the earliest of full time, their
// substitution-out minute, and a red card.
func DerivePlayerAggregates(playerID string, starters map[string]struct{}, events []Event, totalMinutes int) PlayerAggregates {
	var agg PlayerAggregates

	entered := false
	entry := 0
	if _, ok := starters[playerID]; ok {
		entered = true
	}

	exit := totalMinutes
	for _, e := range events {
		switch e.Type {
		case TypeGoal:
			if e.IsOpponentGoal {
				continue
			}
			if e.ScorerID == playerID {
				agg.Goals++
			}
			if e.AssistedByID == playerID {
				agg.Assists++
			}
		case TypeCard:
			if e.CardType == CardRed && e.PlayerID == playerID && e.Minute < exit {
				exit = e.Minute
			}
		case TypeSubstitution:
			if e.PlayerOutID == playerID && e.Minute < exit {
				exit = e.Minute
			}
			if e.PlayerInID == playerID && !entered {
				entered = true
				entry = e.Minute
			}
		}
	}

	if entered && exit > entry {
		agg.MinutesPlayed = exit - entry
	}

	return agg
}
