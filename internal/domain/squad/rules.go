package squad

import (
	"fmt"
	"sort"
	"strings"
)

// Severity splits validation findings into transition blockers and
// warnings the user may acknowledge.
type Severity string

const (
	SeverityHard Severity = "HARD"
	SeveritySoft Severity = "SOFT"
)

type Message struct {
	Code     string
	Text     string
	Severity Severity
}

// Result is the outcome of a squad validation pass. IsValid is false only
// when a hard failure is present; NeedsConfirmation flags soft warnings that
// require explicit acknowledgement before a transition proceeds.
type Result struct {
	IsValid           bool
	NeedsConfirmation bool
	Messages          []Message
}

func (r Result) HardMessages() []Message {
	return r.bySeverity(SeverityHard)
}

func (r Result) SoftMessages() []Message {
	return r.bySeverity(SeveritySoft)
}

func (r Result) bySeverity(severity Severity) []Message {
	out := make([]Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		if m.Severity == severity {
			out = append(out, m)
		}
	}
	return out
}

// Rules stores matchday squad validation parameters.
type Rules struct {
	BenchMin int
	BenchMax int
}

func DefaultRules() Rules {
	return Rules{BenchMin: 3, BenchMax: 5}
}

// ValidateMatchday checks a draft against the kickoff requirements: every
// slot of the formation filled, the goalkeeper slot in particular, and a
// bench inside the recommended size band (soft).
func ValidateMatchday(layout Layout, draft Draft, rules Rules) Result {
	var messages []Message

	filled := 0
	for _, slot := range layout.Slots {
		if playerID := draft.Formation[slot.ID]; playerID != "" {
			filled++
		}
	}
	if filled < len(layout.Slots) {
		messages = append(messages, Message{
			Code:     "lineup_incomplete",
			Text:     fmt.Sprintf("starting lineup has %d of %d positions filled", filled, len(layout.Slots)),
			Severity: SeverityHard,
		})
	}

	gkSlot := layout.GoalkeeperSlotID()
	if gkSlot == "" || draft.Formation[gkSlot] == "" {
		messages = append(messages, Message{
			Code:     "goalkeeper_missing",
			Text:     "the goalkeeper position must be filled",
			Severity: SeverityHard,
		})
	}

	bench := 0
	for _, status := range draft.Rosters {
		if status == StatusBench {
			bench++
		}
	}
	if bench < rules.BenchMin || bench > rules.BenchMax {
		messages = append(messages, Message{
			Code:     "bench_size",
			Text:     fmt.Sprintf("bench has %d players, recommended is %d to %d", bench, rules.BenchMin, rules.BenchMax),
			Severity: SeveritySoft,
		})
	}

	return buildResult(messages)
}

// FinalReportInput carries everything the played-to-done gate inspects.
type FinalReportInput struct {
	DefenseSummary  string
	MidfieldSummary string
	AttackSummary   string
	GeneralSummary  string

	// PlayersMissingReports lists rostered players without a completed or
	// auto-filled performance report.
	PlayersMissingReports []string
}

// ValidateFinalReport checks the additional hard requirements for closing a
// played game: all four team summaries non-blank and a report for every
// rostered player.
func ValidateFinalReport(input FinalReportInput) Result {
	var messages []Message

	summaries := []struct {
		name  string
		value string
	}{
		{"defense", input.DefenseSummary},
		{"midfield", input.MidfieldSummary},
		{"attack", input.AttackSummary},
		{"general", input.GeneralSummary},
	}
	for _, s := range summaries {
		if strings.TrimSpace(s.value) == "" {
			messages = append(messages, Message{
				Code:     "summary_missing",
				Text:     fmt.Sprintf("the %s team summary must not be empty", s.name),
				Severity: SeverityHard,
			})
		}
	}

	if len(input.PlayersMissingReports) > 0 {
		missing := append([]string(nil), input.PlayersMissingReports...)
		sort.Strings(missing)
		messages = append(messages, Message{
			Code:     "reports_incomplete",
			Text:     fmt.Sprintf("performance reports missing for: %s", strings.Join(missing, ", ")),
			Severity: SeverityHard,
		})
	}

	return buildResult(messages)
}

func buildResult(messages []Message) Result {
	result := Result{IsValid: true, Messages: messages}
	for _, m := range messages {
		switch m.Severity {
		case SeverityHard:
			result.IsValid = false
		case SeveritySoft:
			result.NeedsConfirmation = true
		}
	}
	return result
}
