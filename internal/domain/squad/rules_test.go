package squad

import (
	"strings"
	"testing"
)

func completeDraft(layout Layout) Draft {
	draft := NewDraft(layout.Key)
	for i, slot := range layout.Slots {
		playerID := layout.Key + "-p" + string(rune('a'+i))
		draft.Formation[slot.ID] = playerID
		draft.Rosters[playerID] = StatusStarting
	}
	for i := 0; i < 3; i++ {
		draft.Rosters["bench-"+string(rune('a'+i))] = StatusBench
	}
	return draft
}

func messageCodes(messages []Message) []string {
	codes := make([]string, 0, len(messages))
	for _, m := range messages {
		codes = append(codes, m.Code)
	}
	return codes
}

func TestValidateMatchday_CompleteSquadPasses(t *testing.T) {
	layout := MustLayout("1-4-4-2")
	result := ValidateMatchday(layout, completeDraft(layout), DefaultRules())

	if !result.IsValid {
		t.Fatalf("expected valid result, got messages: %v", messageCodes(result.Messages))
	}
	if result.NeedsConfirmation {
		t.Fatalf("expected no confirmation needed, got messages: %v", messageCodes(result.Messages))
	}
}

func TestValidateMatchday_MissingGoalkeeperIsHard(t *testing.T) {
	layout := MustLayout("1-4-4-2")
	draft := completeDraft(layout)
	delete(draft.Rosters, draft.Formation["gk"])
	delete(draft.Formation, "gk")

	result := ValidateMatchday(layout, draft, DefaultRules())

	if result.IsValid {
		t.Fatal("expected hard failure for a missing goalkeeper")
	}

	codes := messageCodes(result.HardMessages())
	if !contains(codes, "goalkeeper_missing") {
		t.Fatalf("expected goalkeeper_missing, got %v", codes)
	}
	if !contains(codes, "lineup_incomplete") {
		t.Fatalf("expected lineup_incomplete, got %v", codes)
	}
}

func TestValidateMatchday_BenchSizeIsSoft(t *testing.T) {
	layout := MustLayout("1-4-4-2")
	draft := completeDraft(layout)
	for playerID, status := range draft.Rosters {
		if status == StatusBench {
			delete(draft.Rosters, playerID)
		}
	}

	result := ValidateMatchday(layout, draft, DefaultRules())

	if !result.IsValid {
		t.Fatalf("expected bench size alone not to block, got %v", messageCodes(result.HardMessages()))
	}
	if !result.NeedsConfirmation {
		t.Fatal("expected an undersized bench to need confirmation")
	}

	soft := result.SoftMessages()
	if len(soft) != 1 || soft[0].Code != "bench_size" {
		t.Fatalf("expected a single bench_size warning, got %v", messageCodes(soft))
	}
}

func TestValidateFinalReport_BlankSummariesAndMissingReports(t *testing.T) {
	result := ValidateFinalReport(FinalReportInput{
		DefenseSummary:        "held the line",
		MidfieldSummary:       "  ",
		AttackSummary:         "",
		GeneralSummary:        "good effort",
		PlayersMissingReports: []string{"p-2", "p-1"},
	})

	if result.IsValid {
		t.Fatal("expected hard failures")
	}

	codes := messageCodes(result.Messages)
	summaryMissing := 0
	for _, code := range codes {
		if code == "summary_missing" {
			summaryMissing++
		}
	}
	if summaryMissing != 2 {
		t.Fatalf("expected 2 summary_missing findings, got %d (%v)", summaryMissing, codes)
	}

	var reportsMsg *Message
	for i := range result.Messages {
		if result.Messages[i].Code == "reports_incomplete" {
			reportsMsg = &result.Messages[i]
		}
	}
	if reportsMsg == nil {
		t.Fatalf("expected reports_incomplete, got %v", codes)
	}
	if !strings.Contains(reportsMsg.Text, "p-1, p-2") {
		t.Fatalf("expected missing players listed in order, got %q", reportsMsg.Text)
	}
}

func TestValidateFinalReport_CompletePasses(t *testing.T) {
	result := ValidateFinalReport(FinalReportInput{
		DefenseSummary:  "solid",
		MidfieldSummary: "controlled the tempo",
		AttackSummary:   "clinical",
		GeneralSummary:  "deserved win",
	})

	if !result.IsValid || result.NeedsConfirmation {
		t.Fatalf("expected clean pass, got %v", messageCodes(result.Messages))
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
