package conversation

import (
	"strings"
	"testing"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
)

func TestNewManagerStartsAtGreeting(t *testing.T) {
	m := NewManager("sess-1")
	if m.Phase() != domain.PhaseGreeting {
		t.Fatalf("phase = %s, want greeting", m.Phase())
	}
	prompt, ok := m.NextPrompt()
	if !ok || !strings.Contains(prompt, "AI不動産投資アドバイザー") {
		t.Fatalf("unexpected greeting prompt: %q", prompt)
	}
}

func TestProfilingAsksQuestionsInOrder(t *testing.T) {
	m := NewManager("sess-1")
	m.AdvancePhase() // greeting -> profiling

	prompt, ok := m.NextPrompt()
	if !ok || !strings.Contains(prompt, "年収") {
		t.Fatalf("first profiling question should ask for income, got %q", prompt)
	}

	m.ExtractProfileUpdates("年収800万円です")
	prompt, _ = m.NextPrompt()
	if !strings.Contains(prompt, "経験年数") {
		t.Fatalf("second profiling question should ask for experience, got %q", prompt)
	}

	m.ExtractProfileUpdates("初心者です")
	prompt, _ = m.NextPrompt()
	if !strings.Contains(prompt, "目標") {
		t.Fatalf("third profiling question should ask for the goal, got %q", prompt)
	}
}

func TestProfilingAdvancesToStrategyWhenComplete(t *testing.T) {
	m := NewManager("sess-1")
	m.AdvancePhase()

	m.ExtractProfileUpdates("年収800万円です")
	m.ExtractProfileUpdates("初心者です")
	m.ExtractProfileUpdates("老後資金のためです")

	prompt, ok := m.NextPrompt()
	if !ok {
		t.Fatalf("expected a strategy prompt")
	}
	if m.Phase() != domain.PhaseStrategyPlanning {
		t.Fatalf("phase = %s, want strategy_planning", m.Phase())
	}
	if !strings.Contains(prompt, "投資家プロファイル分析") {
		t.Fatalf("unexpected strategy prompt: %q", prompt)
	}
	if !m.State().Metadata.ProfileCompleted {
		t.Fatalf("profile completion flag not set")
	}
}

func TestZeroExperienceCountsAsAnswered(t *testing.T) {
	m := NewManager("sess-1")
	m.AdvancePhase()

	m.ExtractProfileUpdates("初心者です")
	prompt, _ := m.NextPrompt()
	if strings.Contains(prompt, "経験年数") {
		t.Fatalf("zero experience is an answer; question repeated: %q", prompt)
	}
}

func TestAdvancePhaseStopsAtTerminal(t *testing.T) {
	m := NewManager("sess-1")
	for range domain.PhaseOrder {
		m.AdvancePhase()
	}
	if m.Phase() != domain.PhaseFollowUp {
		t.Fatalf("phase = %s, want follow_up", m.Phase())
	}
	m.AdvancePhase()
	if m.Phase() != domain.PhaseFollowUp {
		t.Fatalf("terminal phase must not advance, got %s", m.Phase())
	}
}

func TestAdvancePhaseSetsMetadataFlags(t *testing.T) {
	m := NewManager("sess-1")
	m.AdvancePhase() // -> profiling
	if !m.State().Metadata.ProfilingStarted {
		t.Fatalf("profiling flag not set")
	}
	m.AdvancePhase() // -> strategy_planning
	m.AdvancePhase() // -> property_search
	if !m.State().Metadata.StrategySuggested {
		t.Fatalf("strategy flag not set")
	}
}

func TestAppendMessageAssignsIDAndCounts(t *testing.T) {
	m := NewManager("sess-1")
	first := m.AppendMessage(domain.RoleUser, "こんにちは", nil)
	second := m.AppendMessage(domain.RoleAssistant, "ようこそ", nil)

	if first.ID == "" || second.ID == "" || first.ID == second.ID {
		t.Fatalf("message ids not unique: %q %q", first.ID, second.ID)
	}
	state := m.State()
	if state.Metadata.TotalMessages != 2 {
		t.Fatalf("total messages = %d, want 2", state.Metadata.TotalMessages)
	}
	if len(state.History) != 2 || state.History[0].Content != "こんにちは" {
		t.Fatalf("history not recorded in order: %+v", state.History)
	}
}

func TestRecentHistoryWindow(t *testing.T) {
	m := NewManager("sess-1")
	contents := []string{"a", "b", "c", "d", "e"}
	for _, c := range contents {
		m.AppendMessage(domain.RoleUser, c, nil)
	}

	recent := m.RecentHistory(3)
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
	if recent[0].Content != "c" || recent[2].Content != "e" {
		t.Fatalf("wrong window: %+v", recent)
	}

	if got := m.RecentHistory(10); len(got) != 5 {
		t.Fatalf("oversized limit should return all, got %d", len(got))
	}
	if got := m.RecentHistory(0); got != nil {
		t.Fatalf("zero limit should return nil, got %+v", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := NewManager("sess-1")
	m.AdvancePhase()
	m.ExtractProfileUpdates("年収800万円です")
	m.AppendMessage(domain.RoleUser, "年収800万円です", nil)

	restored, err := Restore(m.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Phase() != domain.PhaseProfiling {
		t.Fatalf("phase = %s, want profiling", restored.Phase())
	}
	profile := restored.Profile()
	if profile.AnnualIncome == nil || *profile.AnnualIncome != 800 {
		t.Fatalf("profile lost in snapshot: %+v", profile)
	}
	if got := restored.State().CollectedInfo; len(got) != 1 || got[0] != "annual_income" {
		t.Fatalf("collected info lost: %+v", got)
	}
	if len(restored.State().History) != 0 {
		t.Fatalf("snapshot must not carry history")
	}
}

func TestRestoreRejectsUnknownPhase(t *testing.T) {
	_, err := Restore(domain.SessionState{SessionID: "sess-1", Phase: "negotiation"})
	if err == nil {
		t.Fatalf("expected error for unknown phase")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input kind, got %v", err)
	}
}

func TestCollectedInfoDeduplicates(t *testing.T) {
	m := NewManager("sess-1")
	m.ExtractProfileUpdates("年収800万円です")
	m.ExtractProfileUpdates("年収900万円です")
	if got := m.State().CollectedInfo; len(got) != 1 {
		t.Fatalf("collected info duplicated: %+v", got)
	}
	if *m.Profile().AnnualIncome != 900 {
		t.Fatalf("later extraction should overwrite, got %v", *m.Profile().AnnualIncome)
	}
}
