// Package conversation owns the per-session state of the scripted advisory
// flow: the phase machine, the message log, and the profile accumulated from
// free-text input. A Manager is single-session and not safe for concurrent
// use; callers reconstruct one per request from a serialized snapshot.
package conversation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/investor"
)

type Manager struct {
	state domain.ConversationState
}

// NewManager starts a fresh session in the greeting phase.
func NewManager(sessionID string) *Manager {
	return &Manager{
		state: domain.ConversationState{
			SessionID:        sessionID,
			Phase:            domain.PhaseGreeting,
			Profile:          domain.InvestorProfile{},
			CollectedInfo:    []string{},
			PendingQuestions: []string{},
			History:          []domain.Message{},
			LastInteraction:  time.Now().UTC(),
		},
	}
}

// Restore rebuilds a manager from a caller-supplied snapshot. The snapshot
// crosses a trust boundary, so the phase is validated against the closed
// phase set instead of being accepted silently.
func Restore(snapshot domain.SessionState) (*Manager, error) {
	if !domain.ValidPhase(snapshot.Phase) {
		return nil, domain.WrapError(domain.ErrInvalidInput, "restore conversation",
			fmt.Errorf("unknown phase %q", snapshot.Phase))
	}

	m := NewManager(snapshot.SessionID)
	m.state.Phase = snapshot.Phase
	m.state.Step = snapshot.Step
	m.state.Profile = snapshot.Profile
	if snapshot.CollectedInfo != nil {
		m.state.CollectedInfo = snapshot.CollectedInfo
	}
	m.state.Metadata = snapshot.Metadata
	if !snapshot.LastInteraction.IsZero() {
		m.state.LastInteraction = snapshot.LastInteraction
	}
	return m, nil
}

// AppendMessage assigns an id and timestamp and records the message. It
// never fails; history is append-only.
func (m *Manager) AppendMessage(role domain.MessageRole, content string, metadata *domain.MessageMetadata) domain.Message {
	message := domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
	}
	m.state.History = append(m.state.History, message)
	m.state.Metadata.TotalMessages++
	m.state.LastInteraction = message.Timestamp
	return message
}

// ExtractProfileUpdates runs the keyword heuristics over text, merges the
// hits into the stored profile, and returns only the fields extracted by
// this call.
func (m *Manager) ExtractProfileUpdates(text string) domain.InvestorProfile {
	extracted := extractProfile(text)
	if extracted.IsEmpty() {
		return extracted
	}
	m.state.Profile.Merge(extracted)
	m.recordCollected(extracted)
	return extracted
}

func (m *Manager) recordCollected(extracted domain.InvestorProfile) {
	add := func(field string) {
		for _, known := range m.state.CollectedInfo {
			if known == field {
				return
			}
		}
		m.state.CollectedInfo = append(m.state.CollectedInfo, field)
	}
	if extracted.AnnualIncome != nil {
		add("annual_income")
	}
	if extracted.ExperienceYears != nil {
		add("experience_years")
	}
	if extracted.BudgetRange != nil {
		add("budget_range")
	}
	if extracted.RiskTolerance != nil {
		add("risk_tolerance")
	}
	if extracted.InvestmentGoal != nil {
		add("investment_goal")
	}
}

// NextPrompt returns the scripted text for the current phase. In the
// profiling phase it asks for the first missing required field; once all
// required fields are present the call advances the phase to
// strategy_planning and returns that phase's prompt instead. Phases without
// a scripted prompt return ok=false.
func (m *Manager) NextPrompt() (string, bool) {
	switch m.state.Phase {
	case domain.PhaseGreeting:
		return greetingPrompt, true

	case domain.PhaseProfiling:
		missing := missingProfileFields(m.state.Profile)
		if len(missing) == 0 {
			m.state.Phase = domain.PhaseStrategyPlanning
			m.state.Step = 0
			m.state.Metadata.ProfileCompleted = true
			return strategyPrompt(investor.Classify(m.state.Profile)), true
		}
		return profilingQuestions[missing[0]], true

	case domain.PhaseStrategyPlanning:
		return strategyPrompt(investor.Classify(m.state.Profile)), true

	case domain.PhasePropertySearch:
		return propertySearchPrompt(investor.Classify(m.state.Profile)), true

	default:
		return "", false
	}
}

// AdvancePhase moves one step forward through the phase order. At the
// terminal phase it is a no-op; phases never move backward.
func (m *Manager) AdvancePhase() {
	next := domain.NextPhase(m.state.Phase)
	if next == m.state.Phase {
		return
	}
	m.state.Phase = next
	m.state.Step = 0
	if next == domain.PhaseProfiling {
		m.state.Metadata.ProfilingStarted = true
	}
	if next == domain.PhasePropertySearch {
		m.state.Metadata.StrategySuggested = true
	}
}

// Phase returns the current phase.
func (m *Manager) Phase() domain.Phase {
	return m.state.Phase
}

// Profile returns the accumulated profile.
func (m *Manager) Profile() domain.InvestorProfile {
	return m.state.Profile
}

// State returns a full snapshot including message history.
func (m *Manager) State() domain.ConversationState {
	out := m.state
	out.History = make([]domain.Message, len(m.state.History))
	copy(out.History, m.state.History)
	return out
}

// RecentHistory returns up to limit most recent messages in order.
func (m *Manager) RecentHistory(limit int) []domain.Message {
	if limit <= 0 || len(m.state.History) == 0 {
		return nil
	}
	start := len(m.state.History) - limit
	if start < 0 {
		start = 0
	}
	out := make([]domain.Message, len(m.state.History)-start)
	copy(out, m.state.History[start:])
	return out
}

// Snapshot returns the trimmed state for round-tripping through a stateless
// transport; the full message history is omitted.
func (m *Manager) Snapshot() domain.SessionState {
	return domain.SessionState{
		SessionID:       m.state.SessionID,
		Phase:           m.state.Phase,
		Step:            m.state.Step,
		Profile:         m.state.Profile,
		CollectedInfo:   m.state.CollectedInfo,
		Metadata:        m.state.Metadata,
		LastInteraction: m.state.LastInteraction,
	}
}
