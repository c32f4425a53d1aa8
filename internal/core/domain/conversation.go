package domain

import "time"

// Phase is one stage of the scripted conversation flow. Phases form a strict
// linear order and never move backward.
type Phase string

const (
	PhaseGreeting         Phase = "greeting"
	PhaseProfiling        Phase = "profiling"
	PhaseStrategyPlanning Phase = "strategy_planning"
	PhasePropertySearch   Phase = "property_search"
	PhaseDetailedAdvice   Phase = "detailed_advice"
	PhaseFollowUp         Phase = "follow_up"
)

// PhaseOrder lists every phase in progression order.
var PhaseOrder = []Phase{
	PhaseGreeting,
	PhaseProfiling,
	PhaseStrategyPlanning,
	PhasePropertySearch,
	PhaseDetailedAdvice,
	PhaseFollowUp,
}

// ValidPhase reports whether p is a member of the closed phase set.
func ValidPhase(p Phase) bool {
	for _, known := range PhaseOrder {
		if p == known {
			return true
		}
	}
	return false
}

// NextPhase returns the phase after p, or p itself at the terminal phase.
func NextPhase(p Phase) Phase {
	for i, known := range PhaseOrder {
		if p == known && i < len(PhaseOrder)-1 {
			return PhaseOrder[i+1]
		}
	}
	return p
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

type MessageMetadata struct {
	Phase            Phase           `json:"phase"`
	ExtractedProfile InvestorProfile `json:"extracted_profile,omitempty"`
	Suggestions      []string        `json:"suggestions,omitempty"`
}

// Message is one conversation entry. Messages are appended and never mutated.
type Message struct {
	ID        string           `json:"id"`
	Role      MessageRole      `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Metadata  *MessageMetadata `json:"metadata,omitempty"`
}

type ConversationMetadata struct {
	TotalMessages     int  `json:"total_messages"`
	ProfilingStarted  bool `json:"profiling_started"`
	ProfileCompleted  bool `json:"profile_completed"`
	StrategySuggested bool `json:"strategy_suggested"`
}

// ConversationState is the full per-session state owned by one conversation
// manager. It is created on the first message, mutated by every call, and
// holds the unbounded message history.
type ConversationState struct {
	SessionID        string               `json:"session_id"`
	Phase            Phase                `json:"phase"`
	Step             int                  `json:"step"`
	Profile          InvestorProfile      `json:"profile"`
	CollectedInfo    []string             `json:"collected_info"`
	PendingQuestions []string             `json:"pending_questions"`
	History          []Message            `json:"conversation_history"`
	LastInteraction  time.Time            `json:"last_interaction"`
	Metadata         ConversationMetadata `json:"metadata"`
}

// SessionState is the trimmed snapshot round-tripped through a stateless
// transport. It omits the full message history.
type SessionState struct {
	SessionID       string               `json:"session_id"`
	Phase           Phase                `json:"phase"`
	Step            int                  `json:"step"`
	Profile         InvestorProfile      `json:"profile"`
	CollectedInfo   []string             `json:"collected_info"`
	Metadata        ConversationMetadata `json:"metadata"`
	LastInteraction time.Time            `json:"last_interaction"`
}
