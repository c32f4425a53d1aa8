package domain

import "time"

// ChatRequest is one inbound user turn. State carries the caller's prior
// session snapshot; nil means a fresh session.
type ChatRequest struct {
	SessionID string        `json:"session_id,omitempty"`
	Message   string        `json:"message"`
	State     *SessionState `json:"conversation_state,omitempty"`
}

// ChatLimits bounds one chat turn. Zero values take package defaults.
type ChatLimits struct {
	HistoryWindow  int
	RecommendLimit int
}

// ChatResult is everything one turn produces: the reply text, the updated
// serializable state, and the structured data the reply was built from.
type ChatResult struct {
	SessionID       string                  `json:"session_id"`
	Reply           string                  `json:"message"`
	Phase           Phase                   `json:"phase"`
	Generated       bool                    `json:"generated"`
	State           SessionState            `json:"conversation_state"`
	ExtractedFields InvestorProfile         `json:"extracted_profile"`
	Recommendations []PropertyMatch         `json:"property_recommendations,omitempty"`
	Classification  *InvestorClassification `json:"investor_analysis,omitempty"`
	Timestamp       time.Time               `json:"timestamp"`
}

// TurnEvent is published after each completed chat turn for asynchronous
// analytics.
type TurnEvent struct {
	SessionID       string    `json:"session_id"`
	Phase           Phase     `json:"phase"`
	Generated       bool      `json:"generated"`
	ExtractedCount  int       `json:"extracted_count"`
	Recommendations int       `json:"recommendations"`
	TopMatchScore   int       `json:"top_match_score,omitempty"`
	CompletedAt     time.Time `json:"completed_at"`
}
