package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fudosan-labs/estate-advisor/internal/core/conversation"
	"github.com/fudosan-labs/estate-advisor/internal/core/domain"
	"github.com/fudosan-labs/estate-advisor/internal/core/investor"
	"github.com/fudosan-labs/estate-advisor/internal/core/matching"
	"github.com/fudosan-labs/estate-advisor/internal/core/ports"
)

// ChatUseCase drives one advisory turn: restore the session, extract profile
// facts from the user's message, produce the reply for the current phase, and
// hand back the updated snapshot. The generator, session store, and event
// publisher are all optional; the scripted flow works without any of them.
type ChatUseCase struct {
	matcher   *matching.Matcher
	generator ports.AdviceGenerator
	sessions  ports.SessionStore
	events    ports.EventPublisher
	limits    domain.ChatLimits
}

func NewChatUseCase(
	matcher *matching.Matcher,
	generator ports.AdviceGenerator,
	sessions ports.SessionStore,
	events ports.EventPublisher,
	limits domain.ChatLimits,
) *ChatUseCase {
	if limits.HistoryWindow <= 0 {
		limits.HistoryWindow = 10
	}
	if limits.RecommendLimit <= 0 {
		limits.RecommendLimit = 3
	}

	return &ChatUseCase{
		matcher:   matcher,
		generator: generator,
		sessions:  sessions,
		events:    events,
		limits:    limits,
	}
}

func (uc *ChatUseCase) Complete(ctx context.Context, req domain.ChatRequest) (*domain.ChatResult, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "chat complete", fmt.Errorf("message is required"))
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" && req.State != nil {
		sessionID = strings.TrimSpace(req.State.SessionID)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	manager, err := uc.resumeSession(ctx, sessionID, req.State)
	if err != nil {
		return nil, err
	}

	manager.AppendMessage(domain.RoleUser, message, nil)
	extracted := manager.ExtractProfileUpdates(message)

	// NextPrompt may complete profiling and move the session into
	// strategy_planning, so the phase is read after it.
	prompt, scripted := manager.NextPrompt()
	if !scripted {
		prompt = conversation.FallbackPrompt
	}
	phase := manager.Phase()

	var (
		matches        []domain.PropertyMatch
		classification *domain.InvestorClassification
	)
	if phase == domain.PhasePropertySearch || phase == domain.PhaseDetailedAdvice {
		cls := investor.Classify(manager.Profile())
		classification = &cls
		matches = uc.matcher.Recommend(manager.Profile(), uc.limits.RecommendLimit)
	}

	reply, generated := uc.composeReply(ctx, manager, message, prompt, matches, classification)

	metadata := &domain.MessageMetadata{
		Phase:            phase,
		ExtractedProfile: extracted,
	}
	for _, match := range matches {
		metadata.Suggestions = append(metadata.Suggestions, match.Property.Name)
	}
	manager.AppendMessage(domain.RoleAssistant, reply, metadata)

	// Scripted transitions happen after the reply is recorded, so the user
	// sees each one-shot prompt exactly once.
	switch phase {
	case domain.PhaseGreeting, domain.PhaseStrategyPlanning:
		manager.AdvancePhase()
	}

	snapshot := manager.Snapshot()
	if uc.sessions != nil {
		// Best effort. The caller receives the snapshot inline either way.
		_ = uc.sessions.Save(ctx, snapshot)
	}
	if uc.events != nil {
		_ = uc.events.PublishTurnCompleted(ctx, turnEvent(snapshot, extracted, matches, generated))
	}

	return &domain.ChatResult{
		SessionID:       sessionID,
		Reply:           reply,
		Phase:           snapshot.Phase,
		Generated:       generated,
		State:           snapshot,
		ExtractedFields: extracted,
		Recommendations: matches,
		Classification:  classification,
		Timestamp:       time.Now().UTC(),
	}, nil
}

// resumeSession prefers the caller-supplied snapshot over the server-side
// store; an unknown session id simply starts a fresh conversation.
func (uc *ChatUseCase) resumeSession(ctx context.Context, sessionID string, state *domain.SessionState) (*conversation.Manager, error) {
	if state != nil {
		snapshot := *state
		snapshot.SessionID = sessionID
		return conversation.Restore(snapshot)
	}

	if uc.sessions != nil {
		stored, err := uc.sessions.Load(ctx, sessionID)
		switch {
		case err == nil:
			return conversation.Restore(*stored)
		case errors.Is(err, domain.ErrSessionNotFound):
		default:
			return nil, fmt.Errorf("load session: %w", err)
		}
	}

	return conversation.NewManager(sessionID), nil
}

// composeReply asks the external model when one is configured and falls back
// to the scripted reply on any generation failure.
func (uc *ChatUseCase) composeReply(
	ctx context.Context,
	manager *conversation.Manager,
	message, prompt string,
	matches []domain.PropertyMatch,
	classification *domain.InvestorClassification,
) (string, bool) {
	scripted := scriptedReply(prompt, matches, classification)

	if uc.generator == nil {
		return scripted, false
	}

	history := manager.RecentHistory(uc.limits.HistoryWindow)
	if len(history) > 0 {
		// the pending user message is sent separately
		history = history[:len(history)-1]
	}

	reply, err := uc.generator.GenerateAdvice(ctx, ports.AdviceInput{
		SystemPrompt: advisorSystemPrompt(manager.State(), classification),
		History:      history,
		UserMessage:  message,
	})
	if err != nil || strings.TrimSpace(reply) == "" {
		return scripted, false
	}
	return reply, true
}

func turnEvent(snapshot domain.SessionState, extracted domain.InvestorProfile, matches []domain.PropertyMatch, generated bool) domain.TurnEvent {
	event := domain.TurnEvent{
		SessionID:       snapshot.SessionID,
		Phase:           snapshot.Phase,
		Generated:       generated,
		ExtractedCount:  extractedFieldCount(extracted),
		Recommendations: len(matches),
		CompletedAt:     time.Now().UTC(),
	}
	if len(matches) > 0 {
		event.TopMatchScore = matches[0].MatchScore
	}
	return event
}

func extractedFieldCount(extracted domain.InvestorProfile) int {
	count := 0
	if extracted.AnnualIncome != nil {
		count++
	}
	if extracted.ExperienceYears != nil {
		count++
	}
	if extracted.BudgetRange != nil {
		count++
	}
	if extracted.RiskTolerance != nil {
		count++
	}
	if extracted.InvestmentGoal != nil {
		count++
	}
	return count
}
