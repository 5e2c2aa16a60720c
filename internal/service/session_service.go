package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"tableread/internal/cache"
	"tableread/internal/model"
	"tableread/internal/repository"
	"tableread/internal/scoring"
	"time"

	"github.com/google/uuid"
)

// SessionService handles the participant flow from start to completion
type SessionService struct {
	sessionRepo  repository.SessionRepo
	sessionCache cache.SessionCache
	authSvc      *AuthService
	resultSvc    *ResultService
	broadcaster  Broadcaster
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repository.SessionRepo,
	sessionCache cache.SessionCache,
	authSvc *AuthService,
	resultSvc *ResultService,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		sessionCache: sessionCache,
		authSvc:      authSvc,
		resultSvc:    resultSvc,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start mints a session with a freshly shuffled question order and
// returns the participant token plus the first question.
func (s *SessionService) Start(ctx context.Context, nickname string) (*model.StartSessionResponse, error) {
	sessionID := "s_" + uuid.New().String()[:8]
	participantID := "p_" + uuid.New().String()[:8]

	order := shuffledOrder(scoring.IDs())

	session := &model.Session{
		ID:             sessionID,
		Nickname:       nickname,
		Status:         model.SessionActive,
		CatalogVersion: scoring.CatalogVersion,
		StartedAt:      time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := s.sessionCache.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to cache session: %w", err)
	}
	if err := s.sessionCache.SetOrder(ctx, sessionID, order); err != nil {
		return nil, fmt.Errorf("failed to set order: %w", err)
	}
	if err := s.sessionCache.SetQueue(ctx, sessionID, order); err != nil {
		return nil, fmt.Errorf("failed to set queue: %w", err)
	}
	if err := s.sessionCache.SetCurrent(ctx, sessionID, order[0]); err != nil {
		return nil, fmt.Errorf("failed to set current question: %w", err)
	}

	token, err := s.authSvc.GenerateParticipantToken(sessionID, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToReviewers("session_started", map[string]interface{}{
			"sessionId": sessionID,
			"nickname":  nickname,
			"startedAt": session.StartedAt,
		})
	}

	var firstQuestion *model.Question
	if q, ok := scoring.Lookup(order[0]); ok {
		firstQuestion = &q
	}

	return &model.StartSessionResponse{
		SessionID:     sessionID,
		Token:         token,
		QuestionCount: len(order),
		FirstQuestion: firstQuestion,
	}, nil
}

// checkActive helper
func (s *SessionService) checkActive(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessionCache.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		// Cache may have expired; Mongo is the source of truth
		session, err = s.sessionRepo.GetByID(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
	}
	if session == nil {
		return nil, fmt.Errorf("session not found")
	}
	if session.Status != model.SessionActive {
		return nil, fmt.Errorf("session is not active (status: %s)", session.Status)
	}
	return session, nil
}

// GetCurrentQuestion retrieves the question the participant should see now
func (s *SessionService) GetCurrentQuestion(ctx context.Context, sessionID string) (*model.Question, error) {
	if _, err := s.checkActive(ctx, sessionID); err != nil {
		return nil, err
	}

	currentID, err := s.sessionCache.GetCurrent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if currentID == "" {
		return nil, nil // all questions seen
	}
	q, ok := scoring.Lookup(currentID)
	if !ok {
		return nil, fmt.Errorf("question %s not in catalog", currentID)
	}
	return &q, nil
}

// RecordAnswer stores a raw answer (last write wins) and advances the
// queue when it answers the question currently on screen.
func (s *SessionService) RecordAnswer(ctx context.Context, sessionID string, req *model.RecordAnswerRequest) (*model.RecordAnswerResponse, error) {
	if _, err := s.checkActive(ctx, sessionID); err != nil {
		return nil, err
	}
	if _, ok := scoring.Lookup(req.QuestionID); !ok {
		return nil, fmt.Errorf("unknown question: %s", req.QuestionID)
	}

	if err := s.sessionCache.SetAnswer(ctx, sessionID, req.QuestionID, req.Response); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToReviewers("answer_recorded", map[string]interface{}{
			"sessionId":  sessionID,
			"questionId": req.QuestionID,
		})
	}

	current, err := s.sessionCache.GetCurrent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if req.QuestionID != current {
		// Rewriting an earlier answer keeps the queue where it is
		return s.standingResponse(ctx, sessionID, true, current)
	}

	next, err := s.advance(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.RecordAnswerResponse{
		Recorded:     true,
		Done:         next == nil,
		NextQuestion: next,
	}, nil
}

// Skip advances past the current question without recording anything.
// Unanswered questions are legal; they simply score no effect.
func (s *SessionService) Skip(ctx context.Context, sessionID, questionID string) (*model.RecordAnswerResponse, error) {
	if _, err := s.checkActive(ctx, sessionID); err != nil {
		return nil, err
	}

	current, err := s.sessionCache.GetCurrent(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if questionID != current {
		// Stale skip from an out-of-sync client; just restate the queue
		return s.standingResponse(ctx, sessionID, false, current)
	}

	next, err := s.advance(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &model.RecordAnswerResponse{
		Recorded:     false,
		Done:         next == nil,
		NextQuestion: next,
	}, nil
}

// Complete freezes the answers, runs them through the scoring engine
// once, and hands the outcome to the result layer. The profile itself
// never travels back to the participant, so only the answered count is
// returned.
func (s *SessionService) Complete(ctx context.Context, sessionID string) (int, error) {
	session, err := s.checkActive(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	answers, err := s.sessionCache.GetAnswers(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load answers: %w", err)
	}
	order, err := s.sessionCache.GetOrder(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load order: %w", err)
	}

	profile := scoring.Evaluate(answers)

	if _, err := s.resultSvc.SaveResult(ctx, session, profile, answers, order); err != nil {
		return 0, err
	}

	now := time.Now()
	session.Status = model.SessionCompleted
	session.CompletedAt = &now
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return 0, fmt.Errorf("failed to update session: %w", err)
	}

	if err := s.sessionCache.Clear(ctx, sessionID); err != nil {
		return 0, fmt.Errorf("failed to clear session state: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToReviewers("session_completed", map[string]interface{}{
			"sessionId":     sessionID,
			"nickname":      session.Nickname,
			"persona":       profile.Persona,
			"quadrant":      profile.Quadrant,
			"answeredCount": len(answers),
		})
	}

	return len(answers), nil
}

// ListSessions returns the most recently started sessions
func (s *SessionService) ListSessions(ctx context.Context, limit int64) ([]model.Session, error) {
	return s.sessionRepo.List(ctx, limit)
}

// advance pops the queue and surfaces the next catalog question,
// skipping queued IDs the catalog no longer knows.
func (s *SessionService) advance(ctx context.Context, sessionID string) (*model.Question, error) {
	if _, err := s.sessionCache.PopQueue(ctx, sessionID); err != nil {
		return nil, err
	}

	queue, err := s.sessionCache.GetQueue(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		if err := s.sessionCache.SetCurrent(ctx, sessionID, ""); err != nil {
			return nil, err
		}
		return nil, nil
	}

	nextID := queue[0]
	if err := s.sessionCache.SetCurrent(ctx, sessionID, nextID); err != nil {
		return nil, err
	}

	q, ok := scoring.Lookup(nextID)
	if !ok {
		return s.advance(ctx, sessionID)
	}
	return &q, nil
}

// standingResponse restates the current position without moving it
func (s *SessionService) standingResponse(ctx context.Context, sessionID string, recorded bool, currentID string) (*model.RecordAnswerResponse, error) {
	resp := &model.RecordAnswerResponse{
		Recorded: recorded,
		Done:     currentID == "",
	}
	if currentID != "" {
		if q, ok := scoring.Lookup(currentID); ok {
			resp.NextQuestion = &q
		}
	}
	return resp, nil
}

// shuffledOrder returns an unbiased permutation of the given IDs
func shuffledOrder(ids []string) []string {
	order := make([]string, len(ids))
	copy(order, ids)
	for i := len(order) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
