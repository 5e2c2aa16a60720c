package service

import (
	"context"
	"fmt"
	"tableread/internal/cache"
	"tableread/internal/model"
	"tableread/internal/repository"
	"time"
)

// ResultService assembles result records for the reviewer side
type ResultService struct {
	resultRepo repository.ResultRepo
	tally      cache.TallyCache
}

// NewResultService creates a new result service
func NewResultService(resultRepo repository.ResultRepo, tally cache.TallyCache) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		tally:      tally,
	}
}

// SaveResult packages one completed session into its record, persists
// it and bumps the persona tally. This is the only consumer of the
// scoring engine's output.
func (s *ResultService) SaveResult(ctx context.Context, session *model.Session, profile model.Profile, answers model.AnswerSet, order []string) (*model.ResultRecord, error) {
	record := &model.ResultRecord{
		SessionID:      session.ID,
		Nickname:       session.Nickname,
		CatalogVersion: session.CatalogVersion,
		Profile:        profile,
		Answers:        answers,
		Order:          order,
		AnsweredCount:  len(answers),
		StartedAt:      session.StartedAt,
		CompletedAt:    time.Now(),
	}

	if err := s.resultRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save result: %w", err)
	}
	if err := s.tally.Increment(ctx, profile.Persona); err != nil {
		return nil, fmt.Errorf("failed to bump persona tally: %w", err)
	}

	return record, nil
}

// GetResult retrieves the record for one completed session
func (s *ResultService) GetResult(ctx context.Context, sessionID string) (*model.ResultRecord, error) {
	return s.resultRepo.GetBySessionID(ctx, sessionID)
}

// PersonaDistribution returns completion counts for all four personas,
// including the ones nobody has landed on yet.
func (s *ResultService) PersonaDistribution(ctx context.Context) ([]model.PersonaCount, error) {
	counts, err := s.tally.Distribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona tally: %w", err)
	}

	seen := make(map[string]bool, len(counts))
	for _, c := range counts {
		seen[c.Persona] = true
	}
	for _, persona := range []string{model.PersonaMaverick, model.PersonaTactician, model.PersonaSage, model.PersonaGuardian} {
		if !seen[persona] {
			counts = append(counts, model.PersonaCount{Persona: persona, Count: 0})
		}
	}
	return counts, nil
}
