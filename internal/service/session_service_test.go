package service

import (
	"context"
	"sort"
	"tableread/internal/model"
	"tableread/internal/scoring"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the Mongo and Redis layers.

type memSessionRepo struct {
	sessions map[string]*model.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*model.Session{}}
}

func (r *memSessionRepo) Create(_ context.Context, s *model.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *memSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *memSessionRepo) Update(_ context.Context, s *model.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *memSessionRepo) List(_ context.Context, limit int64) ([]model.Session, error) {
	var out []model.Session
	for _, s := range r.sessions {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memSessionCache struct {
	sessions map[string]*model.Session
	orders   map[string][]string
	queues   map[string][]string
	currents map[string]string
	answers  map[string]model.AnswerSet
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{
		sessions: map[string]*model.Session{},
		orders:   map[string][]string{},
		queues:   map[string][]string{},
		currents: map[string]string{},
		answers:  map[string]model.AnswerSet{},
	}
}

func (c *memSessionCache) SetSession(_ context.Context, s *model.Session) error {
	copied := *s
	c.sessions[s.ID] = &copied
	return nil
}

func (c *memSessionCache) GetSession(_ context.Context, id string) (*model.Session, error) {
	s, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (c *memSessionCache) SetOrder(_ context.Context, id string, order []string) error {
	c.orders[id] = append([]string(nil), order...)
	return nil
}

func (c *memSessionCache) GetOrder(_ context.Context, id string) ([]string, error) {
	return append([]string(nil), c.orders[id]...), nil
}

func (c *memSessionCache) SetQueue(_ context.Context, id string, ids []string) error {
	c.queues[id] = append([]string(nil), ids...)
	return nil
}

func (c *memSessionCache) GetQueue(_ context.Context, id string) ([]string, error) {
	return append([]string(nil), c.queues[id]...), nil
}

func (c *memSessionCache) PopQueue(_ context.Context, id string) (string, error) {
	q := c.queues[id]
	if len(q) == 0 {
		return "", nil
	}
	head := q[0]
	c.queues[id] = q[1:]
	return head, nil
}

func (c *memSessionCache) SetCurrent(_ context.Context, id, questionID string) error {
	c.currents[id] = questionID
	return nil
}

func (c *memSessionCache) GetCurrent(_ context.Context, id string) (string, error) {
	return c.currents[id], nil
}

func (c *memSessionCache) SetAnswer(_ context.Context, id, questionID string, raw model.ResponseValue) error {
	if c.answers[id] == nil {
		c.answers[id] = model.AnswerSet{}
	}
	c.answers[id][questionID] = raw
	return nil
}

func (c *memSessionCache) GetAnswers(_ context.Context, id string) (model.AnswerSet, error) {
	out := model.AnswerSet{}
	for k, v := range c.answers[id] {
		out[k] = v
	}
	return out, nil
}

func (c *memSessionCache) Clear(_ context.Context, id string) error {
	delete(c.sessions, id)
	delete(c.orders, id)
	delete(c.queues, id)
	delete(c.currents, id)
	delete(c.answers, id)
	return nil
}

type memResultRepo struct {
	records map[string]*model.ResultRecord
}

func newMemResultRepo() *memResultRepo {
	return &memResultRepo{records: map[string]*model.ResultRecord{}}
}

func (r *memResultRepo) Save(_ context.Context, record *model.ResultRecord) error {
	copied := *record
	r.records[record.SessionID] = &copied
	return nil
}

func (r *memResultRepo) GetBySessionID(_ context.Context, sessionID string) (*model.ResultRecord, error) {
	record, ok := r.records[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

type memTally struct {
	counts map[string]int64
}

func newMemTally() *memTally {
	return &memTally{counts: map[string]int64{}}
}

func (m *memTally) Increment(_ context.Context, persona string) error {
	m.counts[persona]++
	return nil
}

func (m *memTally) Distribution(_ context.Context) ([]model.PersonaCount, error) {
	var out []model.PersonaCount
	for p, n := range m.counts {
		out = append(out, model.PersonaCount{Persona: p, Count: n})
	}
	return out, nil
}

type feedRecorder struct {
	events []string
}

func (f *feedRecorder) BroadcastToReviewers(msgType string, _ interface{}) {
	f.events = append(f.events, msgType)
}

type fixture struct {
	svc     *SessionService
	repo    *memSessionRepo
	cache   *memSessionCache
	results *memResultRepo
	tally   *memTally
	feed    *feedRecorder
}

func newFixture() *fixture {
	repo := newMemSessionRepo()
	sessionCache := newMemSessionCache()
	results := newMemResultRepo()
	tally := newMemTally()
	feed := &feedRecorder{}

	resultSvc := NewResultService(results, tally)
	svc := NewSessionService(repo, sessionCache, NewAuthService(), resultSvc)
	svc.SetBroadcaster(feed)

	return &fixture{svc: svc, repo: repo, cache: sessionCache, results: results, tally: tally, feed: feed}
}

func TestShuffledOrder(t *testing.T) {
	ids := scoring.IDs()

	order := shuffledOrder(ids)
	require.Len(t, order, len(ids))
	assert.ElementsMatch(t, ids, order)
	assert.Equal(t, scoring.IDs(), ids, "input slice must stay untouched")
}

func TestStartSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Start(ctx, "Doyle")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, 25, resp.QuestionCount)
	require.NotNil(t, resp.FirstQuestion)

	current, err := f.cache.GetCurrent(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, resp.FirstQuestion.ID, current)

	order, err := f.cache.GetOrder(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.ElementsMatch(t, scoring.IDs(), order)

	stored, err := f.repo.GetByID(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, model.SessionActive, stored.Status)
	assert.Equal(t, scoring.CatalogVersion, stored.CatalogVersion)

	assert.Equal(t, []string{"session_started"}, f.feed.events)
}

func answerFor(q *model.Question) model.ResponseValue {
	switch q.Modality {
	case model.ModalityAgree:
		v := 4
		return model.ResponseValue{Scale: &v}
	case model.ModalityChoice:
		return model.ResponseValue{Option: q.Options[0]}
	default:
		v := q.ScaleMin
		return model.ResponseValue{Slider: &v}
	}
}

func TestSessionFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Start(ctx, "Jennifer")
	require.NoError(t, err)
	sessionID := resp.SessionID

	// Answer the first question; the queue should move on
	first := resp.FirstQuestion
	rec, err := f.svc.RecordAnswer(ctx, sessionID, &model.RecordAnswerRequest{
		QuestionID: first.ID,
		Response:   answerFor(first),
	})
	require.NoError(t, err)
	assert.True(t, rec.Recorded)
	assert.False(t, rec.Done)
	require.NotNil(t, rec.NextQuestion)
	assert.NotEqual(t, first.ID, rec.NextQuestion.ID)

	// Rewriting the already-answered question must not advance
	again, err := f.svc.RecordAnswer(ctx, sessionID, &model.RecordAnswerRequest{
		QuestionID: first.ID,
		Response:   answerFor(first),
	})
	require.NoError(t, err)
	assert.Equal(t, rec.NextQuestion.ID, again.NextQuestion.ID)

	// Skip the question on screen
	skipped, err := f.svc.Skip(ctx, sessionID, again.NextQuestion.ID)
	require.NoError(t, err)
	assert.False(t, skipped.Recorded)

	// Walk the rest of the queue
	q := skipped.NextQuestion
	for q != nil {
		step, err := f.svc.RecordAnswer(ctx, sessionID, &model.RecordAnswerRequest{
			QuestionID: q.ID,
			Response:   answerFor(q),
		})
		require.NoError(t, err)
		q = step.NextQuestion
	}

	currentQ, err := f.svc.GetCurrentQuestion(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, currentQ, "queue finished")

	answered, err := f.svc.Complete(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 24, answered, "one skip out of 25")

	record, err := f.results.GetBySessionID(ctx, sessionID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "Jennifer", record.Nickname)
	assert.Equal(t, 24, record.AnsweredCount)
	assert.NotEmpty(t, record.Profile.Persona)
	assert.Len(t, record.Order, 25)

	assert.EqualValues(t, 1, f.tally.counts[record.Profile.Persona])

	stored, err := f.repo.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)

	// Working state is gone once the session is frozen
	answers, err := f.cache.GetAnswers(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, answers)

	assert.Contains(t, f.feed.events, "answer_recorded")
	assert.Equal(t, "session_completed", f.feed.events[len(f.feed.events)-1])
}

func TestCompleteEmptySession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Start(ctx, "")
	require.NoError(t, err)

	answered, err := f.svc.Complete(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Zero(t, answered)

	record, err := f.results.GetBySessionID(ctx, resp.SessionID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 0.0, record.Profile.NormX)
	assert.Equal(t, 0.0, record.Profile.NormY)
	assert.Equal(t, model.PersonaMaverick, record.Profile.Persona)
}

func TestRecordAnswerValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Start(ctx, "Phil")
	require.NoError(t, err)

	_, err = f.svc.RecordAnswer(ctx, resp.SessionID, &model.RecordAnswerRequest{
		QuestionID: "river_raise",
	})
	assert.Error(t, err)

	_, err = f.svc.RecordAnswer(ctx, "s_missing", &model.RecordAnswerRequest{
		QuestionID: "bluff_thrill",
	})
	assert.Error(t, err)
}

func TestCompleteTwice(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.svc.Start(ctx, "Daniel")
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, resp.SessionID)
	require.NoError(t, err)

	_, err = f.svc.Complete(ctx, resp.SessionID)
	assert.Error(t, err, "a frozen session stays frozen")
}

func TestPersonaDistributionFillsZeroes(t *testing.T) {
	tally := newMemTally()
	resultSvc := NewResultService(newMemResultRepo(), tally)
	ctx := context.Background()

	require.NoError(t, tally.Increment(ctx, model.PersonaSage))

	counts, err := resultSvc.PersonaDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 4)

	byPersona := map[string]int64{}
	for _, c := range counts {
		byPersona[c.Persona] = c.Count
	}
	assert.EqualValues(t, 1, byPersona[model.PersonaSage])
	assert.EqualValues(t, 0, byPersona[model.PersonaMaverick])
	assert.EqualValues(t, 0, byPersona[model.PersonaTactician])
	assert.EqualValues(t, 0, byPersona[model.PersonaGuardian])
}
