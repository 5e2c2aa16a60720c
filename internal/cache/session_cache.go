package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"tableread/internal/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache handles Redis operations for live session state
type SessionCache interface {
	// Session meta
	SetSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)

	// Presentation order (frozen at start)
	SetOrder(ctx context.Context, sessionID string, order []string) error
	GetOrder(ctx context.Context, sessionID string) ([]string, error)

	// Remaining-question queue
	SetQueue(ctx context.Context, sessionID string, ids []string) error
	GetQueue(ctx context.Context, sessionID string) ([]string, error)
	PopQueue(ctx context.Context, sessionID string) (string, error)

	// Current question
	SetCurrent(ctx context.Context, sessionID, questionID string) error
	GetCurrent(ctx context.Context, sessionID string) (string, error)

	// Raw answers, keyed by question ID
	SetAnswer(ctx context.Context, sessionID, questionID string, raw model.ResponseValue) error
	GetAnswers(ctx context.Context, sessionID string) (model.AnswerSet, error)

	// Clear drops all working state for a session
	Clear(ctx context.Context, sessionID string) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// Key helpers
func (c *sessionCache) metaKey(sessionID string) string {
	return fmt.Sprintf("session:%s:meta", sessionID)
}

func (c *sessionCache) orderKey(sessionID string) string {
	return fmt.Sprintf("session:%s:order", sessionID)
}

func (c *sessionCache) queueKey(sessionID string) string {
	return fmt.Sprintf("session:%s:q", sessionID)
}

func (c *sessionCache) currentKey(sessionID string) string {
	return fmt.Sprintf("session:%s:current", sessionID)
}

func (c *sessionCache) answersKey(sessionID string) string {
	return fmt.Sprintf("session:%s:answers", sessionID)
}

// Session meta
func (c *sessionCache) SetSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.metaKey(session.ID), data, c.ttl).Err()
}

func (c *sessionCache) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	data, err := c.client.Get(ctx, c.metaKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session model.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Presentation order
func (c *sessionCache) SetOrder(ctx context.Context, sessionID string, order []string) error {
	return c.pushList(ctx, c.orderKey(sessionID), order)
}

func (c *sessionCache) GetOrder(ctx context.Context, sessionID string) ([]string, error) {
	return c.client.LRange(ctx, c.orderKey(sessionID), 0, -1).Result()
}

// Queue operations
func (c *sessionCache) SetQueue(ctx context.Context, sessionID string, ids []string) error {
	return c.pushList(ctx, c.queueKey(sessionID), ids)
}

func (c *sessionCache) GetQueue(ctx context.Context, sessionID string) ([]string, error) {
	return c.client.LRange(ctx, c.queueKey(sessionID), 0, -1).Result()
}

func (c *sessionCache) PopQueue(ctx context.Context, sessionID string) (string, error) {
	val, err := c.client.LPop(ctx, c.queueKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (c *sessionCache) pushList(ctx context.Context, key string, values []string) error {
	c.client.Del(ctx, key)
	if len(values) == 0 {
		return nil
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	if err := c.client.RPush(ctx, key, args...).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// Current question
func (c *sessionCache) SetCurrent(ctx context.Context, sessionID, questionID string) error {
	return c.client.Set(ctx, c.currentKey(sessionID), questionID, c.ttl).Err()
}

func (c *sessionCache) GetCurrent(ctx context.Context, sessionID string) (string, error) {
	val, err := c.client.Get(ctx, c.currentKey(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// Answers
func (c *sessionCache) SetAnswer(ctx context.Context, sessionID, questionID string, raw model.ResponseValue) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	key := c.answersKey(sessionID)
	if err := c.client.HSet(ctx, key, questionID, data).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *sessionCache) GetAnswers(ctx context.Context, sessionID string) (model.AnswerSet, error) {
	data, err := c.client.HGetAll(ctx, c.answersKey(sessionID)).Result()
	if err != nil {
		return nil, err
	}
	answers := make(model.AnswerSet, len(data))
	for id, jsonStr := range data {
		var raw model.ResponseValue
		if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
			continue
		}
		answers[id] = raw
	}
	return answers, nil
}

func (c *sessionCache) Clear(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx,
		c.metaKey(sessionID),
		c.orderKey(sessionID),
		c.queueKey(sessionID),
		c.currentKey(sessionID),
		c.answersKey(sessionID),
	).Err()
}
