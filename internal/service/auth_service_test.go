package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Setenv("REVIEWER_USERNAME", "deckmaster")
	t.Setenv("REVIEWER_PASSWORD", "hunter2")
	svc := NewAuthService()

	resp, err := svc.Login("deckmaster", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, strings.HasPrefix(resp.ReviewerID, "rev_"))

	claims, err := svc.ValidateReviewerToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ReviewerID, claims.ReviewerID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("REVIEWER_USERNAME", "deckmaster")
	t.Setenv("REVIEWER_PASSWORD", "hunter2")
	svc := NewAuthService()

	_, err := svc.Login("deckmaster", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParticipantTokenRoundTrip(t *testing.T) {
	svc := NewAuthService()

	token, err := svc.GenerateParticipantToken("s_ab12cd34", "p_ef56ab78")
	require.NoError(t, err)

	claims, err := svc.ValidateParticipantToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s_ab12cd34", claims.SessionID)
	assert.Equal(t, "p_ef56ab78", claims.ParticipantID)
	require.NotNil(t, claims.ExpiresAt, "participant tokens must expire")
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewAuthService()

	_, err := svc.ValidateReviewerToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateParticipantToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRotatedSecretInvalidatesTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	first := NewAuthService()
	token, err := first.GenerateParticipantToken("s_1", "p_1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	second := NewAuthService()
	_, err = second.ValidateParticipantToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
