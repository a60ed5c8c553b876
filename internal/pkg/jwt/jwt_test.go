package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, expiresAt, err := svc.GenerateAccessToken(ActorEmployee, "emp-1", "comp-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "employee", claims["actor_type"])
	assert.Equal(t, "emp-1", claims["actor_id"])
	assert.Equal(t, "comp-1", claims["company_id"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(ActorCompany, "comp-1", "comp-1")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	token, _, err := svc.GenerateAccessToken(ActorCompany, "comp-1", "comp-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRevokeToken_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	svc.RevokeToken("not-a-jwt")
	assert.True(t, svc.IsTokenRevoked("not-a-jwt"))
}

func TestPurgeExpiredRevocations(t *testing.T) {
	expired := NewJWTService(testSecret, "-1h")
	expiredToken, _, err := expired.GenerateAccessToken(ActorEmployee, "emp-1", "comp-1")
	require.NoError(t, err)

	svc := NewJWTService(testSecret, "1h")
	liveToken, _, err := svc.GenerateAccessToken(ActorEmployee, "emp-2", "comp-1")
	require.NoError(t, err)

	svc.RevokeToken(expiredToken)
	svc.RevokeToken(liveToken)

	require.NoError(t, svc.PurgeExpiredRevocations(context.Background()))

	assert.False(t, svc.IsTokenRevoked(expiredToken), "expired revocation should be purged")
	assert.True(t, svc.IsTokenRevoked(liveToken), "live revocation must survive the purge")
}

func TestActorFromContext(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	token, _, err := svc.GenerateAccessToken(ActorEmployee, "emp-1", "comp-1")
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	actor, err := ActorFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, ActorEmployee, actor.Type)
	assert.Equal(t, "emp-1", actor.ID)
	assert.Equal(t, "comp-1", actor.CompanyID)
}

func TestActorFromContext_MissingClaims(t *testing.T) {
	_, err := ActorFromContext(context.Background())
	assert.Error(t, err)
}
