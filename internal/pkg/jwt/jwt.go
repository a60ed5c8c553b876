package jwt

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ActorType identifies the kind of principal behind a token.
type ActorType string

const (
	ActorCompany  ActorType = "company"
	ActorEmployee ActorType = "employee"
	ActorAdmin    ActorType = "admin"
)

// Actor is the authenticated principal extracted from token claims.
// For employee actors CompanyID carries the employing company; for company
// actors it equals ID.
type Actor struct {
	Type      ActorType
	ID        string
	CompanyID string
}

type Service interface {
	GenerateAccessToken(actorType ActorType, actorID string, companyID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	PurgeExpiredRevocations(ctx context.Context) error
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]int64 // token -> exp unix
	mu             sync.RWMutex
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(actorType ActorType, actorID string, companyID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"actor_type": string(actorType),
		"actor_id":   actorID,
		"company_id": companyID,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	// ParseInsecure: claim validation would reject an expired token, and
	// the real expiry is exactly what the purge job needs from it.
	tok, err := jwt.ParseInsecure([]byte(token))

	// Unparseable tokens get a day; they can never validate anyway, the
	// entry just needs an expiry for the purge job.
	exp := time.Now().Add(24 * time.Hour).Unix()
	if err == nil && !tok.Expiration().IsZero() {
		exp = tok.Expiration().Unix()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = exp
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PurgeExpiredRevocations drops revocation entries whose tokens have expired
// on their own. Run periodically by the scheduler.
func (j *JWTService) PurgeExpiredRevocations(ctx context.Context) error {
	now := time.Now().Unix()
	j.mu.Lock()
	defer j.mu.Unlock()
	for token, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, token)
		}
	}
	return nil
}

// ActorFromContext extracts the authenticated actor from the request
// context populated by the jwtauth verifier.
func ActorFromContext(ctx context.Context) (Actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	actorType, ok := claims["actor_type"].(string)
	if !ok || actorType == "" {
		return Actor{}, fmt.Errorf("actor_type claim is missing or invalid")
	}

	actorID, ok := claims["actor_id"].(string)
	if !ok || actorID == "" {
		return Actor{}, fmt.Errorf("actor_id claim is missing or invalid")
	}

	companyID, _ := claims["company_id"].(string)

	return Actor{
		Type:      ActorType(actorType),
		ID:        actorID,
		CompanyID: companyID,
	}, nil
}
