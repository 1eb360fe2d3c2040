// Package token issues and validates the session tokens that scope a
// wizard session to a single submission.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/towoju5/bridge-verification-system-sub001/config"
)

var authConf = config.AuthConfig()

// SessionClaims binds a token to one submission.
type SessionClaims struct {
	SubmissionID string `json:"submission_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a token scoped to the given submission.
func GenerateSessionToken(submissionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SubmissionID: submissionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authConf.SessionLifespan)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(authConf.Secret))
}

// ValidateSessionToken parses a token and returns the submission it is
// scoped to.
func ValidateSessionToken(tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(authConf.Secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, errors.New("invalid session token")
	}
	return uuid.Parse(claims.SubmissionID)
}
