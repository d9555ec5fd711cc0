package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/ilyachernuha/real-time-chat/internal/auth/service TokenGenerator

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
	"github.com/ilyachernuha/real-time-chat/pkg/constant"
)

type TokenGenerator interface {
	GenerateAccessToken(userID, sessionID string) (string, error)
	VerifyAccessToken(tokenString string) (userID, sessionID string, err error)
	GenerateRefreshToken() (string, error)
	HashRefreshToken(token string) string
}

// TokenService signs short-lived access tokens binding a user to a
// session, and mints the opaque refresh tokens the sessions table keys
// on. The secret is injected so tests can use a deterministic key.
type TokenService struct {
	Secret            []byte
	AccessTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
}

func NewTokenService(secret string, accessMinutes int) *TokenService {
	return &TokenService{
		Secret:            []byte(secret),
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
	}
}

func (ts *TokenService) GenerateAccessToken(userID, sessionID string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.Secret)
}

// VerifyAccessToken parses and validates the given access token string.
func (ts *TokenService) VerifyAccessToken(tokenString string) (string, string, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", autherror.ErrTokenExpired
		}

		return "", "", autherror.ErrTokenInvalid
	}

	if !token.Valid {
		return "", "", autherror.ErrTokenInvalid
	}

	return claims.UserID, claims.SessionID, nil
}

// GenerateRefreshToken returns a high-entropy opaque token. The caller
// sees the raw value exactly once; only its hash is ever stored.
func (ts *TokenService) GenerateRefreshToken() (string, error) {
	buf := make([]byte, constant.RefreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func (ts *TokenService) HashRefreshToken(token string) string {
	sum := sha512.Sum512([]byte(token))
	return hex.EncodeToString(sum[:])
}
