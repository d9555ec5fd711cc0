package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ilyachernuha/real-time-chat/internal/auth/domain"
	"github.com/ilyachernuha/real-time-chat/internal/auth/dto"
	autherror "github.com/ilyachernuha/real-time-chat/internal/errors"
)

// SessionService turns an authenticated user into bearer credentials
// and manages the lifetime of the resulting sessions.
type SessionService struct {
	sessions domain.SessionRepository
	tokens   TokenGenerator
}

func NewSessionService(sessions domain.SessionRepository, tokens TokenGenerator) *SessionService {
	return &SessionService{sessions: sessions, tokens: tokens}
}

// Open creates a session for the user and returns the raw refresh token
// exactly once; only its hash is stored and it cannot be recovered later.
func (s *SessionService) Open(ctx context.Context, user *domain.User, deviceInfo string) (*dto.SuccessfulLoginOutput, error) {
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:               uuid.NewString(),
		UserID:           user.ID,
		RefreshTokenHash: s.tokens.HashRefreshToken(refreshToken),
		DeviceInfo:       deviceInfo,
		LatestActivity:   time.Now(),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.SuccessfulLoginOutput{
		UserID:       user.ID,
		SessionID:    session.ID,
		RefreshToken: refreshToken,
		AccessToken:  accessToken,
	}, nil
}

// Refresh rotates the refresh token: the old raw token is dead the
// moment the conditional update commits, so a replay always fails.
func (s *SessionService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenUpdateOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	newRefreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.RotateSession(ctx,
		s.tokens.HashRefreshToken(input.RefreshToken),
		s.tokens.HashRefreshToken(newRefreshToken),
		time.Now())
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, autherror.ErrInvalidRefreshToken
	}

	accessToken, err := s.tokens.GenerateAccessToken(session.UserID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenUpdateOutput{
		AccessToken:     accessToken,
		NewRefreshToken: newRefreshToken,
	}, nil
}

func (s *SessionService) List(ctx context.Context, userID string) (*dto.ActiveSessionsOutput, error) {
	sessions, err := s.sessions.ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &dto.ActiveSessionsOutput{Sessions: make([]dto.SessionOutput, 0, len(sessions))}
	for _, session := range sessions {
		out.Sessions = append(out.Sessions, dto.SessionOutput{
			SessionID:      session.ID,
			DeviceInfo:     session.DeviceInfo,
			LatestActivity: session.LatestActivity,
		})
	}

	return out, nil
}

// Close deletes one of the caller's own sessions. Closing somebody
// else's session is forbidden, not a silent no-op.
func (s *SessionService) Close(ctx context.Context, userID, sessionID string) error {
	session, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return autherror.ErrSessionNotFound
	}
	if session.UserID != userID {
		return autherror.ErrSessionForbidden
	}

	return s.sessions.DeleteSession(ctx, sessionID)
}
