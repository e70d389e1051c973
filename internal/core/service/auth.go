package service

import (
	"context"
	"fmt"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

// LogoutScope selects which sessions a logout revokes.
type LogoutScope string

const (
	// LogoutScopeSession revokes only the presented token.
	LogoutScopeSession LogoutScope = "session"

	// LogoutScopeUser revokes every session of the teacher.
	LogoutScopeUser LogoutScope = "user"
)

// ParseLogoutScope validates a configured scope name. Empty means session.
func ParseLogoutScope(s string) (LogoutScope, error) {
	switch LogoutScope(s) {
	case "", LogoutScopeSession:
		return LogoutScopeSession, nil
	case LogoutScopeUser:
		return LogoutScopeUser, nil
	default:
		return "", fmt.Errorf("unknown logout scope %q", s)
	}
}

// AuthService handles teacher login, token resolution and logout.
type AuthService struct {
	credentials CredentialStore
	sessions    SessionRepository
	scope       LogoutScope
	recorder    Recorder
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	// LogoutScope selects what logout revokes (default: session).
	LogoutScope LogoutScope

	// Recorder receives login outcomes (default: discard).
	Recorder Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(credentials CredentialStore, sessions SessionRepository, config *AuthServiceConfig) *AuthService {
	if config == nil {
		config = &AuthServiceConfig{}
	}
	s := &AuthService{
		credentials: credentials,
		sessions:    sessions,
		scope:       config.LogoutScope,
		recorder:    config.Recorder,
	}
	if s.scope == "" {
		s.scope = LogoutScopeSession
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	return s
}

// LoginRequest contains parameters for a teacher login.
type LoginRequest struct {
	Username  string
	Password  string
	ClientIP  string
	UserAgent string
}

// LoginResponse contains the issued token.
type LoginResponse struct {
	// Token is the plaintext bearer token. It is returned once.
	Token       string
	TeacherName string
	SessionID   string
}

// Login checks the credentials and opens a new session.
//
// A failed login never says whether the username exists.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (resp *LoginResponse, err error) {
	defer func() { s.recorder.RecordLogin(resultOf(err)) }()

	teacher, ok := s.credentials.Authenticate(req.Username, req.Password)
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	plaintext, hash, err := domain.GenerateToken()
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(hash, teacher)
	if err != nil {
		return nil, err
	}
	session.ClientIP = req.ClientIP
	session.UserAgent = req.UserAgent

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}
	s.recorder.SetActiveSessions(s.sessions.Count())

	return &LoginResponse{
		Token:       plaintext,
		TeacherName: teacher.Name,
		SessionID:   session.ID,
	}, nil
}

// Resolve maps a bearer token to the caller identity.
//
// Malformed tokens and tokens without a live session resolve to
// Anonymous; Resolve never fails.
func (s *AuthService) Resolve(ctx context.Context, token string) domain.Identity {
	if !domain.ValidateTokenFormat(token) {
		return domain.Anonymous
	}
	session, err := s.sessions.GetByToken(ctx, domain.HashToken(token))
	if err != nil {
		return domain.Anonymous
	}
	return domain.Identity{
		Username:    session.Username,
		TeacherName: session.Name,
		SessionID:   session.ID,
	}
}

// LogoutResponse reports how many sessions were revoked.
type LogoutResponse struct {
	Revoked int
}

// Logout revokes the session of token, or all of the teacher's sessions
// when the service runs with LogoutScopeUser.
func (s *AuthService) Logout(ctx context.Context, token string) (*LogoutResponse, error) {
	if token == "" {
		return nil, domain.ErrNotAuthenticated
	}

	session, err := s.sessions.DeleteByToken(ctx, domain.HashToken(token))
	if err != nil {
		return nil, domain.ErrNotAuthenticated
	}
	revoked := 1

	if s.scope == LogoutScopeUser {
		n, err := s.sessions.DeleteByUsername(ctx, session.Username)
		if err != nil {
			return nil, domain.ErrInternalServer.WithCause(err)
		}
		revoked += n
	}
	s.recorder.SetActiveSessions(s.sessions.Count())

	return &LogoutResponse{Revoked: revoked}, nil
}

// WhoAmIResponse describes the caller of a request.
type WhoAmIResponse struct {
	Authenticated bool
	TeacherName   string
	Username      string
}

// WhoAmI reports who a token belongs to. It never fails.
func (s *AuthService) WhoAmI(ctx context.Context, token string) *WhoAmIResponse {
	id := s.Resolve(ctx, token)
	if !id.IsTeacher() {
		return &WhoAmIResponse{}
	}
	return &WhoAmIResponse{
		Authenticated: true,
		TeacherName:   id.TeacherName,
		Username:      id.Username,
	}
}
