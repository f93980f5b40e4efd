package session

import (
	"context"
	"log/slog"
	"sync"

	"storefront/internal/gateway"
	"storefront/internal/metrics"
	"storefront/internal/models"
)

// Backend is the slice of the gateway the session store drives.
// Satisfied by *gateway.Client.
type Backend interface {
	Login(ctx context.Context, usernameOrEmail, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
	SetToken(token string)
	ClearToken()
}

// Result is what login and register hand back to the page layer:
// either success, or a message it can render without a type switch.
type Result struct {
	Success bool
	Error   string
}

// Store owns the process-wide session: current user, bearer token and
// the one-shot loading flag. All other components hold a read-only view
// plus the mutation operations below; only the store writes the
// gateway's token configuration.
type Store struct {
	creds   CredentialStore
	backend Backend
	logger  *slog.Logger

	mu      sync.RWMutex
	user    *models.User
	token   string
	loading bool
}

func NewStore(creds CredentialStore, backend Backend, logger *slog.Logger) *Store {
	return &Store{
		creds:   creds,
		backend: backend,
		logger:  logger,
		loading: true,
	}
}

// Restore runs once at startup. A persisted token is validated against
// the identity endpoint; any failure is absorbed into a cleared session.
// Either way the store leaves the loading state for good.
func (s *Store) Restore(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, ok := s.creds.Get(ctx, CredentialKeyToken)
	if !ok || token == "" {
		metrics.SessionRestores.WithLabelValues("anonymous").Inc()
		return
	}

	s.backend.SetToken(token)

	user, err := s.backend.Me(ctx)
	if err != nil {
		s.logger.Info("persisted token rejected, clearing session", "error", err)
		metrics.SessionRestores.WithLabelValues("rejected").Inc()
		s.Logout(ctx)
		return
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	metrics.SessionRestores.WithLabelValues("restored").Inc()
	s.logger.Info("session restored", "username", user.Username)
}

func (s *Store) Login(ctx context.Context, usernameOrEmail, password string) Result {
	resp, err := s.backend.Login(ctx, usernameOrEmail, password)
	if err != nil {
		metrics.SessionLogins.WithLabelValues("failure").Inc()
		return Result{Success: false, Error: gateway.ErrorMessage(err, "Login failed")}
	}

	s.establish(ctx, resp)

	metrics.SessionLogins.WithLabelValues("success").Inc()
	s.logger.Info("user logged in", "username", resp.Username)
	return Result{Success: true}
}

func (s *Store) Register(ctx context.Context, req models.RegisterRequest) Result {
	resp, err := s.backend.Register(ctx, req)
	if err != nil {
		return Result{Success: false, Error: gateway.ErrorMessage(err, "Registration failed")}
	}

	s.establish(ctx, resp)

	s.logger.Info("user registered", "username", resp.Username)
	return Result{Success: true}
}

// establish persists the token pair and flips the in-memory session to
// authenticated. Last write wins when mutations race.
func (s *Store) establish(ctx context.Context, resp *models.AuthResponse) {
	if err := s.creds.Set(ctx, CredentialKeyToken, resp.AccessToken); err != nil {
		s.logger.Error("failed to persist access token", "error", err)
	}
	if err := s.creds.Set(ctx, CredentialKeyRefreshToken, resp.RefreshToken); err != nil {
		s.logger.Error("failed to persist refresh token", "error", err)
	}

	s.backend.SetToken(resp.AccessToken)

	user := resp.User

	s.mu.Lock()
	s.user = &user
	s.token = resp.AccessToken
	s.mu.Unlock()
}

// Logout clears the in-memory session, both persisted credential
// entries and the gateway's token attachment. Safe to call when already
// logged out.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.creds.Delete(ctx, CredentialKeyToken); err != nil {
		s.logger.Error("failed to remove persisted token", "error", err)
	}
	if err := s.creds.Delete(ctx, CredentialKeyRefreshToken); err != nil {
		s.logger.Error("failed to remove persisted refresh token", "error", err)
	}

	s.backend.ClearToken()
}

// ForceLogin implements gateway.Navigator: the inbound stage already
// wiped the persisted credentials, so only the in-memory state and the
// token attachment are torn down here. Running without touching the
// credential store is what keeps a rejected restore call from looping.
func (s *Store) ForceLogin() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	s.backend.ClearToken()
}

// User returns a read-only snapshot of the current user, or nil.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// IsAdmin reports whether the current user carries the administrator
// role. False, not an error, for an anonymous session.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasRole(models.RoleAdmin)
}
