package session

import (
	"context"
	"fmt"
	"log/slog"

	"storefront/internal/config"
	"storefront/internal/metrics"
)

// Credential keys mirror the layout the browser build kept in
// localStorage.
const (
	CredentialKeyToken        = "token"
	CredentialKeyRefreshToken = "refreshToken"
)

// CredentialStore persists the token pair across restarts. Presence of
// the "token" entry is the sole trigger for session restoration.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// NewCredentialStore returns the store selected by configuration.
func NewCredentialStore(cfg *config.Config, logger *slog.Logger) (CredentialStore, error) {
	switch cfg.Credentials.Store {
	case metrics.CredentialStoreTypeRedis:
		return NewRedisCredentialStore(cfg, logger)
	case metrics.CredentialStoreTypeMemory:
		return NewMemCredentialStore(), nil
	case metrics.CredentialStoreTypeFile:
		fallthrough
	default:
		return NewFileCredentialStore(cfg.Credentials.Path, logger)
	}
}

var errUnknownCredentialKey = fmt.Errorf("unknown credential key")

func validCredentialKey(key string) bool {
	return key == CredentialKeyToken || key == CredentialKeyRefreshToken
}
