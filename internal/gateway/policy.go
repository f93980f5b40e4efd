package gateway

import (
	"context"
	"net/http"
)

// Action is what the inbound stage decides to do with a response.
type Action int

const (
	ActionNone Action = iota
	ActionForceLogout
)

// ExpiryAction maps a backend response status to the session policy:
// only an outright 401 tears the session down. Business errors (other
// 4xx) and server errors stay with the caller.
func ExpiryAction(status int) Action {
	if status == http.StatusUnauthorized {
		return ActionForceLogout
	}
	return ActionNone
}

// Navigator is told to send the user back to the login entry point after
// a forced logout. The production implementation is the session store;
// tests substitute NopNavigator.
type Navigator interface {
	ForceLogin()
}

// CredentialWiper removes the persisted token pair. Satisfied by
// session.CredentialStore.
type CredentialWiper interface {
	Clear(ctx context.Context) error
}

type NopNavigator struct{}

func (NopNavigator) ForceLogin() {}
