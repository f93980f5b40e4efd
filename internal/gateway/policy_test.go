package gateway

import (
	"net/http"
	"testing"
)

func TestExpiryAction(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   Action
	}{
		{name: "ok", status: http.StatusOK, want: ActionNone},
		{name: "created", status: http.StatusCreated, want: ActionNone},
		{name: "unauthorized tears the session down", status: http.StatusUnauthorized, want: ActionForceLogout},
		{name: "forbidden stays with the caller", status: http.StatusForbidden, want: ActionNone},
		{name: "bad request stays with the caller", status: http.StatusBadRequest, want: ActionNone},
		{name: "not found stays with the caller", status: http.StatusNotFound, want: ActionNone},
		{name: "server error stays with the caller", status: http.StatusInternalServerError, want: ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpiryAction(tt.status); got != tt.want {
				t.Errorf("ExpiryAction(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "api error with message",
			err:      &APIError{Status: 400, Message: "Bad credentials"},
			fallback: "Login failed",
			want:     "Bad credentials",
		},
		{
			name:     "api error without message",
			err:      &APIError{Status: 502},
			fallback: "Login failed",
			want:     "Login failed",
		},
		{
			name:     "plain error",
			err:      http.ErrHandlerTimeout,
			fallback: "Request failed",
			want:     "Request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err, tt.fallback); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
