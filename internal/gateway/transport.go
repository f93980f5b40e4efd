package gateway

import (
	"net/http"

	"github.com/google/uuid"

	"storefront/internal/metrics"
)

type TokenSource interface {
	Token() string
}

// bearerTransport is the outbound stage: it attaches the currently held
// bearer token to every request, so call sites never set the
// Authorization header themselves.
type bearerTransport struct {
	source TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if token := t.source.Token(); token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	if out.Header.Get("X-Request-Id") == "" {
		out.Header.Set("X-Request-Id", uuid.New().String())
	}

	return t.next.RoundTrip(out)
}

// expiryTransport is the inbound stage: it applies the expiry policy to
// every response. On a forced logout it synchronously wipes the
// persisted credentials and notifies the navigator, then hands the
// response back so the caller still sees the failure.
type expiryTransport struct {
	policy func(int) Action
	client *Client
	next   http.RoundTripper
}

func (t *expiryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if t.policy(resp.StatusCode) == ActionForceLogout {
		metrics.ForcedLogouts.Inc()

		creds, nav := t.client.authFailureHooks()
		if creds != nil {
			if err := creds.Clear(req.Context()); err != nil {
				t.client.logger.Error("failed to clear persisted credentials after auth failure", "error", err)
			}
		}
		if nav != nil {
			nav.ForceLogin()
		}
	}

	return resp, nil
}
