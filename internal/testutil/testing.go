package testutil

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"storefront/internal/config"
	"storefront/internal/gateway"
	"storefront/internal/middlewares"
	"storefront/internal/session"
	"storefront/internal/web"
)

// TestContext wires real components — in-memory credential store, real
// session store, real gateway client — against whatever backend URL the
// test supplies, usually an httptest server.
type TestContext struct {
	AppContext *middlewares.AppContext
	Request    *http.Request
	Response   *httptest.ResponseRecorder
	Creds      *session.MemCredentialStore
	Store      *session.Store
	Backend    *gateway.Client
	UISession  *UISessionStub
	LogHandler *TestLogHandler
}

// NewTestContext builds a context whose gateway points at backendURL.
// Pass an unreachable URL when the test never touches the backend.
func NewTestContext(t *testing.T, method, target, backendURL string) *TestContext {
	t.Helper()

	cfg := &config.Config{
		Backend: config.BackendConfig{
			BaseURL: backendURL,
			Timeout: 5 * time.Second,
		},
	}

	logHandler := NewTestLogHandler()
	logger := slog.New(logHandler)

	creds := session.NewMemCredentialStore()
	backend := gateway.NewClient(cfg, logger)
	store := session.NewStore(creds, backend, logger)
	backend.OnAuthFailure(creds, store)

	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}

	uiSession := &UISessionStub{}

	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()

	appCtx := &middlewares.AppContext{
		Context:   req.Context(),
		Config:    cfg,
		Logger:    logger,
		Session:   store,
		Backend:   backend,
		UISession: uiSession,
		Renderer:  renderer,
		Request:   req,
		Response:  rr,
	}

	return &TestContext{
		AppContext: appCtx,
		Request:    req,
		Response:   rr,
		Creds:      creds,
		Store:      store,
		Backend:    backend,
		UISession:  uiSession,
		LogHandler: logHandler,
	}
}

// FinishRestore marks session restoration as settled without touching
// the backend, for tests that start from an anonymous session.
func (tc *TestContext) FinishRestore(t *testing.T) {
	t.Helper()
	tc.Store.Restore(context.Background())
}

// WithForm replaces the request with a form-encoded POST body.
func (tc *TestContext) WithForm(form url.Values) *TestContext {
	req := httptest.NewRequest(tc.Request.Method, tc.Request.URL.String(), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return tc.WithRequest(req)
}

// WithURLParam injects a chi route parameter, for handlers called
// outside a router.
func (tc *TestContext) WithURLParam(key, value string) *TestContext {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	req := tc.Request.WithContext(context.WithValue(tc.Request.Context(), chi.RouteCtxKey, routeCtx))
	return tc.WithRequest(req)
}

func (tc *TestContext) WithRequest(req *http.Request) *TestContext {
	tc.Request = req
	tc.AppContext.Request = req
	tc.AppContext.Context = req.Context()
	return tc
}

func (tc *TestContext) CallHandler(handler middlewares.AppHandler) {
	handler(tc.AppContext)
}

func (tc *TestContext) AssertStatus(t *testing.T, expectedStatus int) {
	t.Helper()
	if tc.Response.Code != expectedStatus {
		t.Errorf("Expected status %d, got %d", expectedStatus, tc.Response.Code)
	}
}

func (tc *TestContext) AssertRedirect(t *testing.T, location string) {
	t.Helper()
	if tc.Response.Code < 300 || tc.Response.Code >= 400 {
		t.Errorf("Expected a redirect status, got %d", tc.Response.Code)
	}
	if got := tc.Response.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}

func (tc *TestContext) AssertBodyContains(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(tc.Response.Body.String(), substr) {
		t.Errorf("Expected body to contain %q", substr)
	}
}

func (tc *TestContext) GetJSONResponse(t *testing.T) map[string]any {
	t.Helper()
	var response map[string]any
	if err := json.Unmarshal(tc.Response.Body.Bytes(), &response); err != nil {
		t.Fatalf("Could not parse JSON response: %v", err)
	}
	return response
}

func (tc *TestContext) AssertJSONString(t *testing.T, field, expected string) {
	t.Helper()
	response := tc.GetJSONResponse(t)
	actual, exists := response[field]
	if !exists {
		t.Errorf("Field %s not found in response", field)
		return
	}
	if actual != expected {
		t.Errorf("Expected %s to be %q, got %v", field, expected, actual)
	}
}

func (tc *TestContext) AssertLogContains(t *testing.T, level slog.Level, message string) {
	t.Helper()
	if !tc.LogHandler.ContainsMessage(level, message) {
		t.Errorf("Expected to find log entry with level %v containing message: %s", level, message)
	}
}

// UISessionStub is an in-memory middlewares.UISessionProvider: one flash
// slot, one return-to slot, no cookies.
type UISessionStub struct {
	Flash    string
	ReturnTo string
}

func (s *UISessionStub) PutFlash(ctx *middlewares.AppContext, message string) {
	s.Flash = message
}

func (s *UISessionStub) PopFlash(ctx *middlewares.AppContext) string {
	flash := s.Flash
	s.Flash = ""
	return flash
}

func (s *UISessionStub) SetReturnTo(ctx *middlewares.AppContext, url string) {
	s.ReturnTo = url
}

func (s *UISessionStub) PopReturnTo(ctx *middlewares.AppContext) string {
	returnTo := s.ReturnTo
	s.ReturnTo = ""
	return returnTo
}

func (s *UISessionStub) LoadAndSave(next http.Handler) http.Handler {
	return next
}
