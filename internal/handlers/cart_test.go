package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/handlers"
	"storefront/internal/session"
	"storefront/internal/testutil"
)

// shopBackend serves auth plus cart and order endpoints for a logged-in
// flow.
func shopBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"accessToken": "a1",
			"refreshToken": "r1",
			"userId": 7,
			"username": "alice",
			"roles": ["USER"]
		}`))
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.Header.Get("X-User-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{"id": 1, "productId": 3, "quantity": 2, "price": 5, "subtotal": 10}],
			"totalAmount": 10
		}`))
	})
	mux.HandleFunc("/api/cart/items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.Header.Get("X-User-Id"))
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/api/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/orders/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.Header.Get("X-User-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 11, "status": "SHIPPED", "createdAt": "2026-08-01T10:00:00Z", "totalAmount": 10,
			 "items": [{"id": 1, "productId": 3, "quantity": 2, "subtotal": 10}]}
		]`))
	})

	return httptest.NewServer(mux)
}

func loggedInContext(t *testing.T, method, target, backendURL string) *testutil.TestContext {
	t.Helper()

	tc := testutil.NewTestContext(t, method, target, backendURL)
	tc.FinishRestore(t)
	require.True(t, tc.Store.Login(context.Background(), "alice", "secret").Success)
	return tc
}

func TestCartRendersItems(t *testing.T) {
	backend := shopBackend(t)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodGet, "/cart", backend.URL)

	tc.CallHandler(handlers.Cart)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Product ID: 3")
	tc.AssertBodyContains(t, "Total: $10.00")
}

func TestCartEmptyState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken": "a1", "refreshToken": "r1", "userId": 7, "username": "alice", "roles": ["USER"]}`))
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [], "totalAmount": 0}`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodGet, "/cart", backend.URL)

	tc.CallHandler(handlers.Cart)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Your cart is empty")
}

func TestAddToCartRedirects(t *testing.T) {
	backend := shopBackend(t)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodPost, "/products/3/cart", backend.URL)
	tc.WithForm(url.Values{"quantity": {"2"}})
	tc.WithURLParam("id", "3")

	tc.CallHandler(handlers.AddToCart)

	tc.AssertRedirect(t, "/cart")
	assert.Equal(t, "Added 2 to cart", tc.UISession.Flash)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	backend := shopBackend(t)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodPost, "/products/3/cart", backend.URL)
	tc.WithForm(url.Values{"quantity": {"garbage"}})
	tc.WithURLParam("id", "3")

	tc.CallHandler(handlers.AddToCart)

	tc.AssertRedirect(t, "/cart")
	assert.Equal(t, "Added 1 to cart", tc.UISession.Flash)
}

func TestRemoveCartItemRedirects(t *testing.T) {
	backend := shopBackend(t)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodPost, "/cart/items/3/remove", backend.URL)
	tc.WithURLParam("productId", "3")

	tc.CallHandler(handlers.RemoveCartItem)

	tc.AssertRedirect(t, "/cart")
}

func TestOrdersRendersHistory(t *testing.T) {
	backend := shopBackend(t)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodGet, "/orders", backend.URL)

	tc.CallHandler(handlers.Orders)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Order #11")
	tc.AssertBodyContains(t, "SHIPPED")
	tc.AssertBodyContains(t, "2026-08-01")
}

func TestOrdersEmptyState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken": "a1", "refreshToken": "r1", "userId": 7, "username": "alice", "roles": ["USER"]}`))
	})
	mux.HandleFunc("/api/orders/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodGet, "/orders", backend.URL)

	tc.CallHandler(handlers.Orders)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "You have no orders yet")
}

func TestExpiredSessionForcesLoginRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken": "a1", "refreshToken": "r1", "userId": 7, "username": "alice", "roles": ["USER"]}`))
	})
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	backend := httptest.NewServer(mux)
	defer backend.Close()

	tc := loggedInContext(t, http.MethodGet, "/cart", backend.URL)

	tc.CallHandler(handlers.Cart)

	tc.AssertStatus(t, http.StatusSeeOther)
	assert.Equal(t, "/login", tc.Response.Header().Get("Location"))
	assert.Equal(t, "no-store", tc.Response.Header().Get("Cache-Control"))

	// The gateway tore the whole session down on the way through.
	assert.Nil(t, tc.Store.User())
	_, ok := tc.Creds.Get(context.Background(), session.CredentialKeyToken)
	assert.False(t, ok)
}
