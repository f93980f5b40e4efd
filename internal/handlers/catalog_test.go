package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/handlers"
	"storefront/internal/testutil"
)

func TestHomeRenders(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodGet, "/", "http://backend.invalid")
	tc.FinishRestore(t)

	tc.CallHandler(handlers.Home)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Welcome to the Storefront")
	tc.AssertBodyContains(t, `href="/products"`)
}

func TestProductsRendersPage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "12", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [
				{"id": 1, "name": "Widget", "price": 9.99, "description": "A widget"},
				{"id": 2, "name": "Gadget", "price": 19.5}
			],
			"totalPages": 3
		}`))
	}))
	defer backend.Close()

	tc := testutil.NewTestContext(t, http.MethodGet, "/products", backend.URL)
	tc.FinishRestore(t)

	tc.CallHandler(handlers.Products)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "Widget")
	tc.AssertBodyContains(t, "$9.99")
	tc.AssertBodyContains(t, "Page 1 of 3")
	tc.AssertBodyContains(t, `href="/products?page=1"`)
}

func TestProductsPageParam(t *testing.T) {
	var gotPage string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content": [], "totalPages": 3}`))
	}))
	defer backend.Close()

	tc := testutil.NewTestContext(t, http.MethodGet, "/products?page=2", backend.URL)
	tc.FinishRestore(t)

	tc.CallHandler(handlers.Products)

	assert.Equal(t, "2", gotPage)
	// Last page has no next link.
	assert.NotContains(t, tc.Response.Body.String(), "Next")
	tc.AssertBodyContains(t, "Previous")
}

func TestProductsBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	tc := testutil.NewTestContext(t, http.MethodGet, "/products", backend.URL)
	tc.FinishRestore(t)

	tc.CallHandler(handlers.Products)

	tc.AssertStatus(t, http.StatusBadGateway)
	tc.AssertBodyContains(t, "Failed to load products")
}

func TestProductDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 5, "name": "Widget", "price": 9.99, "description": "A fine widget"}`))
	}))
	defer backend.Close()

	tc := testutil.NewTestContext(t, http.MethodGet, "/products/5", backend.URL)
	tc.FinishRestore(t)
	tc.WithURLParam("id", "5")

	tc.CallHandler(handlers.ProductDetail)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertBodyContains(t, "A fine widget")
	tc.AssertBodyContains(t, `action="/products/5/cart"`)
}

func TestProductDetailBadID(t *testing.T) {
	tc := testutil.NewTestContext(t, http.MethodGet, "/products/abc", "http://backend.invalid")
	tc.FinishRestore(t)
	tc.WithURLParam("id", "abc")

	tc.CallHandler(handlers.ProductDetail)

	tc.AssertStatus(t, http.StatusNotFound)
	tc.AssertBodyContains(t, "Product not found")
}
