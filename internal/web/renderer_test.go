package web

import (
	"strings"
	"testing"

	"storefront/internal/models"
)

func TestNewRendererParsesAllPages(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error = %v", err)
	}

	for _, name := range pageNames {
		var sb strings.Builder
		if err := renderer.Render(&sb, name, &PageData{Title: "Test"}); err != nil {
			t.Errorf("Render(%q) unexpected error = %v", name, err)
		}
		if !strings.Contains(sb.String(), "<html") {
			t.Errorf("Render(%q) did not produce the layout shell", name)
		}
	}
}

func TestRenderUnknownPage(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error = %v", err)
	}

	var sb strings.Builder
	if err := renderer.Render(&sb, "missing", &PageData{}); err == nil {
		t.Error("Render() expected error for unknown page")
	}
}

func TestLayoutNavigationFollowsSession(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error = %v", err)
	}

	t.Run("anonymous", func(t *testing.T) {
		var sb strings.Builder
		if err := renderer.Render(&sb, "home", &PageData{}); err != nil {
			t.Fatalf("Render() unexpected error = %v", err)
		}

		out := sb.String()
		if !strings.Contains(out, `href="/login"`) || !strings.Contains(out, `href="/register"`) {
			t.Error("anonymous nav should offer login and register")
		}
		if strings.Contains(out, `href="/cart"`) {
			t.Error("anonymous nav should not offer the cart")
		}
	})

	t.Run("authenticated", func(t *testing.T) {
		var sb strings.Builder
		data := &PageData{
			User: &models.User{ID: 7, Username: "alice", Roles: []string{"USER"}},
		}
		if err := renderer.Render(&sb, "home", data); err != nil {
			t.Fatalf("Render() unexpected error = %v", err)
		}

		out := sb.String()
		if !strings.Contains(out, "Hello, alice") {
			t.Error("authenticated nav should greet the user")
		}
		if !strings.Contains(out, `href="/cart"`) || !strings.Contains(out, `href="/orders"`) {
			t.Error("authenticated nav should offer cart and orders")
		}
		if strings.Contains(out, `href="/admin"`) {
			t.Error("non-admin nav should not offer the admin page")
		}
	})

	t.Run("admin", func(t *testing.T) {
		var sb strings.Builder
		data := &PageData{
			User:    &models.User{ID: 1, Username: "root", Roles: []string{"USER", "ADMIN"}},
			IsAdmin: true,
		}
		if err := renderer.Render(&sb, "home", data); err != nil {
			t.Fatalf("Render() unexpected error = %v", err)
		}

		if !strings.Contains(sb.String(), `href="/admin"`) {
			t.Error("admin nav should offer the admin page")
		}
	})

	t.Run("flash and error", func(t *testing.T) {
		var sb strings.Builder
		data := &PageData{Flash: "Saved", Error: "Something failed"}
		if err := renderer.Render(&sb, "home", data); err != nil {
			t.Fatalf("Render() unexpected error = %v", err)
		}

		out := sb.String()
		if !strings.Contains(out, "Saved") || !strings.Contains(out, "Something failed") {
			t.Error("flash and error banners should render")
		}
	})
}
