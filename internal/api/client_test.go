package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIPath(t *testing.T) {
	c := NewClient("https://metadeploy.example.com/")
	got := c.apiPath("/plans/abc/")
	want := "https://metadeploy.example.com/api/plans/abc/"
	if got != want {
		t.Errorf("apiPath() = %q, want %q", got, want)
	}
}

func TestHTTPErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/missing/":
			http.Error(w, "not found", http.StatusNotFound)
		case "/api/private/":
			http.Error(w, "nope", http.StatusForbidden)
		default:
			fmt.Fprint(w, `{}`)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	ctx := context.Background()

	err := c.Get(ctx, "missing/", nil)
	if !IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	err = c.Get(ctx, "private/", nil)
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
	if IsNotFound(fmt.Errorf("wrapped: %w", err)) {
		t.Error("403 should not read as not found")
	}
	if err := c.Get(ctx, "ok/", nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTokenHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("s3cret"))
	if err := c.Get(context.Background(), "user/", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "token s3cret" {
		t.Errorf("Authorization = %q", got)
	}
}
