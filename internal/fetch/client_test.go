package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte("Title,URL\na,https://a.example.com\n"))
	}))
	defer srv.Close()

	c := NewClient("key123", 1<<20, 5*time.Second)
	defer c.Close()

	export, err := c.Get(context.Background(), srv.URL+"/exports/bookmarks.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.Filename != "bookmarks.csv" {
		t.Errorf("filename = %q, want bookmarks.csv", export.Filename)
	}
	if len(export.Data) == 0 {
		t.Error("expected body bytes")
	}
}

func TestClient_Get_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("", 1<<20, 5*time.Second)
	if _, err := c.Get(context.Background(), srv.URL+"/missing.csv"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestClient_Get_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, 2048))
	}))
	defer srv.Close()

	c := NewClient("", 1024, 5*time.Second)
	if _, err := c.Get(context.Background(), srv.URL+"/big.csv"); err == nil {
		t.Fatal("expected error for oversized body")
	}
}

func TestClient_Get_BadScheme(t *testing.T) {
	c := NewClient("", 1024, time.Second)
	if _, err := c.Get(context.Background(), "file:///etc/passwd"); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}

func TestClient_Get_NoPathFilename(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<DL></DL>"))
	}))
	defer srv.Close()

	c := NewClient("", 1<<20, 5*time.Second)
	export, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.Filename != "bookmarks.html" {
		t.Errorf("fallback filename = %q, want bookmarks.html", export.Filename)
	}
}
