package bttv

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"emotebot/internal/emote"
)

func TestSearchMapsResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/emotes/shared/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if q := r.URL.Query().Get("query"); q != "kappa" {
			t.Errorf("query param = %q", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"abc","code":"KappaHD","imageType":"png","user":{"id":"u1"}},
			{"id":"def","code":"KappaClaus","imageType":"gif","userId":"u2"},
			{"id":"bad","code":"","imageType":"png"}
		]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Search(context.Background(), "kappa")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("result count = %d, want 2 (empty code dropped)", len(got))
	}
	want0 := emote.Emote{ID: "abc", Code: "KappaHD", ImageType: emote.ImagePNG, OwnerID: "u1"}
	if got[0] != want0 {
		t.Errorf("result[0] = %+v, want %+v", got[0], want0)
	}
	if got[1].OwnerID != "u2" {
		t.Errorf("result[1].OwnerID = %q, want %q", got[1].OwnerID, "u2")
	}
	if got[1].ImageType != emote.ImageGIF {
		t.Errorf("result[1].ImageType = %q", got[1].ImageType)
	}
}

func TestSearchShortQuerySkipsCall(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).Search(context.Background(), "ab")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("result = %+v, want empty", got)
	}
	if hits.Load() != 0 {
		t.Errorf("endpoint was called %d times for a short query", hits.Load())
	}
}

func TestSearchMalformedResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Search(context.Background(), "kappa"); err == nil {
		t.Fatal("expected error for malformed response")
	}
}

func TestSearchHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Search(context.Background(), "kappa"); err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestFetchGlobal(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cached/emotes/global" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":"g1","code":"SourPls","imageType":"gif"}]`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).FetchGlobal(context.Background())
	if err != nil {
		t.Fatalf("FetchGlobal: %v", err)
	}
	if len(got) != 1 || got[0].Code != "SourPls" {
		t.Fatalf("result = %+v", got)
	}
}
