package soccerdata

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	crerr "github.com/cockroachdb/errors"
)

func TestClientMatchSendsToken(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken, gotMatchID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("auth_token")
		gotMatchID = r.URL.Query().Get("match_id")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 101, "status": "finished"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "secret-token"})

	doc, err := client.Match(context.Background(), 101)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if gotPath != "/match/" {
		t.Fatalf("expected path /match/, got %q", gotPath)
	}
	if gotToken != "secret-token" {
		t.Fatalf("expected auth_token to be sent, got %q", gotToken)
	}
	if gotMatchID != "101" {
		t.Fatalf("expected match_id=101, got %q", gotMatchID)
	}
	if doc.Data["status"] != "finished" {
		t.Fatalf("unexpected decoded payload: %#v", doc.Data)
	}
	if !strings.Contains(string(doc.Raw), `"finished"`) {
		t.Fatalf("raw bytes not preserved: %s", doc.Raw)
	}
}

func TestClientDecodesGzipBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			t.Errorf("expected gzip accept-encoding, got %q", r.Header.Get("Accept-Encoding"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte(`{"id": 7, "status": "finished"}`))
		_ = gz.Close()
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	doc, err := client.Match(context.Background(), 7)
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if doc.Data["status"] != "finished" {
		t.Fatalf("gzip body not decoded: %#v", doc.Data)
	}
	if !strings.Contains(string(doc.Raw), `"finished"`) {
		t.Fatalf("raw bytes must hold the decompressed body: %q", doc.Raw)
	}
}

func TestClientCorruptGzipIsTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte(`not gzip at all`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	_, err := client.Match(context.Background(), 7)
	if !crerr.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClientMissingToken(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "http://localhost:1"})

	_, err := client.Match(context.Background(), 1)
	if !crerr.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if !IsUpstream(err) {
		t.Fatalf("missing token should count as upstream failure")
	}
}

func TestClientStatusErrorDetail(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail": "subscription expired"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	_, err := client.Standing(context.Background(), 228, "2024-2025")
	var statusErr *StatusError
	if !crerr.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", statusErr.StatusCode)
	}
	if statusErr.Detail != "subscription expired" {
		t.Fatalf("expected detail from body, got %q", statusErr.Detail)
	}
	if !IsUpstream(err) {
		t.Fatalf("StatusError should count as upstream failure")
	}
}

func TestClientStatusErrorNonJSONBody(t *testing.T) {
	t.Parallel()

	longBody := strings.Repeat("x", 600)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(longBody))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	_, err := client.UpcomingPreviews(context.Background())
	var statusErr *StatusError
	if !crerr.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if len(statusErr.Detail) != 243 || !strings.HasSuffix(statusErr.Detail, "...") {
		t.Fatalf("expected abbreviated detail, got %d bytes", len(statusErr.Detail))
	}
}

func TestClientInvalidJSONIsTransport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	_, err := client.HeadToHead(context.Background(), 10, 20)
	if !crerr.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestClientMatchesByLeagueOptionalParams(t *testing.T) {
	t.Parallel()

	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, Token: "tok"})

	if _, err := client.MatchesByLeague(context.Background(), 326, "", ""); err != nil {
		t.Fatalf("MatchesByLeague returned error: %v", err)
	}
	if strings.Contains(query, "season=") || strings.Contains(query, "date=") {
		t.Fatalf("empty optional params must be omitted, got %q", query)
	}
	if !strings.Contains(query, "league_id=326") {
		t.Fatalf("expected league_id in query, got %q", query)
	}
}

func TestRedactAPIURL(t *testing.T) {
	t.Parallel()

	redacted := redactAPIURL("https://api.example.com/match/?auth_token=abc123&match_id=5")
	if strings.Contains(redacted, "abc123") {
		t.Fatalf("token leaked: %s", redacted)
	}
	if !strings.Contains(redacted, "auth_token=REDACTED") {
		t.Fatalf("expected redaction marker, got %s", redacted)
	}
}
