package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"strategix-backend/internal/llm"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "gemini-2.5-flash", time.Minute); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewClient("key", "  ", time.Minute); err == nil {
		t.Fatal("expected error for missing model")
	}

	client, err := NewClient("key", "gemini-2.5-flash", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Fatalf("default timeout = %v", client.httpClient.Timeout)
	}
}

func newServerClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("key", "gemini-2.5-flash", time.Minute)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = server.URL
	return client
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "key" {
			t.Errorf("missing api key header")
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Expand into new markets.  "}]}}]}`))
	})

	got, err := client.Generate(context.Background(), "summarize")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Expand into new markets." {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGenerateMapsQuotaStatusToRateLimited(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusUnauthorized, http.StatusForbidden} {
		client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.Generate(context.Background(), "summarize")
		if !errors.Is(err, llm.ErrRateLimited) {
			t.Errorf("status %d: err = %v, want ErrRateLimited", status, err)
		}
	}
}

func TestGenerateMapsResourceExhaustedToRateLimited(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"quota exceeded"}}`))
	})

	_, err := client.Generate(context.Background(), "summarize")
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [`))
	})

	_, err := client.Generate(context.Background(), "summarize")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("parse failure mapped to rate limit: %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	client := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if _, err := client.Generate(context.Background(), "summarize"); err == nil {
		t.Fatal("expected error for missing candidates")
	}
}
