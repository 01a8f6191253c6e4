package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"strategix-backend/internal/shared/config"
)

func TestRouterHealthAndMetrics(t *testing.T) {
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		LLMProvider:     "none",
		Env:             "dev",
	}
	router := NewRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("health status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"ok":true`) {
		t.Fatalf("health body = %s", resp.Body.String())
	}

	reqM := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	respM := httptest.NewRecorder()
	router.ServeHTTP(respM, reqM)
	if respM.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", respM.Code)
	}
	if !strings.Contains(respM.Body.String(), "pipeline_runs_total") {
		t.Fatalf("metrics body missing counters: %s", respM.Body.String())
	}
}

func TestMigrateOrCloseClosesOnFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectClose()

	if got := migrateOrClose(context.Background(), mockDB); got != nil {
		t.Fatal("expected nil connection after failed migrations")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("connection was not closed: %v", err)
	}
}

func TestAddr(t *testing.T) {
	if got := Addr(""); got != ":8080" {
		t.Errorf("Addr(\"\") = %q", got)
	}
	if got := Addr("9090"); got != ":9090" {
		t.Errorf("Addr(9090) = %q", got)
	}
	if got := Addr(":7070"); got != ":7070" {
		t.Errorf("Addr(:7070) = %q", got)
	}
}
