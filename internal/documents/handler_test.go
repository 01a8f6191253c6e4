package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"strategix-backend/internal/documents"
	"strategix-backend/internal/shared/server/middleware"
	"strategix-backend/internal/shared/storage/object/local"
)

type stubAnalyzer struct{}

func (stubAnalyzer) Run(ctx context.Context, ownerId, documentID, text string) (any, error) {
	if text == "" {
		return map[string]string{"status": "no_text"}, nil
	}
	return map[string]string{"status": "completed"}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &documents.Service{
		Store: local.New(t.TempDir()),
		Repo:  documents.NewMemoryRepo(),
	}
	handler := documents.NewHandler(svc, stubAnalyzer{})

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Owner())
	handler.RegisterRoutes(api)
	return router
}

func uploadFile(t *testing.T, router *gin.Engine, name, content, owner string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if owner != "" {
		req.Header.Set("X-Owner-Id", owner)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestDocumentsUploadRunsAnalysis(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadFile(t, router, "plan.txt", "We plan to expand into new markets and reduce operational costs.", "owner-1")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Document struct {
			DocumentID string `json:"documentId"`
			FileName   string `json:"fileName"`
			WordCount  int64  `json:"wordCount"`
		} `json:"document"`
		Analysis map[string]string `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Document.DocumentID == "" {
		t.Fatal("expected documentId, got empty")
	}
	if created.Document.FileName != "plan.txt" {
		t.Fatalf("fileName = %q", created.Document.FileName)
	}
	if created.Document.WordCount == 0 {
		t.Error("expected non-zero word count")
	}
	if created.Analysis["status"] != "completed" {
		t.Fatalf("analysis = %v", created.Analysis)
	}
}

func TestDocumentsUploadUnreadableFileStoredAsNoText(t *testing.T) {
	router := newTestRouter(t)

	resp := uploadFile(t, router, "image.xyz", "binarybinarybinary", "owner-1")
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		Document struct {
			DocumentID string `json:"documentId"`
			WordCount  int64  `json:"wordCount"`
		} `json:"document"`
		Analysis map[string]string `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Document.DocumentID == "" {
		t.Fatal("expected documentId, got empty")
	}
	if created.Document.WordCount != 0 {
		t.Fatalf("wordCount = %d, want 0", created.Document.WordCount)
	}
	if created.Analysis["status"] != "no_text" {
		t.Fatalf("analysis = %v", created.Analysis)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/"+created.Document.DocumentID, nil)
	req.Header.Set("X-Owner-Id", "owner-1")
	got := httptest.NewRecorder()
	router.ServeHTTP(got, req)
	if got.Code != http.StatusOK {
		t.Fatalf("expected stored document, got %d", got.Code)
	}
}

func TestDocumentsListIsOwnerScoped(t *testing.T) {
	router := newTestRouter(t)

	if resp := uploadFile(t, router, "a.txt", "Growth strategy for the northern region market.", "owner-a"); resp.Code != http.StatusCreated {
		t.Fatalf("upload a: %d", resp.Code)
	}
	if resp := uploadFile(t, router, "b.txt", "Cost reduction plan for logistics operations.", "owner-b"); resp.Code != http.StatusCreated {
		t.Fatalf("upload b: %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Owner-Id", "owner-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var docs []struct {
		FileName string `json:"fileName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(docs) != 1 || docs[0].FileName != "a.txt" {
		t.Fatalf("docs = %v", docs)
	}
}

func TestDocumentsGetUnknownID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/nope", nil)
	req.Header.Set("X-Owner-Id", "owner-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
