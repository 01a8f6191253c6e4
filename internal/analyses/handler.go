package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"strategix-backend/internal/documents"
	"strategix-backend/internal/scenario"
	"strategix-backend/internal/shared/metrics"
	"strategix-backend/internal/shared/server/middleware"
	"strategix-backend/internal/shared/server/respond"
)

// Handler wires analysis, chat and scenario HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents/:id/analysis", h.analysis)
	rg.POST("/documents/:id/chat", h.chat)
	rg.POST("/documents/:id/scenarios", h.scenarios)
	rg.GET("/documents/:id/insights", h.insights)
	rg.GET("/stats/intents", h.intentStats)
}

func (h *Handler) analysis(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)

	analysis, err := h.Svc.Latest(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, analysis)
}

type chatRequest struct {
	Question string `json:"question"`
}

func (h *Handler) chat(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	answer, err := h.Svc.Chat(c.Request.Context(), ownerID, c.Param("id"), req.Question)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"answer": answer})
}

type scenarioRequest struct {
	Scenario string `json:"scenario"`
}

func (h *Handler) scenarios(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)

	var req scenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Svc.Scenario(c.Request.Context(), ownerID, c.Param("id"), strings.TrimSpace(req.Scenario))
	if err != nil {
		if errors.Is(err, scenario.ErrInvalidScenario) {
			metrics.IncScenarioRejected()
			respond.Error(c, http.StatusBadRequest, "invalid_scenario", "scenario must be one of: "+strings.Join(scenario.Tags(), ", "), nil)
			return
		}
		respondLookupError(c, err)
		return
	}
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) insights(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)
	documentID := c.Param("id")

	analysis, err := h.Svc.Latest(c.Request.Context(), ownerID, documentID)
	if err != nil {
		respondLookupError(c, err)
		return
	}

	doc, err := h.Svc.DocSvc.Get(c.Request.Context(), ownerID, documentID)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	text := h.Svc.DocSvc.Text(c.Request.Context(), doc)

	ctx := c.Request.Context()
	respond.JSON(c, http.StatusOK, gin.H{
		"enhancedStrategy": h.Svc.GenAI.EnhancedStrategy(ctx, documentID, text, analysis.Profile.Framework),
		"performance":      h.Svc.GenAI.Performance(ctx, documentID, text),
	})
}

func (h *Handler) intentStats(c *gin.Context) {
	stats, err := h.Svc.IntentStats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to aggregate intents", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"intents": stats})
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document or analysis not found", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, documents.ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "request failed", nil)
	}
}
