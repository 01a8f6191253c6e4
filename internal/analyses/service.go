package analyses

import (
	"context"
	"time"

	"github.com/google/uuid"

	"strategix-backend/internal/classify"
	"strategix-backend/internal/documents"
	"strategix-backend/internal/lexical"
	"strategix-backend/internal/qa"
	"strategix-backend/internal/scenario"
	"strategix-backend/internal/shared/metrics"
	"strategix-backend/internal/shared/telemetry"
	"strategix-backend/internal/strategy"
)

const (
	keywordTopN      = 10
	summarySentences = 3
)

// Service orchestrates the analysis pipeline and serves analysis lookups,
// chat and scenario requests.
type Service struct {
	Repo     AnalysesRepo
	DocSvc   *documents.Service
	Answerer qa.Answerer
	GenAI    *GenAI
}

// Run executes the pipeline for a freshly uploaded document and persists the
// result. Satisfies documents.AnalysisRunner.
func (s *Service) Run(ctx context.Context, ownerId, documentID, text string) (any, error) {
	started := time.Now()

	analysis := Analysis{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		OwnerID:    ownerId,
		Status:     StatusCompleted,
		CreatedAt:  time.Now().UTC(),
	}

	if text == "" {
		analysis.Status = StatusNoText
		metrics.IncPipelineNoText()
	} else {
		analysis.Profile = buildProfile(text)
		metrics.IncPipelineRun()
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		return nil, err
	}

	metrics.ObservePipelineDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("pipeline completed", map[string]any{
		"documentId": documentID,
		"status":     analysis.Status,
		"durationMs": time.Since(started).Milliseconds(),
	})
	return analysis, nil
}

// buildProfile runs the deterministic pipeline stages over extracted text.
func buildProfile(text string) Profile {
	framework := classify.Analyze(text)
	set := strategy.Synthesize(framework.Intents, framework.SWOT)
	return Profile{
		Lexical: LexicalProfile{
			Keywords:  lexical.Keywords(text, keywordTopN),
			Summary:   lexical.Summarize(text, summarySentences),
			Sentiment: lexical.Sentiment(text),
			Entities:  lexical.Entities(text),
			WordCount: lexical.WordCount(text),
		},
		Framework: framework,
		Strategy:  set,
		Scores:    strategy.Score(framework.SWOT, framework.Intents),
	}
}

// Latest returns the most recent analysis for a document owned by ownerId.
func (s *Service) Latest(ctx context.Context, ownerId, documentID string) (Analysis, error) {
	if documentID == "" {
		return Analysis{}, ErrInvalidInput
	}
	return s.Repo.GetLatestByDocument(ctx, ownerId, documentID)
}

// Chat answers a question against one document's text. Failures surface as
// fixed answer strings, never as errors.
func (s *Service) Chat(ctx context.Context, ownerId, documentID, question string) (string, error) {
	doc, err := s.DocSvc.Get(ctx, ownerId, documentID)
	if err != nil {
		return "", err
	}
	text := s.DocSvc.Text(ctx, doc)
	answer := s.Answerer.Answer(ctx, question, text)
	metrics.IncChatAnswered()
	return answer, nil
}

// Scenario simulates the given scenario tag against the document's latest
// score card.
func (s *Service) Scenario(ctx context.Context, ownerId, documentID, tag string) (scenario.Result, error) {
	analysis, err := s.Latest(ctx, ownerId, documentID)
	if err != nil {
		return scenario.Result{}, err
	}
	if s.GenAI != nil {
		return s.GenAI.Scenario(ctx, documentID, analysis.Profile.Scores, tag)
	}
	return scenario.Simulate(analysis.Profile.Scores, tag)
}

// IntentStats aggregates intent counts across all analyses.
func (s *Service) IntentStats(ctx context.Context) (map[string]int, error) {
	return s.Repo.CountIntents(ctx)
}
