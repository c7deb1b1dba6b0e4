// Package assistant orchestrates the natural-language-to-SQL pipeline:
// SQL generation, visualization classification, optional execution, and
// summarization, assembled into one response.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/b1query/b1query-engine/pkg/catalog"
	"github.com/b1query/b1query-engine/pkg/datastore"
	"github.com/b1query/b1query-engine/pkg/llm"
	"github.com/b1query/b1query-engine/pkg/prompts"
	"github.com/b1query/b1query-engine/pkg/sqlguard"
)

// RefusalSentinel is returned as the query text when the question asks
// for a mutating operation.
const RefusalSentinel = prompts.RefusalSentinel

// ErrEmptyQuestion indicates the caller submitted a blank question.
var ErrEmptyQuestion = errors.New("question must not be empty")

// refusalExecutionError is the error field text when execution of a
// refused operation is requested. The datastore is never contacted.
const refusalExecutionError = "operation not allowed: this assistant only executes read-only SELECT queries"

// Completion budgets per pipeline step. Generation and classification run
// cold for determinism; the summary gets room to phrase.
var (
	generationOptions     = llm.CompletionOptions{Temperature: 0.3, MaxTokens: 500}
	classificationOptions = llm.CompletionOptions{Temperature: 0.3, MaxTokens: 50}
	summaryOptions        = llm.CompletionOptions{Temperature: 0.7, MaxTokens: 100}
)

// Assistant processes natural-language business questions.
type Assistant interface {
	// Process converts a question into SQL, classifies a visualization,
	// optionally executes, and summarizes. A returned error means no
	// usable response exists; execution failure alone is reported inside
	// the response, not as an error.
	Process(ctx context.Context, question string, execute bool) (*QueryResponse, error)
}

type service struct {
	completions llm.CompletionClient
	executor    datastore.Executor // nil when no datasource is configured
	catalog     *catalog.Catalog
	logger      *zap.Logger
}

// New creates an Assistant. executor may be nil; execution requests then
// report a configuration problem in the response's error field.
func New(completions llm.CompletionClient, executor datastore.Executor, cat *catalog.Catalog, logger *zap.Logger) Assistant {
	return &service{
		completions: completions,
		executor:    executor,
		catalog:     cat,
		logger:      logger.Named("assistant"),
	}
}

// Process implements Assistant.
func (s *service) Process(ctx context.Context, question string, execute bool) (*QueryResponse, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if err := sqlguard.CheckQuestion(question); err != nil {
		return nil, fmt.Errorf("rejecting question: %w", err)
	}

	sqlQuery, refused, err := s.generateSQL(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("generate SQL: %w", err)
	}

	vizType := s.classify(ctx, question)

	response := &QueryResponse{
		SQLQuery:          sqlQuery,
		VisualizationType: vizType,
	}

	if execute {
		s.execute(ctx, response, refused)
	}

	summary, err := s.summarize(ctx, question, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}
	response.Summary = summary

	s.logger.Info("question processed",
		zap.String("model", s.completions.GetModel()),
		zap.String("visualization", string(response.VisualizationType)),
		zap.Bool("refused", refused),
		zap.Bool("executed", execute))

	return response, nil
}

// generateSQL asks the model for a query, then enforces locally what the
// prompt only requests: a single read-only statement. A query that fails
// the guard is replaced by the refusal sentinel so every downstream path
// treats it exactly like a model-side refusal.
func (s *service) generateSQL(ctx context.Context, question string) (sqlQuery string, refused bool, err error) {
	raw, err := s.completions.Complete(ctx, prompts.BuildGenerationPrompt(question, s.catalog), generationOptions)
	if err != nil {
		return "", false, err
	}

	raw = strings.TrimSpace(raw)
	if raw == RefusalSentinel {
		s.logger.Info("model refused mutating operation")
		return RefusalSentinel, true, nil
	}

	normalized, guardErr := sqlguard.ValidateAndNormalize(raw)
	if guardErr == nil {
		guardErr = sqlguard.ValidateReadOnly(normalized)
	}
	if guardErr != nil {
		s.logger.Warn("generated SQL failed read-only guard", zap.Error(guardErr))
		return RefusalSentinel, true, nil
	}

	return normalized, false, nil
}

// classify determines the visualization category. A classifier failure
// degrades to the table default instead of failing the request; the rest
// of the pipeline is more valuable than the chart hint.
func (s *service) classify(ctx context.Context, question string) VisualizationType {
	raw, err := s.completions.Complete(ctx, prompts.BuildClassificationPrompt(question), classificationOptions)
	if err != nil {
		s.logger.Warn("visualization classification failed, defaulting to table", zap.Error(err))
		return VisualizationTable
	}
	return NormalizeVisualization(raw)
}

// execute runs the generated query and records the outcome on the
// response. Failures land in response.Error; they never abort the
// pipeline.
func (s *service) execute(ctx context.Context, response *QueryResponse, refused bool) {
	if refused {
		response.setError(refusalExecutionError)
		return
	}
	if s.executor == nil {
		response.setError("no datasource configured; query execution is unavailable")
		return
	}

	result, err := s.executor.Query(ctx, response.SQLQuery)
	if err != nil {
		s.logger.Warn("query execution failed", zap.Error(err))
		response.setError(fmt.Sprintf("failed to execute query: %v", err))
		return
	}
	response.Results = result.Rows
	if response.Results == nil {
		response.Results = []datastore.Row{}
	}
}

func (s *service) summarize(ctx context.Context, question, sqlQuery string) (string, error) {
	summary, err := s.completions.Complete(ctx, prompts.BuildSummaryPrompt(question, sqlQuery), summaryOptions)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}
