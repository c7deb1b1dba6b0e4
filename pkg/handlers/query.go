package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/b1query/b1query-engine/pkg/assistant"
	"github.com/b1query/b1query-engine/pkg/middleware"
	"github.com/b1query/b1query-engine/pkg/sqlguard"
)

// QueryRequest is the transport shape of a natural-language query call.
// ExecuteQuery defaults to true when omitted.
type QueryRequest struct {
	Query        string `json:"query"`
	ExecuteQuery *bool  `json:"execute_query"`
}

// QueryHandler exposes the query pipeline over HTTP.
type QueryHandler struct {
	assistant assistant.Assistant
	logger    *zap.Logger
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(a assistant.Assistant, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{assistant: a, logger: logger.Named("handlers")}
}

// RegisterRoutes registers the query handler's routes on the router.
func (h *QueryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/query", h.ProcessQuery)
}

// ProcessQuery handles POST /query. The response is always either a
// complete payload (query, visualization, summary, optionally results or
// an execution error) or a request-level error; never a partial payload.
func (h *QueryHandler) ProcessQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be valid JSON")
		return
	}
	if req.Query == "" {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "query must not be empty")
		return
	}

	execute := true
	if req.ExecuteQuery != nil {
		execute = *req.ExecuteQuery
	}

	response, err := h.assistant.Process(r.Context(), req.Query, execute)
	if err != nil {
		h.logger.Error("query processing failed",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))

		switch {
		case errors.Is(err, assistant.ErrEmptyQuestion):
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "query must not be empty")
		case errors.Is(err, sqlguard.ErrSuspiciousQuestion):
			_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "question was rejected by input screening")
		default:
			_ = ErrorResponse(w, http.StatusBadGateway, "generation_failed", "failed to process query")
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, response); err != nil {
		h.logger.Error("Failed to encode query response", zap.Error(err))
	}
}
