package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nkondratev/doctasks/internal/api"
	"github.com/nkondratev/doctasks/internal/config"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logPH.Error("Error encoding response:", "error", err)
	}
}

func validateContext(ctx context.Context) bool {
	logPH.With("traceId:", ctx.Value(config.TRACE_ID_KEY))
	if ctx.Err() != nil {
		logPH.Warn("context error", "error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logPH.Warn("context cancelled")
		return false
	default:
		return true
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, documentName string, message string) {
	writeJsonResponse(w, httpCode, api.PipelineResponse{
		Status:       "error",
		Error:        true,
		ErrorMessage: &message,
		DocumentName: documentName,
		Summary:      map[string]any{"error": message},
	})
}
