package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "encoding response", "error", err)
	}
}

// internalError logs the cause server-side and sends the generic message;
// no internal detail ever reaches the caller.
func (s *Server) internalError(ctx context.Context, w http.ResponseWriter, err error) {
	s.logger.Error(ctx, "internal error", "error", err)
	s.writeJSON(w, http.StatusInternalServerError, errorBody("Internal Server Error"))
}

func errorBody(message string) map[string]any {
	return map[string]any{"success": false, "error": message}
}
