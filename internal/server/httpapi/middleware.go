package httpapi

import (
	"context"
	"net/http"
	"regexp"

	"github.com/mayankt25/backend/internal/server/auth"
)

type ctxKey byte

const principalKey ctxKey = 1

var bearerTokenRE = regexp.MustCompile(`^Bearer (\S+)$`)

// requireAuth verifies the bearer token before the wrapped handler runs and
// binds the resolved principal ID into the request context. No protected
// handler ever executes without an authenticated principal.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.writeJSON(w, http.StatusUnauthorized, errorBody("Authentication token missing"))
			return
		}

		groups := bearerTokenRE.FindStringSubmatch(header)
		if len(groups) == 0 {
			s.writeJSON(w, http.StatusUnauthorized, errorBody("Please authenticate using a valid token"))
			return
		}

		userID, err := auth.GetUserIDFromToken(groups[1], s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "rejected token", "error", err)
			s.writeJSON(w, http.StatusUnauthorized, errorBody("Please authenticate using a valid token"))
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// principalFromContext returns the user ID bound by requireAuth.
func principalFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(principalKey).(string)
	return id, ok && id != ""
}
