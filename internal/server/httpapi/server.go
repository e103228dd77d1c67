// Package httpapi exposes the REST surface: auth endpoints, per-user note
// CRUD, and the bearer-token gate protecting them.
package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mayankt25/backend/internal/logging"
	"github.com/mayankt25/backend/internal/server/services"
)

// Server holds the handler dependencies. Construct with New and mount the
// result of Handler on an http.Server.
type Server struct {
	logger    logging.Logger
	users     *services.UserService
	notes     *services.NoteService
	jwtSecret []byte
}

// New constructs the HTTP API over the given services. secretKey must match
// the secret the services sign tokens with.
func New(logger logging.Logger, users *services.UserService, notes *services.NoteService, secretKey string) *Server {
	return &Server{
		logger:    logger.With("component", "httpapi"),
		users:     users,
		notes:     notes,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. Every /notes route and /auth/getuser pass
// through requireAuth; registration and login are public.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", s.handleHealth)

	router.HandlerFunc(http.MethodPost, "/auth/createuser", s.handleRegister)
	router.HandlerFunc(http.MethodPost, "/auth/login", s.handleLogin)
	router.HandlerFunc(http.MethodPost, "/auth/getuser", s.requireAuth(s.handleGetUser))

	router.HandlerFunc(http.MethodGet, "/notes", s.requireAuth(s.handleListNotes))
	router.HandlerFunc(http.MethodPost, "/notes", s.requireAuth(s.handleAddNote))
	router.HandlerFunc(http.MethodPut, "/notes/:id", s.requireAuth(s.handleUpdateNote))
	router.HandlerFunc(http.MethodDelete, "/notes/:id", s.requireAuth(s.handleDeleteNote))

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
