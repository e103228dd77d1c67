package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mayankt25/backend/internal/common"
	"github.com/mayankt25/backend/internal/server/validation"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	token, user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			s.writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": verrs})
		case errors.Is(err, common.ErrDuplicateUser):
			// Reported as a business conflict, not a transport failure.
			s.writeJSON(w, http.StatusOK, errorBody("User already exists"))
		default:
			s.internalError(r.Context(), w, err)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			s.writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": verrs})
		case errors.Is(err, common.ErrInvalidCredentials):
			s.writeJSON(w, http.StatusNotFound, errorBody("Please enter correct login credentials."))
		default:
			s.internalError(r.Context(), w, err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	principalID, ok := principalFromContext(r.Context())
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, errorBody("Authentication token missing"))
		return
	}

	user, err := s.users.GetByID(r.Context(), principalID)
	if err != nil {
		s.internalError(r.Context(), w, err)
		return
	}

	// models.User never serializes the password hash.
	s.writeJSON(w, http.StatusOK, user)
}
