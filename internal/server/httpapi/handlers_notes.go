package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/mayankt25/backend/internal/common"
	"github.com/mayankt25/backend/internal/server/models"
	"github.com/mayankt25/backend/internal/server/validation"
)

type noteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	principalID, _ := principalFromContext(r.Context())

	notes, err := s.notes.List(r.Context(), principalID)
	if err != nil {
		s.internalError(r.Context(), w, err)
		return
	}
	if notes == nil {
		notes = []*models.Note{}
	}
	s.writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleAddNote(w http.ResponseWriter, r *http.Request) {
	principalID, _ := principalFromContext(r.Context())

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	note, err := s.notes.Create(r.Context(), principalID, req.Title, req.Description)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			s.writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verrs})
			return
		}
		s.internalError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	principalID, _ := principalFromContext(r.Context())
	noteID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody("Invalid request body"))
		return
	}

	note, err := s.notes.Update(r.Context(), principalID, noteID, req.Title, req.Description)
	if err != nil {
		s.writeNoteError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	principalID, _ := principalFromContext(r.Context())
	noteID := httprouter.ParamsFromContext(r.Context()).ByName("id")

	if err := s.notes.Delete(r.Context(), principalID, noteID); err != nil {
		s.writeNoteError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"Success": "Note deleted successfully."})
}

// writeNoteError maps the ownership-guard outcomes onto the wire: an absent
// note is 404, a foreign one 401.
func (s *Server) writeNoteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found."})
	case errors.Is(err, common.ErrForbidden):
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Action not allowed."})
	default:
		s.internalError(r.Context(), w, err)
	}
}
