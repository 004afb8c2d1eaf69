package server

import (
	"net/http"
)

// RankingsResponse represents the leaderboard for one role
type RankingsResponse struct {
	JobRole  string `json:"job_role"`
	Rankings any    `json:"rankings"`
}

// handleRankings returns the ranking list for a role. Bound to the role
// selector in the UI; also used to pre-populate the board on page load.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	jobRole := r.URL.Query().Get("role")
	if jobRole == "" {
		s.errorResponse(w, http.StatusBadRequest, "role query parameter is required")
		return
	}

	rankings, err := s.controller.RankingsForRole(r.Context(), jobRole)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankingsResponse{JobRole: jobRole, Rankings: rankings})
}

// handleListCandidates returns every stored candidate across all roles.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	table, err := s.controller.AllCandidatesView(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, table)
}

// handleGetCandidate returns the full stored record for one candidate.
// Query parameters are used instead of path segments because names contain
// spaces and parentheses.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	role := r.URL.Query().Get("role")
	if name == "" || role == "" {
		s.errorResponse(w, http.StatusBadRequest, "name and role query parameters are required")
		return
	}

	record, err := s.store.GetResume(r.Context(), name, role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleClearCandidates empties the resumes table. Administrative action;
// there is no selective deletion and no undo.
func (s *Server) handleClearCandidates(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearResumes(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
