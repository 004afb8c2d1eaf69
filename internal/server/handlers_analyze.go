package server

import (
	"errors"
	"io"
	"net/http"
)

// maxUploadBytes caps resume uploads. Real resumes are well under this.
const maxUploadBytes = 10 << 20

// handleAnalyze runs the full pipeline for one uploaded resume. A request
// without a file is a no-op by contract: it returns empty details and
// rankings rather than an error, mirroring a form submit with no file chosen.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	jobRole := r.FormValue("job_role")
	if jobRole == "" {
		s.errorResponse(w, http.StatusBadRequest, "job_role form field is required")
		return
	}

	var document []byte
	file, _, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		document, err = io.ReadAll(file)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// No document: handled below as a no-op.
	default:
		s.errorResponse(w, http.StatusBadRequest, "Invalid file upload: "+err.Error())
		return
	}

	result, err := s.controller.Analyze(r.Context(), document, jobRole)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
