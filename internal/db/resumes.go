package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ranker/internal/types"
)

// UpsertResume writes or replaces the record keyed by (full_name, job_role)
// and stamps uploaded_at with the current time. It reports success as a
// boolean and logs the fault instead of returning an error: a failed write
// leaves the leaderboard unchanged, which is the observable behavior callers
// rely on.
func (s *Store) UpsertResume(ctx context.Context, rec *types.AnalysisRecord) bool {
	db, err := s.open()
	if err != nil {
		log.Printf("[db] upsert failed for %q: %v", rec.FullName, err)
		return false
	}
	defer db.Close()

	experience, _ := json.Marshal(rec.ExperienceHighlights)
	matching, _ := json.Marshal(rec.MatchingSkills)
	missing, _ := json.Marshal(rec.MissingSkills)
	questions, _ := json.Marshal(rec.SuggestedQuestions)

	now := time.Now().UTC()

	// The existing row keeps its id on conflict; only the analysis fields
	// and the upload time are replaced.
	_, err = db.ExecContext(ctx,
		`INSERT INTO resumes
			(id, full_name, job_role, match_score, summary, experience_highlights,
			 matching_skills, missing_skills, suggested_questions, uploaded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(full_name, job_role) DO UPDATE SET
			match_score=excluded.match_score,
			summary=excluded.summary,
			experience_highlights=excluded.experience_highlights,
			matching_skills=excluded.matching_skills,
			missing_skills=excluded.missing_skills,
			suggested_questions=excluded.suggested_questions,
			uploaded_at=excluded.uploaded_at`,
		uuid.NewString(), rec.FullName, rec.JobRole, rec.MatchScore, rec.Summary,
		string(experience), string(matching), string(missing), string(questions),
		now.Format(timeLayout),
	)
	if err != nil {
		log.Printf("[db] upsert failed for %q (%s): %v", rec.FullName, rec.JobRole, err)
		return false
	}

	rec.UploadedAt = now
	return true
}

// RankingsForRole returns all records for the given role ordered by
// match_score descending. Equal scores order by uploaded_at ascending
// (earliest submission first), then by name, so the ranking is
// deterministic. An unknown role yields an empty list, not an error.
func (s *Store) RankingsForRole(ctx context.Context, jobRole string) ([]types.RankingEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT full_name, match_score
		 FROM resumes
		 WHERE job_role = ?
		 ORDER BY match_score DESC, uploaded_at ASC, full_name ASC`,
		jobRole,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query rankings: %w", err)
	}
	defer rows.Close()

	entries := []types.RankingEntry{}
	for rows.Next() {
		var e types.RankingEntry
		if err := rows.Scan(&e.FullName, &e.MatchScore); err != nil {
			return nil, fmt.Errorf("failed to scan ranking entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rankings: %w", err)
	}

	return entries, nil
}

// AllCandidates returns every stored record across all roles, most recent
// upload first.
func (s *Store) AllCandidates(ctx context.Context) ([]types.CandidateSummary, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT full_name, job_role, match_score, uploaded_at
		 FROM resumes
		 ORDER BY uploaded_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.CandidateSummary{}
	for rows.Next() {
		var c types.CandidateSummary
		var uploadedAt string
		if err := rows.Scan(&c.FullName, &c.JobRole, &c.MatchScore, &uploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.UploadedAt, err = time.Parse(timeLayout, uploadedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse uploaded_at %q: %w", uploadedAt, err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return candidates, nil
}

// GetResume retrieves the full stored record for a candidate and role.
// Returns nil, nil when no record exists.
func (s *Store) GetResume(ctx context.Context, fullName, jobRole string) (*types.AnalysisRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rec types.AnalysisRecord
	var experience, matching, missing, questions, uploadedAt string

	err = db.QueryRowContext(ctx,
		`SELECT id, full_name, job_role, match_score, summary, experience_highlights,
		        matching_skills, missing_skills, suggested_questions, uploaded_at
		 FROM resumes
		 WHERE full_name = ? AND job_role = ?`,
		fullName, jobRole,
	).Scan(&rec.ID, &rec.FullName, &rec.JobRole, &rec.MatchScore, &rec.Summary,
		&experience, &matching, &missing, &questions, &uploadedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal([]byte(experience), &rec.ExperienceHighlights); err != nil {
		return nil, fmt.Errorf("failed to parse experience_highlights: %w", err)
	}
	if err := json.Unmarshal([]byte(matching), &rec.MatchingSkills); err != nil {
		return nil, fmt.Errorf("failed to parse matching_skills: %w", err)
	}
	if err := json.Unmarshal([]byte(missing), &rec.MissingSkills); err != nil {
		return nil, fmt.Errorf("failed to parse missing_skills: %w", err)
	}
	if err := json.Unmarshal([]byte(questions), &rec.SuggestedQuestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggested_questions: %w", err)
	}

	rec.UploadedAt, err = time.Parse(timeLayout, uploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse uploaded_at %q: %w", uploadedAt, err)
	}

	return &rec, nil
}

// ClearResumes empties the resumes table. Administrative operation with no
// selective deletion and no undo.
func (s *Store) ClearResumes(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `DELETE FROM resumes`); err != nil {
		return fmt.Errorf("failed to clear resumes: %w", err)
	}
	return nil
}
