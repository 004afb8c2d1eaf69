// Package types provides type definitions for structured data used throughout the resume-ranker system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AnalysisRecord is the structured outcome of grading one resume document
// against one job role. The pair (FullName, JobRole) is unique in storage;
// re-analyzing the same candidate for the same role replaces the prior record.
type AnalysisRecord struct {
	ID                   string    `json:"id,omitempty"`
	FullName             string    `json:"full_name" validate:"required,min=1"`
	JobRole              string    `json:"job_role" validate:"required"`
	MatchScore           int       `json:"match_score" validate:"min=0,max=100"`
	Summary              string    `json:"summary"`
	ExperienceHighlights []string  `json:"experience_highlights"`
	MatchingSkills       []string  `json:"matching_skills"`
	MissingSkills        []string  `json:"missing_skills"`
	SuggestedQuestions   []string  `json:"suggested_questions"`
	UploadedAt           time.Time `json:"uploaded_at,omitempty"` // set at write time by the store
}

// RankingEntry is a leaderboard projection for one role: name and score only.
type RankingEntry struct {
	FullName   string `json:"full_name"`
	MatchScore int    `json:"match_score"`
}

// CandidateSummary is one row of the all-candidates view.
type CandidateSummary struct {
	FullName   string    `json:"full_name"`
	JobRole    string    `json:"job_role"`
	MatchScore int       `json:"match_score"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Validate validates the AnalysisRecord using the validator.
func (r *AnalysisRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
