// Package pipeline orchestrates one end-to-end resume analysis request:
// analyzer call, persistence, and ranking re-read.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-ranker/internal/analyzer"
	"github.com/jonathan/resume-ranker/internal/types"
)

// RecordStore is the persistence contract the controller depends on.
type RecordStore interface {
	UpsertResume(ctx context.Context, rec *types.AnalysisRecord) bool
	RankingsForRole(ctx context.Context, jobRole string) ([]types.RankingEntry, error)
	AllCandidates(ctx context.Context) ([]types.CandidateSummary, error)
}

// DetailRow is one (label, value) pair of the human-readable result payload.
type DetailRow struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// AnalyzeResult is everything one analysis request produces: the detail
// payload, the refreshed ranking for the submitted role, and the role echoed
// back for the UI selector.
type AnalyzeResult struct {
	Details  []DetailRow          `json:"details"`
	Rankings []types.RankingEntry `json:"rankings"`
	JobRole  string               `json:"job_role"`
}

// CandidateTable is the four-column all-candidates view. Headers are always
// present, even when the store is empty.
type CandidateTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Controller sequences analyzer call, persistence, and ranking re-read for
// each user request.
type Controller struct {
	store    RecordStore
	analyzer analyzer.Analyzer
}

// NewController creates a controller over the given store and analyzer.
func NewController(store RecordStore, an analyzer.Analyzer) *Controller {
	return &Controller{store: store, analyzer: an}
}

// Analyze runs the full pipeline for one document. An absent document is a
// no-op, not an error: empty details, empty rankings, role echoed back. An
// analyzer failure becomes a single Error detail row while the ranking panel
// is still refreshed from the store. Only a ranking read fault is returned
// as an error.
func (c *Controller) Analyze(ctx context.Context, document []byte, jobRole string) (*AnalyzeResult, error) {
	if len(document) == 0 {
		return &AnalyzeResult{
			Details:  []DetailRow{},
			Rankings: []types.RankingEntry{},
			JobRole:  jobRole,
		}, nil
	}

	rec, err := c.analyzer.Analyze(ctx, document, jobRole)
	if err != nil {
		rankings, rerr := c.store.RankingsForRole(ctx, jobRole)
		if rerr != nil {
			return nil, fmt.Errorf("failed to read rankings: %w", rerr)
		}
		return &AnalyzeResult{
			Details:  []DetailRow{{Field: "Error", Value: err.Error()}},
			Rankings: rankings,
			JobRole:  jobRole,
		}, nil
	}

	// A failed write is logged and otherwise silent: the ranking fetched
	// below simply will not include the new record.
	if ok := c.store.UpsertResume(ctx, rec); !ok {
		log.Printf("[pipeline] analysis for %q (%s) was not persisted", rec.FullName, jobRole)
	}

	rankings, err := c.store.RankingsForRole(ctx, jobRole)
	if err != nil {
		return nil, fmt.Errorf("failed to read rankings: %w", err)
	}

	return &AnalyzeResult{
		Details:  detailRows(rec),
		Rankings: rankings,
		JobRole:  jobRole,
	}, nil
}

// RankingsForRole returns the current leaderboard for a role. Used for the
// initial view and whenever the role selector changes.
func (c *Controller) RankingsForRole(ctx context.Context, jobRole string) ([]types.RankingEntry, error) {
	return c.store.RankingsForRole(ctx, jobRole)
}

// AllCandidatesView returns every stored candidate as a display table,
// most recent upload first.
func (c *Controller) AllCandidatesView(ctx context.Context) (*CandidateTable, error) {
	candidates, err := c.store.AllCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	table := &CandidateTable{
		Headers: []string{"Name", "Job Role", "Score", "Uploaded At"},
		Rows:    [][]string{},
	}
	for _, cand := range candidates {
		table.Rows = append(table.Rows, []string{
			cand.FullName,
			cand.JobRole,
			fmt.Sprintf("%d", cand.MatchScore),
			cand.UploadedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return table, nil
}

// detailRows shapes a record into the ordered (label, value) payload the UI
// renders after a successful analysis.
func detailRows(rec *types.AnalysisRecord) []DetailRow {
	questions := make([]string, len(rec.SuggestedQuestions))
	for i, q := range rec.SuggestedQuestions {
		questions[i] = fmt.Sprintf("%d. %s", i+1, q)
	}

	return []DetailRow{
		{Field: "Full Name", Value: rec.FullName},
		{Field: "Score", Value: fmt.Sprintf("%d/100", rec.MatchScore)},
		{Field: "Summary", Value: rec.Summary},
		{Field: "Experience", Value: strings.Join(rec.ExperienceHighlights, "\n")},
		{Field: "Matching Skills", Value: strings.Join(rec.MatchingSkills, ", ")},
		{Field: "Missing Skills", Value: strings.Join(rec.MissingSkills, ", ")},
		{Field: "Questions", Value: strings.Join(questions, "\n")},
	}
}
