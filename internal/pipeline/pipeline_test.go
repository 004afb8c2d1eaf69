package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/db"
	"github.com/jonathan/resume-ranker/internal/types"
)

// stubAnalyzer returns a fixed record or error without any network call.
type stubAnalyzer struct {
	record *types.AnalysisRecord
	err    error
	calls  int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ []byte, jobRole string) (*types.AnalysisRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	rec := *s.record
	rec.JobRole = jobRole
	return &rec, nil
}

// stubStore counts writes and serves canned rankings.
type stubStore struct {
	rankings    []types.RankingEntry
	rankingsErr error
	candidates  []types.CandidateSummary
	upserts     int
	upsertOK    bool
}

func (s *stubStore) UpsertResume(_ context.Context, _ *types.AnalysisRecord) bool {
	s.upserts++
	return s.upsertOK
}

func (s *stubStore) RankingsForRole(_ context.Context, _ string) ([]types.RankingEntry, error) {
	if s.rankingsErr != nil {
		return nil, s.rankingsErr
	}
	return s.rankings, nil
}

func (s *stubStore) AllCandidates(_ context.Context) ([]types.CandidateSummary, error) {
	return s.candidates, nil
}

func aliceRecord() *types.AnalysisRecord {
	return &types.AnalysisRecord{
		FullName:             "Alice",
		MatchScore:           87,
		Summary:              "Solid backend engineer.",
		ExperienceHighlights: []string{"Scaled ingestion service", "Mentored two juniors"},
		MatchingSkills:       []string{"Go", "SQL"},
		MissingSkills:        []string{"Kubernetes", "Terraform"},
		SuggestedQuestions:   []string{"How did you scale the ingestion service?", "What would you do differently?"},
	}
}

func TestAnalyze_EmptyDocumentIsNoOp(t *testing.T) {
	store := &stubStore{upsertOK: true, rankings: []types.RankingEntry{{FullName: "Bob", MatchScore: 90}}}
	an := &stubAnalyzer{record: aliceRecord()}
	c := NewController(store, an)

	result, err := c.Analyze(context.Background(), nil, "Software Engineer")
	require.NoError(t, err)

	assert.Empty(t, result.Details)
	assert.Empty(t, result.Rankings)
	assert.Equal(t, "Software Engineer", result.JobRole)
	assert.Zero(t, an.calls, "no analyzer call for an absent document")
	assert.Zero(t, store.upserts, "no write for an absent document")
}

func TestAnalyze_Success(t *testing.T) {
	store := &stubStore{
		upsertOK: true,
		rankings: []types.RankingEntry{{FullName: "Alice", MatchScore: 87}},
	}
	c := NewController(store, &stubAnalyzer{record: aliceRecord()})

	result, err := c.Analyze(context.Background(), []byte("%PDF-fake"), "Software Engineer")
	require.NoError(t, err)

	require.Len(t, result.Details, 7)
	assert.Equal(t, DetailRow{Field: "Full Name", Value: "Alice"}, result.Details[0])
	assert.Equal(t, DetailRow{Field: "Score", Value: "87/100"}, result.Details[1])
	assert.Equal(t, DetailRow{Field: "Summary", Value: "Solid backend engineer."}, result.Details[2])
	assert.Equal(t, "Scaled ingestion service\nMentored two juniors", result.Details[3].Value)
	assert.Equal(t, "Go, SQL", result.Details[4].Value)
	assert.Equal(t, "Kubernetes, Terraform", result.Details[5].Value)
	assert.Equal(t, "1. How did you scale the ingestion service?\n2. What would you do differently?", result.Details[6].Value)

	assert.Equal(t, 1, store.upserts)
	assert.Equal(t, store.rankings, result.Rankings)
	assert.Equal(t, "Software Engineer", result.JobRole)
}

func TestAnalyze_AnalyzerFailureKeepsRankings(t *testing.T) {
	store := &stubStore{
		upsertOK: true,
		rankings: []types.RankingEntry{{FullName: "Bob", MatchScore: 92}},
	}
	c := NewController(store, &stubAnalyzer{err: errors.New("provider timeout")})

	result, err := c.Analyze(context.Background(), []byte("%PDF-fake"), "Software Engineer")
	require.NoError(t, err, "analyzer failures never propagate as errors")

	require.Len(t, result.Details, 1)
	assert.Equal(t, "Error", result.Details[0].Field)
	assert.Contains(t, result.Details[0].Value, "provider timeout")

	assert.Zero(t, store.upserts, "no spurious record on failure")
	assert.Equal(t, store.rankings, result.Rankings, "leaderboard stays populated")
	assert.Equal(t, "Software Engineer", result.JobRole)
}

func TestAnalyze_WriteFailureStaysSilent(t *testing.T) {
	store := &stubStore{
		upsertOK: false,
		rankings: []types.RankingEntry{},
	}
	c := NewController(store, &stubAnalyzer{record: aliceRecord()})

	result, err := c.Analyze(context.Background(), []byte("%PDF-fake"), "Software Engineer")
	require.NoError(t, err)

	// The detail payload still reads as a success; the ranking simply
	// does not include the record.
	assert.Equal(t, "Full Name", result.Details[0].Field)
	assert.Equal(t, 1, store.upserts)
	assert.Empty(t, result.Rankings)
}

func TestAnalyze_RankingReadFaultPropagates(t *testing.T) {
	store := &stubStore{upsertOK: true, rankingsErr: errors.New("disk I/O error")}
	c := NewController(store, &stubAnalyzer{record: aliceRecord()})

	_, err := c.Analyze(context.Background(), []byte("%PDF-fake"), "Software Engineer")
	assert.Error(t, err)
}

func TestAllCandidatesView_EmptyStore(t *testing.T) {
	c := NewController(&stubStore{}, &stubAnalyzer{})

	table, err := c.AllCandidatesView(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Job Role", "Score", "Uploaded At"}, table.Headers)
	assert.Empty(t, table.Rows)
}

// TestAnalyze_EndToEnd runs the scenario against a real on-disk store with
// only the analyzer stubbed.
func TestAnalyze_EndToEnd(t *testing.T) {
	ctx := context.Background()
	store := db.NewStore(filepath.Join(t.TempDir(), "ranker.db"))
	require.NoError(t, store.Init(ctx))

	an := &stubAnalyzer{record: aliceRecord()}
	c := NewController(store, an)

	result, err := c.Analyze(ctx, []byte("%PDF-alice"), "Software Engineer")
	require.NoError(t, err)
	assert.Equal(t, DetailRow{Field: "Score", Value: "87/100"}, result.Details[1])
	assert.Equal(t, []types.RankingEntry{{FullName: "Alice", MatchScore: 87}}, result.Rankings)

	bob := aliceRecord()
	bob.FullName = "Bob"
	bob.MatchScore = 92
	an.record = bob

	result, err = c.Analyze(ctx, []byte("%PDF-bob"), "Software Engineer")
	require.NoError(t, err)
	assert.Equal(t, []types.RankingEntry{
		{FullName: "Bob", MatchScore: 92},
		{FullName: "Alice", MatchScore: 87},
	}, result.Rankings)

	rankings, err := c.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)
	assert.Len(t, rankings, 2)

	table, err := c.AllCandidatesView(ctx)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Bob", table.Rows[0][0], "most recent upload first")
}
