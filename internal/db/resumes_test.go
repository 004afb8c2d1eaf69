package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ranker/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "ranker.db"))
	require.NoError(t, s.Init(context.Background()))
	return s
}

func record(name, role string, score int) *types.AnalysisRecord {
	return &types.AnalysisRecord{
		FullName:             name,
		JobRole:              role,
		MatchScore:           score,
		Summary:              "summary for " + name,
		ExperienceHighlights: []string{"exp one", "exp two"},
		MatchingSkills:       []string{"Go"},
		MissingSkills:        []string{"Rust"},
		SuggestedQuestions:   []string{"question one"},
	}
}

func TestInit_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init(context.Background()))
	require.NoError(t, s.Init(context.Background()))
}

func TestUpsertResume_SetsUploadedAt(t *testing.T) {
	s := newTestStore(t)
	rec := record("Alice", "Software Engineer", 87)

	before := time.Now().UTC()
	require.True(t, s.UpsertResume(context.Background(), rec))

	assert.False(t, rec.UploadedAt.IsZero())
	assert.False(t, rec.UploadedAt.Before(before.Truncate(time.Second)))
}

func TestUpsertResume_ReplacesOnSameKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := record("Alice", "Software Engineer", 60)
	require.True(t, s.UpsertResume(ctx, first))

	second := record("Alice", "Software Engineer", 91)
	second.Summary = "re-evaluated"
	require.True(t, s.UpsertResume(ctx, second))

	// Exactly one stored record, carrying the second analysis.
	rankings, err := s.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)
	require.Len(t, rankings, 1)
	assert.Equal(t, 91, rankings[0].MatchScore)

	stored, err := s.GetResume(ctx, "Alice", "Software Engineer")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "re-evaluated", stored.Summary)
	assert.False(t, stored.UploadedAt.Before(first.UploadedAt), "uploaded_at reflects the second write")
}

func TestUpsertResume_SameNameDifferentRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 80)))
	require.True(t, s.UpsertResume(ctx, record("Alice", "Intern (Software Engineer)", 70)))

	se, err := s.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)
	intern, err := s.RankingsForRole(ctx, "Intern (Software Engineer)")
	require.NoError(t, err)

	assert.Len(t, se, 1)
	assert.Len(t, intern, 1)
}

func TestRankingsForRole_OrderAndIsolation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 87)))
	require.True(t, s.UpsertResume(ctx, record("Bob", "Software Engineer", 92)))
	require.True(t, s.UpsertResume(ctx, record("Carol", "Software Engineer", 55)))
	require.True(t, s.UpsertResume(ctx, record("Dave", "Intern (Software Engineer)", 99)))

	rankings, err := s.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)

	require.Len(t, rankings, 3, "other roles never leak into this ranking")
	assert.Equal(t, "Bob", rankings[0].FullName)
	assert.Equal(t, "Alice", rankings[1].FullName)
	assert.Equal(t, "Carol", rankings[2].FullName)
}

func TestRankingsForRole_TieBreakByUploadTime(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Zoe", "Software Engineer", 80)))
	time.Sleep(5 * time.Millisecond)
	require.True(t, s.UpsertResume(ctx, record("Adam", "Software Engineer", 80)))

	rankings, err := s.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)
	require.Len(t, rankings, 2)

	// Equal scores: the earlier submission ranks first, regardless of name.
	assert.Equal(t, "Zoe", rankings[0].FullName)
	assert.Equal(t, "Adam", rankings[1].FullName)
}

func TestRankingsForRole_EmptyRole(t *testing.T) {
	s := newTestStore(t)

	rankings, err := s.RankingsForRole(context.Background(), "Nonexistent Role")
	require.NoError(t, err)
	assert.NotNil(t, rankings)
	assert.Empty(t, rankings)
}

func TestAllCandidates_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 87)))
	time.Sleep(5 * time.Millisecond)
	require.True(t, s.UpsertResume(ctx, record("Bob", "Intern (Software Engineer)", 92)))

	candidates, err := s.AllCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "Bob", candidates[0].FullName)
	assert.Equal(t, "Alice", candidates[1].FullName)
	assert.True(t, candidates[0].UploadedAt.After(candidates[1].UploadedAt))
}

func TestAllCandidates_Empty(t *testing.T) {
	s := newTestStore(t)

	candidates, err := s.AllCandidates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGetResume_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := record("Alice", "Software Engineer", 87)
	require.True(t, s.UpsertResume(ctx, rec))

	stored, err := s.GetResume(ctx, "Alice", "Software Engineer")
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, rec.FullName, stored.FullName)
	assert.Equal(t, rec.MatchScore, stored.MatchScore)
	assert.Equal(t, rec.ExperienceHighlights, stored.ExperienceHighlights)
	assert.Equal(t, rec.MatchingSkills, stored.MatchingSkills)
	assert.Equal(t, rec.MissingSkills, stored.MissingSkills)
	assert.Equal(t, rec.SuggestedQuestions, stored.SuggestedQuestions)
}

func TestGetResume_NotFound(t *testing.T) {
	s := newTestStore(t)

	stored, err := s.GetResume(context.Background(), "Nobody", "Software Engineer")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGetResume_KeepsIDAcrossUpserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 60)))
	first, err := s.GetResume(ctx, "Alice", "Software Engineer")
	require.NoError(t, err)

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 90)))
	second, err := s.GetResume(ctx, "Alice", "Software Engineer")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestClearResumes(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.True(t, s.UpsertResume(ctx, record("Alice", "Software Engineer", 87)))
	require.NoError(t, s.ClearResumes(ctx))

	rankings, err := s.RankingsForRole(ctx, "Software Engineer")
	require.NoError(t, err)
	assert.Empty(t, rankings)

	candidates, err := s.AllCandidates(ctx)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
