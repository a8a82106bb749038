package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "results", "matches.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "W", MatchResult{GoalsFor: 2, GoalsAgainst: 1}.Outcome())
	assert.Equal(t, "D", MatchResult{GoalsFor: 1, GoalsAgainst: 1}.Outcome())
	assert.Equal(t, "L", MatchResult{GoalsFor: 0, GoalsAgainst: 3}.Outcome())
}

func TestRecordAndSummarize(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	empty, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, empty)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	results := []MatchResult{
		{MatchID: "a", Team: "left", Seed: 1, GoalsFor: 2, GoalsAgainst: 0, Steps: 3000, FinishedAt: base},
		{MatchID: "b", Team: "left", Seed: 2, GoalsFor: 1, GoalsAgainst: 1, Steps: 3000, FinishedAt: base.Add(time.Minute)},
		{MatchID: "c", Team: "left", Seed: 3, GoalsFor: 0, GoalsAgainst: 1, Steps: 3000, Turnovers: 40, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range results {
		require.NoError(t, s.RecordMatch(ctx, r))
	}

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Matches: 3, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 3, GoalsAgainst: 2}, sum)

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].MatchID)
	assert.Equal(t, 40, recent[0].Turnovers)
	assert.True(t, recent[0].FinishedAt.Equal(results[2].FinishedAt))
	assert.Equal(t, "b", recent[1].MatchID)
}

func TestRecentOrdersSubSecondFinishes(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	base := time.Date(2024, 5, 1, 12, 0, 5, 0, time.UTC)
	require.NoError(t, s.RecordMatch(ctx, MatchResult{MatchID: "older", FinishedAt: base.Add(100 * time.Millisecond)}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{MatchID: "newer", FinishedAt: base.Add(120 * time.Millisecond)}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{MatchID: "oldest", FinishedAt: base}))

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	ids := make([]string, len(recent))
	for i, r := range recent {
		ids[i] = r.MatchID
	}
	assert.Equal(t, []string{"newer", "older", "oldest"}, ids)
	assert.True(t, recent[0].FinishedAt.Equal(base.Add(120*time.Millisecond)))
}

func TestRecordMatchReplaces(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	require.NoError(t, s.RecordMatch(ctx, MatchResult{MatchID: "x", GoalsFor: 0, GoalsAgainst: 1}))
	require.NoError(t, s.RecordMatch(ctx, MatchResult{MatchID: "x", GoalsFor: 3, GoalsAgainst: 1}))

	sum, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Matches)
	assert.Equal(t, 1, sum.Wins)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
