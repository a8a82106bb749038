package trace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/tactics"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dump")
	rec, err := NewRecorder(dir, "m-1")
	require.NoError(t, err)
	assert.Equal(t, Path(dir, "m-1"), rec.Path())

	profile := tactics.DefaultProfile()
	obs := &model.Observation{
		Ball:            model.Vec2{X: 0.123456789, Y: -0.3},
		BallOwnedTeam:   model.TeamLeft,
		BallOwnedPlayer: 1,
		Left: model.TeamState{
			Positions: []model.Vec2{{X: -1}, {X: 0.1, Y: 0.2}},
			Roles:     []model.Role{model.RoleGoalkeeper, model.RoleCentreForward},
		},
		Score:     [2]int{1, 0},
		StepsLeft: 400,
	}
	want := []Record{
		{Kind: KindHeader, MatchID: "m-1", Team: "left", Profile: &profile},
		{Kind: KindTick, Tick: 1, Seed: 42, Phase: "protect_lead", Observation: obs,
			Views: []model.AgentView{{Active: 1}}, Actions: []model.Action{model.ActionShot}},
	}
	for _, r := range want {
		require.NoError(t, rec.Write(r))
	}
	require.NoError(t, rec.Close())
	require.NoError(t, rec.Close())
	assert.Error(t, rec.Write(Record{Kind: KindTick}))

	got, err := ReadAll(Path(dir, "m-1"))
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("records differ (-want +got):\n%s", diff)
	}
}

func TestOpenMissingOrCorrupt(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.jsonl.zst"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.jsonl.zst")
	require.NoError(t, os.WriteFile(bad, []byte("not zstd at all"), 0o644))
	_, err = ReadAll(bad)
	assert.Error(t, err)
}
