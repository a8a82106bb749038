package agent

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nstehr/pitchside/config"
	"github.com/nstehr/pitchside/tactics"
)

func TestReloaderSwapsProfileOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "pitchside.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Balanced\n"), 0o644))

	engine, err := tactics.NewEngine(tactics.DefaultProfile())
	require.NoError(t, err)

	r := NewReloader(engine, path, config.LoadProfile)
	r.debounce = 20 * time.Millisecond
	r.swapped = make(chan string, 1)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- r.Start(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-errc)
	}()

	// The watcher may not be registered yet; keep saving until it notices.
	edit := []byte("profile:\n  name: Nervy\n  protect_lead_percent: 40\n")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		require.NoError(t, os.WriteFile(path, edit, 0o644))
		select {
		case name := <-r.swapped:
			if name == "Nervy" {
				break wait
			}
		case <-tick.C:
		case <-deadline:
			t.Fatal("profile was not reloaded")
		}
	}
	active, _ := engine.Snapshot()
	assert.Equal(t, 40, active.ProtectLeadPercent)

	// A broken rule is rejected and the running profile survives.
	broken := []byte("profile:\n  name: Broken\n  phase_rules:\n    - {name: x, phase: normal, when: \"StepsLeft <\"}\n")
	require.NoError(t, os.WriteFile(path, broken, 0o644))
	time.Sleep(200 * time.Millisecond)
	active, _ = engine.Snapshot()
	assert.Equal(t, "Nervy", active.Name)
}

func TestReloaderMissingDir(t *testing.T) {
	engine, err := tactics.NewEngine(tactics.DefaultProfile())
	require.NoError(t, err)
	r := NewReloader(engine, filepath.Join(t.TempDir(), "gone", "pitchside.yaml"), config.LoadProfile)
	assert.Error(t, r.Start(context.Background()))
}
