package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstehr/pitchside/tactics"
)

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, tactics.DefaultProfile(), cfg.Profile)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := write(t, dir, "pitchside.yaml", `
socket: /tmp/test.sock
dump_dir: dumps
profile:
  name: Nervy
  protect_lead_percent: 30
  shot_line_x: 3.5
  phase_rules:
    - name: chase
      priority: 300
      phase: all_out_attack
      when: "Lead() <= -2"
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.sock", cfg.Socket)
	assert.Equal(t, "dumps", cfg.DumpDir)
	assert.Equal(t, "pitchside.db", cfg.DBPath, "unset keys keep their default")
	assert.Equal(t, "Nervy", cfg.Profile.Name)
	assert.Equal(t, 30, cfg.Profile.ProtectLeadPercent)
	assert.Equal(t, 20, cfg.Profile.AllOutAttackPercent)
	assert.Equal(t, 1.0, cfg.Profile.ShotLineX, "profile is clamped")
	require.Len(t, cfg.Profile.PhaseRules, 1)
	assert.Equal(t, "chase", cfg.Profile.PhaseRules[0].Name)

	profile, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Profile, profile)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := write(t, t.TempDir(), "bad.yaml", "sockt: /tmp/x.sock\n")
	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := write(t, dir, ".env", "PITCHSIDE_DB=from-file.db\nPITCHSIDE_LOG_LEVEL=debug\n")
	t.Setenv("PITCHSIDE_SOCKET", "/tmp/env.sock")
	t.Setenv("PITCHSIDE_DB", "from-env.db")
	t.Cleanup(func() { os.Unsetenv("PITCHSIDE_LOG_LEVEL") })

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.sock", cfg.Socket)
	assert.Equal(t, "from-env.db", cfg.DBPath, "process environment beats .env")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
