package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"runtime"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/tactics"
	"github.com/nstehr/pitchside/trace"
)

var replayParallel int

var replayCmd = &cobra.Command{
	Use:   "replay <dump.jsonl.zst>...",
	Short: "Re-run recorded matches and report ticks whose actions differ",
	Long: `Replay feeds every recorded tick of a match dump back through a fresh
engine built from the dump's own profile, using the recorded per-tick seed.
Profiles swapped in during the match are picked up where they were recorded.
Any tick whose phase or actions differ from the recording is reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVarP(&replayParallel, "parallel", "p", runtime.NumCPU(), "dumps replayed concurrently")
}

// replayReport summarizes one replayed dump.
type replayReport struct {
	Path       string
	MatchID    string
	Ticks      int
	Mismatches []tickMismatch
}

type tickMismatch struct {
	Tick int
	Diff string
}

func runReplay(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	reports := make([]replayReport, len(args))
	var g errgroup.Group
	g.SetLimit(max(replayParallel, 1))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			rep, err := replayDump(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, rep := range reports {
		if len(rep.Mismatches) == 0 {
			fmt.Printf("ok    %s (%s, %d ticks)\n", rep.Path, rep.MatchID, rep.Ticks)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s (%s, %d of %d ticks differ)\n", rep.Path, rep.MatchID, len(rep.Mismatches), rep.Ticks)
		for _, m := range rep.Mismatches {
			fmt.Printf("  tick %d (-recorded +replayed):\n%s", m.Tick, m.Diff)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d dumps did not replay identically", failed, len(reports))
	}
	return nil
}

// replayedTick is what gets compared per tick.
type replayedTick struct {
	Phase   string
	Actions []string
}

// replayDump re-decides every tick in a dump and collects the differences.
func replayDump(path string) (replayReport, error) {
	rep := replayReport{Path: path}
	records, err := trace.ReadAll(path)
	if err != nil {
		return rep, err
	}
	if len(records) == 0 || records[0].Kind != trace.KindHeader {
		return rep, errors.New("dump has no header record")
	}
	header := records[0]
	rep.MatchID = header.MatchID

	profile := tactics.DefaultProfile()
	if header.Profile != nil {
		profile = *header.Profile
	} else {
		slog.Warn("dump header carries no profile, replaying with defaults", "path", path)
	}
	engine, err := tactics.NewEngine(profile)
	if err != nil {
		return rep, fmt.Errorf("build engine from recorded profile: %w", err)
	}

	for _, rec := range records[1:] {
		if rec.Kind == trace.KindProfile && rec.Profile != nil {
			if engine, err = tactics.NewEngine(*rec.Profile); err != nil {
				return rep, fmt.Errorf("build engine from profile swapped in at tick %d: %w", rec.Tick, err)
			}
			continue
		}
		if rec.Kind != trace.KindTick || rec.Observation == nil {
			continue
		}
		rep.Ticks++
		decision := engine.Evaluate(rec.Observation, rec.Views, rand.New(rand.NewSource(rec.Seed)))

		want := replayedTick{Phase: rec.Phase, Actions: actionNames(rec.Actions)}
		got := replayedTick{Phase: decision.Phase.String(), Actions: actionNames(decision.Actions)}
		if diff := cmp.Diff(want, got); diff != "" {
			rep.Mismatches = append(rep.Mismatches, tickMismatch{Tick: rec.Tick, Diff: diff})
		}
	}
	slog.Debug("dump replayed", "path", path, "ticks", rep.Ticks, "mismatches", len(rep.Mismatches))
	return rep, nil
}

func actionNames(actions []model.Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}
