package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/nstehr/pitchside/store"
)

var (
	resultsDB    string
	resultsLimit int
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the win/draw/loss record and the most recent matches",
	Args:  cobra.NoArgs,
	RunE:  runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsDB, "db", "", "results database (overrides config)")
	resultsCmd.Flags().IntVarP(&resultsLimit, "limit", "n", 10, "number of recent matches to list")
}

func runResults(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = resultsDB
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("no results database configured")
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	sum, err := s.Summary(ctx)
	if err != nil {
		return err
	}
	recent, err := s.Recent(ctx, resultsLimit)
	if err != nil {
		return err
	}

	fmt.Printf("%d matches: %dW %dD %dL, goals %d-%d\n\n",
		sum.Matches, sum.Wins, sum.Draws, sum.Losses, sum.GoalsFor, sum.GoalsAgainst)
	if len(recent) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FINISHED\tMATCH\tTEAM\tSCORE\tRESULT\tSTEPS\tTURNOVERS\tPHASE CHANGES")
	for _, r := range recent {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d-%d\t%s\t%d\t%d\t%d\n",
			r.FinishedAt.Local().Format(time.DateTime), r.MatchID, r.Team,
			r.GoalsFor, r.GoalsAgainst, r.Outcome(), r.Steps, r.Turnovers, r.PhaseChanges)
	}
	return w.Flush()
}
