package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nstehr/pitchside/config"
)

const banner = `
██████╗ ██╗████████╗ ██████╗██╗  ██╗███████╗██╗██████╗ ███████╗
██╔══██╗██║╚══██╔══╝██╔════╝██║  ██║██╔════╝██║██╔══██╗██╔════╝
██████╔╝██║   ██║   ██║     ███████║███████╗██║██║  ██║█████╗
██╔═══╝ ██║   ██║   ██║     ██╔══██║╚════██║██║██║  ██║██╔══╝
██║     ██║   ██║   ╚██████╗██║  ██║███████║██║██████╔╝███████╗
╚═╝     ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝╚═════╝ ╚══════╝

Role-Based Tactical Football Intelligence`

var (
	configPath string
	envFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "pitchside",
	Short:         "Role-based tactical policy sidecar for simulated football",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file with PITCHSIDE_* overrides")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(serveCmd, resultsCmd, replayCmd)
}

// loadConfig resolves the effective configuration and installs the logger.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
