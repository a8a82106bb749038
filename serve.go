package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nstehr/pitchside/agent"
	"github.com/nstehr/pitchside/config"
	"github.com/nstehr/pitchside/ipc"
	"github.com/nstehr/pitchside/store"
	"github.com/nstehr/pitchside/tactics"
)

var (
	serveSocket  string
	serveWS      string
	serveDB      string
	serveDumpDir string
	serveWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer simulator bridges over a unix socket and optionally websocket",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveSocket, "socket", "", "unix socket path (overrides config)")
	serveCmd.Flags().StringVar(&serveWS, "ws", "", "websocket listen address, e.g. :8765 (overrides config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "results database (overrides config)")
	serveCmd.Flags().StringVar(&serveDumpDir, "dump-dir", "", "write per-match dumps here (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "reload the tactical profile when the config file changes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("socket") {
		cfg.Socket = serveSocket
	}
	if flags.Changed("ws") {
		cfg.WSAddr = serveWS
	}
	if flags.Changed("db") {
		cfg.DBPath = serveDB
	}
	if flags.Changed("dump-dir") {
		cfg.DumpDir = serveDumpDir
	}

	fmt.Println(banner)
	slog.Info("starting pitchside", "profile", cfg.Profile.Name, "team", cfg.Team)

	engine, err := tactics.NewEngine(cfg.Profile)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	opts := agent.Options{Team: cfg.Team, DumpDir: cfg.DumpDir}
	if cfg.DBPath != "" {
		results, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer results.Close()
		opts.Results = results
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if err := serveSocketBridges(ctx, g, cfg.Socket, engine, opts); err != nil {
		return err
	}
	if cfg.WSAddr != "" {
		serveWebSocketBridges(ctx, g, cfg.WSAddr, engine, opts)
	}
	if serveWatch && configPath != "" {
		reloader := agent.NewReloader(engine, configPath, config.LoadProfile)
		g.Go(func() error { return reloader.Start(ctx) })
	}

	err = g.Wait()
	slog.Info("shutting down")
	return err
}

func serveSocketBridges(ctx context.Context, g *errgroup.Group, socketPath string, engine *tactics.Engine, opts agent.Options) error {
	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		return fmt.Errorf("clean up socket %s: %w", socketPath, err)
	}
	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", socketPath, err)
	}
	slog.Info("listening on domain socket", "path", socketPath)

	g.Go(func() error {
		<-ctx.Done()
		listener.Close()
		os.Remove(socketPath)
		return nil
	})
	g.Go(func() error {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return nil
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted", "transport", "socket")
			go handleBridge(ipc.NewStreamTransport(conn), engine, opts)
		}
	})
	return nil
}

func serveWebSocketBridges(ctx context.Context, g *errgroup.Group, addr string, engine *tactics.Engine, opts agent.Options) {
	mux := http.NewServeMux()
	mux.Handle("/bridge", ipc.WebSocketHandler(func(t ipc.Transport) {
		slog.Info("new connection accepted", "transport", "websocket", "remote", t.RemoteAddr())
		handleBridge(t, engine, opts)
	}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g.Go(func() error {
		slog.Info("listening for websocket bridges", "addr", addr, "path", "/bridge")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("websocket server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}

// handleBridge runs one bridge session to completion. Each bridge gets its
// own agent; only the engine is shared.
func handleBridge(t ipc.Transport, engine *tactics.Engine, opts agent.Options) {
	c := ipc.NewConnection(t, nil)
	a := agent.New(c, engine, opts)
	a.Register()
	c.ReadLoop()
	a.Close()
}
