package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the toolkit over SSH",
	Long: `Start an SSH server. Every connection gets its own menu session;
all connections share one score table.

Host key handling:
  - If --host-key is given, that file is used (created if missing)
  - Otherwise the key lives at ~/.swiftbox/host_key

Examples:
  swiftbox serve
  swiftbox serve --ssh :2222
  swiftbox serve --host-key ./host_key --db ./scores.db

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key path (default ~/.swiftbox/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect idle sessions after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Servers log sessions at info unless told otherwise.
	if f := cmd.Flag("log-level"); f == nil || !f.Changed {
		logger.SetLevel(log.InfoLevel)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, env)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "SwiftBox SSH server on %s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe(ctx)
}
