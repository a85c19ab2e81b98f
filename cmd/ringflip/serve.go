package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflip/internal/platform/tui"
	"github.com/vovakirdan/ringflip/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Ring Flip SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Best scores and run history are
stored per server, so all users share the same scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ringflip/host_key

Examples:
  ringflip serve                           # Listen on :23234 with auto-generated key
  ringflip serve --ssh :2222               # Listen on port 2222
  ringflip serve --host-key ./my_host_key  # Use specific host key
  ringflip serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := setup("", "")
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger.WithPrefix("ssh")
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		NewGame: func(user string) (registry.Game, error) {
			return a.newGame(logger.With("user", user))
		},
	}

	server, err := tui.NewSSHServer(cfg, tui.Env{
		Store:  a.store,
		Ledger: a.ledger,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting Ring Flip SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
