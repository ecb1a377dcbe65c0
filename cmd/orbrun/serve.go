package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"orbrun/internal/config"
	"orbrun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Orbit Runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu. Runs are
stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.orbrun/host_key

The listen address comes from the config's server section unless
--ssh overrides it.

Examples:
  orbrun serve                           # Listen per config (default :23234)
  orbrun serve --ssh :2222               # Listen on port 2222
  orbrun serve --host-key ./my_host_key  # Use specific host key
  orbrun serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	orbitCfg, err := config.LoadOrbit(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	addr := flagSSHAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", orbitCfg.Server.Host, orbitCfg.Server.Port)
	}

	cfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SeedCfg:     orbitCfg.Seed,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Orbit Runner SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
