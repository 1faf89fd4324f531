package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Vivian202511/snake-game-vivian/internal/config"
	"github.com/Vivian202511/snake-game-vivian/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each connection gets its own game session; all sessions share the same
persisted best score.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake-game/host_key

Examples:
  snake serve                           # Listen per config (default :23235)
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := cfg.SSH.Address
	if flagSSHAddr != "" {
		addr = flagSSHAddr
	}
	hostKey := cfg.SSH.HostKey
	if flagHostKey != "" {
		hostKey = flagHostKey
	}
	dbPath := cfg.Database.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	serverCfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      dbPath,
		IdleTimeout: cfg.SSH.IdleTimeout(),
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
