package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxSessions int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the variant menu. Scores
are recorded under the SSH user name and share one leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.protector/host_key

Flags not given on the command line fall back to the environment:
  PROTECTOR_SSH_ADDR, PROTECTOR_HOST_KEY, PROTECTOR_IDLE_TIMEOUT,
  PROTECTOR_MAX_SESSIONS, PROTECTOR_CONFIG

Examples:
  protector serve                           # Listen on :23234
  protector serve --ssh :2222               # Listen on port 2222
  protector serve --host-key ./my_host_key  # Use specific host key
  protector serve --max-sessions 8          # Refuse the ninth player

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxSessions, "max-sessions", defaults.MaxSessions, "Concurrent players allowed (0 = unlimited)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Config YAML applied to every variant")
}

// envFallback fills unset flags from PROTECTOR_* variables.
func envFallback(cmd *cobra.Command) error {
	strFlags := map[string]*string{
		"ssh":      &flagSSHAddr,
		"host-key": &flagHostKey,
		"config":   &flagServeConfig,
	}
	intFlags := map[string]*int{
		"idle-timeout": &flagIdleTimeout,
		"max-sessions": &flagMaxSessions,
	}
	env := map[string]string{
		"ssh":          "PROTECTOR_SSH_ADDR",
		"host-key":     "PROTECTOR_HOST_KEY",
		"config":       "PROTECTOR_CONFIG",
		"idle-timeout": "PROTECTOR_IDLE_TIMEOUT",
		"max-sessions": "PROTECTOR_MAX_SESSIONS",
	}

	for name, key := range env {
		v, ok := os.LookupEnv(key)
		if !ok || cmd.Flags().Changed(name) {
			continue
		}
		if p, ok := strFlags[name]; ok {
			*p = v
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*intFlags[name] = n
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) {
	if err := envFallback(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.ConfigPath = flagServeConfig
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.MaxSessions = flagMaxSessions
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("protector-ssh")

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting protector SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
