package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-down/internal/platform/tui"
)

var (
	flagHost        string
	flagPort        int
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game. All sessions share one score
ranking that lasts until the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.down/host_key

Examples:
  down serve                           # Listen on :23234
  down serve --port 2222               # Listen on port 2222
  down serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagHost, "host", "", "Interface to listen on (empty = all)")
	serveCmd.Flags().IntVar(&flagPort, "port", 23234, "SSH port")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = net.JoinHostPort(flagHost, strconv.Itoa(flagPort))
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Game = cfg
	srvCfg.FPS = flagFPS
	srvCfg.Seed = flagSeed
	srvCfg.Logger = logger

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting down SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", flagPort)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
