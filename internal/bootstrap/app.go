// Package bootstrap provides dependency injection wiring using Google Wire.
// It isolates all dependency construction from the main entry point,
// allowing for a minimal main.go and better testability.
package bootstrap

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	domainconfig "github.com/kodflow/meshbus/internal/domain/config"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	grpctransport "github.com/kodflow/meshbus/internal/infrastructure/transport/grpc"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui"
)

// version is the application version, set at build time via ldflags.
var version string = "dev"

// App holds the dependencies Wire assembled plus the config-driven pieces
// Run attaches afterward: the transport adapter and topology, whose
// concrete type depends on a value read from the config file at runtime,
// something Wire's compile-time graph cannot branch on.
type App struct {
	// Config is the loaded configuration.
	Config *domainconfig.Config
	// Registry is the process-wide topic registry.
	Registry *middleware.Registry
	// GRPC is the control-plane gRPC server, unstarted until Run calls Serve.
	GRPC *grpctransport.Server
	// Logger is the structured logger every adapter and the main loop use.
	Logger *logrus.Logger

	// Topology holds the nodes and bridges BuildTopology constructed.
	Topology *Topology

	transportCleanup func()
}

// Close tears down the gRPC server, every node's endpoints, and the
// transport adapter, in that order.
func (a *App) Close() {
	if a.GRPC != nil {
		a.GRPC.Stop()
	}
	if a.Topology != nil {
		a.Topology.Close()
	}
	if a.transportCleanup != nil {
		a.transportCleanup()
	}
}

// Run is the main entry point called from cmd/meshbusd/main.go. It parses
// flags, initializes the application via Wire, attaches the config-driven
// transport and topology, and blocks until a termination signal arrives.
//
// Returns:
//   - int: exit code (0 for success, 1 for error).
func Run() int {
	defaultConfigPath := "/etc/meshbus/config.yaml"
	if envPath := os.Getenv("MESHBUS_CONFIG"); envPath != "" {
		defaultConfigPath = envPath
	}

	var configPath string
	flag.StringVar(&configPath, "config", defaultConfigPath, "path to configuration file")
	grpcAddr := flag.String("grpc", "", "address to serve the control-plane gRPC server on; empty disables it")
	tuiMode := flag.String("tui", "", `dashboard mode: "raw", "interactive", or empty to disable`)
	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("meshbusd %s\n", version)
		return 0
	}

	if err := run(configPath, *grpcAddr, *tuiMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// run executes the main application logic: it wires the static graph via
// Wire, attaches the transport and topology, starts the optional
// control-plane server and dashboard, and blocks until signaled.
func run(cfgPath, grpcAddr, tuiMode string) error {
	app, err := InitializeApp(cfgPath)
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	defer app.Close()

	sink, src, cleanup, err := BuildTransport(app.Config.Transport, app.Logger)
	if err != nil {
		return fmt.Errorf("building transport: %w", err)
	}
	app.transportCleanup = cleanup

	topo, err := BuildTopology(app.Config, app.Registry, sink, src)
	if err != nil {
		return fmt.Errorf("building topology: %w", err)
	}
	app.Topology = topo

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if grpcAddr != "" {
		go func() {
			if err := app.GRPC.Serve(grpcAddr); err != nil {
				app.Logger.WithError(err).Warn("grpc server stopped")
			}
		}()
	}

	var tuiDone chan error
	if mode, ok := parseTUIMode(tuiMode); ok {
		cfg := tui.DefaultConfig(version)
		cfg.Mode = mode
		dashboard := tui.New(cfg, app.Registry)
		tuiDone = make(chan error, 1)
		go func() {
			tuiDone <- dashboard.Run(ctx)
		}()
	}

	app.Logger.WithField("nodes", len(topo.Nodes)).Info("meshbus started")

	select {
	case <-sigCh:
		app.Logger.Info("shutting down")
	case <-ctx.Done():
	case err := <-tuiDone:
		if err != nil {
			app.Logger.WithError(err).Warn("dashboard stopped")
		}
	}
	return nil
}

// parseTUIMode translates the -tui flag value into a tui.Mode. An empty
// value disables the dashboard entirely, reported as ok == false.
func parseTUIMode(value string) (mode tui.Mode, ok bool) {
	switch value {
	case "raw":
		return tui.ModeRaw, true
	case "interactive":
		return tui.ModeInteractive, true
	default:
		return tui.ModeRaw, false
	}
}
