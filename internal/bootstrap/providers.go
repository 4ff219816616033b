// Package bootstrap provides dependency injection wiring using Google Wire.
// It isolates all dependency construction from the main entry point,
// allowing for a minimal main.go and better testability.
package bootstrap

import (
	"github.com/sirupsen/logrus"

	domainconfig "github.com/kodflow/meshbus/internal/domain/config"
	"github.com/kodflow/meshbus/internal/domain/middleware"
	yamlloader "github.com/kodflow/meshbus/internal/infrastructure/persistence/config/yaml"
	grpctransport "github.com/kodflow/meshbus/internal/infrastructure/transport/grpc"
)

// ProvideLogger creates the structured logger every adapter and the main
// loop log through.
//
// Returns:
//   - *logrus.Logger: a logger at info level.
func ProvideLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// LoadConfig loads configuration from configPath using loader.
//
// Params:
//   - loader: the YAML configuration loader.
//   - configPath: the path to the configuration file.
//
// Returns:
//   - *domainconfig.Config: the loaded and validated configuration.
//   - error: any error during loading.
func LoadConfig(loader *yamlloader.Loader, configPath string) (*domainconfig.Config, error) {
	return loader.Load(configPath)
}

// ProvideRegistry creates the process-wide topic registry.
//
// Returns:
//   - *middleware.Registry: an empty registry.
func ProvideRegistry() *middleware.Registry {
	return middleware.New()
}

// ProvideGRPCServer creates the control-plane gRPC server backed by registry.
//
// Params:
//   - registry: the registry the server's Snapshot RPC reads from.
//
// Returns:
//   - *grpctransport.Server: an unstarted gRPC server.
func ProvideGRPCServer(registry *middleware.Registry) *grpctransport.Server {
	return grpctransport.NewServer(registry)
}

// NewApp assembles the App from Wire's static graph. The config-driven
// transport adapter and topology are attached afterward by Run, since
// Wire resolves a fixed set of concrete types at compile time and cannot
// choose between the loopback and MQTT adapters based on a value read
// from the config file at runtime.
//
// Params:
//   - cfg: the loaded configuration.
//   - registry: the process-wide topic registry.
//   - grpcServer: the control-plane gRPC server.
//   - logger: the structured logger.
//
// Returns:
//   - *App: the application container with its static dependencies wired.
func NewApp(cfg *domainconfig.Config, registry *middleware.Registry, grpcServer *grpctransport.Server, logger *logrus.Logger) *App {
	return &App{
		Config:   cfg,
		Registry: registry,
		GRPC:     grpcServer,
		Logger:   logger,
	}
}
