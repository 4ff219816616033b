//go:build wireinject

package bootstrap

import (
	"github.com/google/wire"

	yamlloader "github.com/kodflow/meshbus/internal/infrastructure/persistence/config/yaml"
)

// InitializeApp creates the application with its static dependencies
// wired: config loader, registry, gRPC server, logger. This function is
// the injector that Wire will generate code for.
//
// Params:
//   - configPath: the path to the YAML configuration file.
//
// Returns:
//   - *App: the application with its static dependencies wired.
//   - error: any error during dependency construction.
func InitializeApp(configPath string) (*App, error) {
	wire.Build(
		// Infrastructure: configuration loader.
		yamlloader.New,

		// Providers: custom provider functions.
		LoadConfig,
		ProvideRegistry,
		ProvideGRPCServer,
		ProvideLogger,

		// Bootstrap: final App struct.
		NewApp,
	)
	return nil, nil
}
