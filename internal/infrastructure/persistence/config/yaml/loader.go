package yaml

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kodflow/meshbus/internal/domain/config"
)

// Default configuration values applied to unset DTO fields before
// conversion to the domain model.
const (
	defaultVersion         string = "1"
	defaultBaseDir         string = "/var/log/meshbus"
	defaultTimestampFormat string = "iso8601"
	defaultMaxSize         string = "100MB"
	defaultMaxFiles        int    = 10
	defaultTransportDriver string = config.TransportLoopback
)

// ErrNoConfigurationLoaded is returned when Reload is called without a prior Load.
var ErrNoConfigurationLoaded error = errors.New("no configuration loaded")

// Loader loads configuration from YAML files, remembering the last path
// loaded so Reload can re-read it.
type Loader struct {
	lastPath string
}

// New creates a new YAML configuration loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses a configuration file from path.
func (l *Loader) Load(path string) (*config.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path is trusted input
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := l.Parse(data)
	if err != nil {
		return nil, err
	}

	cfg.ConfigPath = path
	l.lastPath = path
	return cfg, nil
}

// Parse parses configuration from raw YAML bytes.
func (l *Loader) Parse(data []byte) (*config.Config, error) {
	var dto ConfigDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	applyDefaults(&dto)
	cfg := dto.ToDomain("")

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Reload reloads configuration from the last loaded path.
func (l *Loader) Reload() (*config.Config, error) {
	if l.lastPath == "" {
		return nil, fmt.Errorf("%w", ErrNoConfigurationLoaded)
	}
	return l.Load(l.lastPath)
}

// applyDefaults fills in unset DTO fields before domain conversion.
func applyDefaults(dto *ConfigDTO) {
	if dto.Version == "" {
		dto.Version = defaultVersion
	}
	if dto.Logging.BaseDir == "" {
		dto.Logging.BaseDir = defaultBaseDir
	}
	if dto.Logging.Defaults.TimestampFormat == "" {
		dto.Logging.Defaults.TimestampFormat = defaultTimestampFormat
	}
	if dto.Logging.Defaults.Rotation.MaxSize == "" {
		dto.Logging.Defaults.Rotation.MaxSize = defaultMaxSize
	}
	if dto.Logging.Defaults.Rotation.MaxFiles == 0 {
		dto.Logging.Defaults.Rotation.MaxFiles = defaultMaxFiles
	}
	if len(dto.Logging.Daemon.Writers) == 0 {
		dto.Logging.Daemon.Writers = []WriterDTO{{Type: "console", Level: "info"}}
	}
	if dto.Transport.Driver == "" && len(dto.Transport.Bridges) > 0 {
		dto.Transport.Driver = defaultTransportDriver
	}

	for i := range dto.Nodes {
		for j := range dto.Nodes[i].Endpoints {
			ep := &dto.Nodes[i].Endpoints[j]
			if ep.PayloadSize == 0 {
				ep.PayloadSize = 64
			}
		}
	}
}
