package bootstrap

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/config"
	loopbackbus "github.com/kodflow/meshbus/internal/infrastructure/transport/bus/loopback"
	mqttbus "github.com/kodflow/meshbus/internal/infrastructure/transport/bus/mqtt"
)

// BuildTransport selects and constructs the bus adapter named by
// cfg.Driver. An empty driver defaults to loopback, so a config with no
// Transport section still runs (it just never leaves the process).
//
// Returns:
//   - bus.FrameSink: the outbound half, for remote.Subscriber bridges.
//   - bus.FrameSource: the inbound half, for remote.Publisher bridges.
//   - func(): a cleanup function to call on shutdown.
//   - error: a connection or configuration error.
func BuildTransport(cfg config.TransportConfig, logger *logrus.Logger) (bus.FrameSink, bus.FrameSource, func(), error) {
	switch cfg.Driver {
	case config.TransportMQTT:
		adapter, err := mqttbus.NewAdapter(cfg.MQTT, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("mqtt transport: %w", err)
		}
		return adapter, adapter, adapter.Close, nil
	case config.TransportLoopback, "":
		adapter := loopbackbus.New()
		return adapter, adapter, func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown transport driver %q", cfg.Driver)
	}
}
