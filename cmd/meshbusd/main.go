// Command meshbusd runs the meshbus daemon: it loads a topology of nodes
// and topics from a YAML configuration file, binds the configured
// transport (loopback or MQTT), and optionally serves the control-plane
// gRPC introspection API until it receives a termination signal.
package main

import (
	"os"

	"github.com/kodflow/meshbus/internal/bootstrap"
)

func main() {
	os.Exit(bootstrap.Run())
}
