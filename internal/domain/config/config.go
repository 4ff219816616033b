// Package config provides domain value objects for daemon and transport configuration.
package config

// Config represents the root configuration structure.
// It contains global logging defaults, the nodes to start, and the
// transport adapter bridging topics across the CAN-class bus.
type Config struct {
	// Version specifies the configuration schema version for compatibility.
	Version string
	// Logging defines global logging defaults.
	Logging LoggingConfig
	// Nodes contains the list of nodes to create at startup, each with
	// its own endpoints.
	Nodes []NodeConfig
	// Transport configures the bus adapter bridging local topics across
	// the network. A zero-value Transport (empty Driver) means no
	// bridging: the process only routes locally.
	Transport TransportConfig
	// ConfigPath stores the path from which this configuration was loaded.
	ConfigPath string
}

// FindNode returns a node configuration by name.
//
// Params:
//   - name: node name to find
//
// Returns:
//   - *NodeConfig: node configuration or nil if not found
func (c *Config) FindNode(name string) *NodeConfig {
	// search nodes by name
	for i := range c.Nodes {
		// check if node name matches
		if c.Nodes[i].Name == name {
			// return matching node
			return &c.Nodes[i]
		}
	}
	// no match found
	return nil
}

// Validate validates the configuration.
//
// Returns:
//   - error: validation error if any
func (c *Config) Validate() error {
	// delegate to validation function
	return Validate(c)
}

// DefaultConfig returns a new Config with default values: a single node
// named "default" with no endpoints, and no transport bridging.
//
// Returns:
//   - *Config: configuration with sensible defaults for logging.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Logging: DefaultLoggingConfig(),
		Nodes:   []NodeConfig{{Name: "default"}},
	}
}
