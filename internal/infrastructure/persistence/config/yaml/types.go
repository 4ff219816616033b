// Package yaml provides YAML configuration loading infrastructure: DTOs
// that mirror the on-disk schema and a ToDomain conversion into the
// domain config package's plain structs.
package yaml

import (
	"github.com/kodflow/meshbus/internal/domain/config"
)

// ConfigDTO mirrors the root YAML document.
type ConfigDTO struct {
	Version   string          `yaml:"version"`
	Logging   LoggingDTO      `yaml:"logging"`
	Nodes     []NodeDTO       `yaml:"nodes"`
	Transport TransportDTO    `yaml:"transport"`
}

// LoggingDTO mirrors the logging section.
type LoggingDTO struct {
	BaseDir  string        `yaml:"base_dir"`
	Defaults DefaultsDTO   `yaml:"defaults"`
	Daemon   DaemonLogDTO  `yaml:"daemon"`
}

// DefaultsDTO mirrors the logging defaults section.
type DefaultsDTO struct {
	TimestampFormat string      `yaml:"timestamp_format"`
	Rotation        RotationDTO `yaml:"rotation"`
}

// RotationDTO mirrors a log rotation policy.
type RotationDTO struct {
	MaxSize  string `yaml:"max_size"`
	MaxAge   string `yaml:"max_age"`
	MaxFiles int    `yaml:"max_files"`
	Compress bool   `yaml:"compress"`
}

// DaemonLogDTO mirrors the daemon's own event logging.
type DaemonLogDTO struct {
	Writers []WriterDTO `yaml:"writers"`
}

// WriterDTO mirrors one log writer entry.
type WriterDTO struct {
	Type  string `yaml:"type"`
	Level string `yaml:"level"`
	File  struct {
		Path string `yaml:"path"`
	} `yaml:"file"`
	JSON struct {
		Pretty bool `yaml:"pretty"`
	} `yaml:"json"`
}

// NodeDTO mirrors one entry under nodes.
type NodeDTO struct {
	Name      string         `yaml:"name"`
	Endpoints []EndpointDTO  `yaml:"endpoints"`
}

// EndpointDTO mirrors one publisher or subscriber a node advertises.
type EndpointDTO struct {
	Topic        string `yaml:"topic"`
	Role         string `yaml:"role"`
	PoolCapacity int    `yaml:"pool_capacity"`
	QueueDepth   int    `yaml:"queue_depth"`
	PayloadSize  int    `yaml:"payload_size"`
}

// TransportDTO mirrors the transport section.
type TransportDTO struct {
	Driver  string      `yaml:"driver"`
	MQTT    MQTTDTO     `yaml:"mqtt"`
	Bridges []BridgeDTO `yaml:"bridges"`
}

// MQTTDTO mirrors the mqtt transport's connection settings.
type MQTTDTO struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	QoS      byte   `yaml:"qos"`
}

// BridgeDTO mirrors one entry under transport.bridges.
type BridgeDTO struct {
	Topic        string `yaml:"topic"`
	Role         string `yaml:"role"`
	SourceNodeID uint8  `yaml:"source_node_id"`
	TopicID      uint8  `yaml:"topic_id"`
	Class        string `yaml:"class"`
	PoolCapacity int    `yaml:"pool_capacity"`
	PayloadSize  int    `yaml:"payload_size"`
}

// ToDomain converts the DTO tree into the domain config model. path is
// recorded on the result as Config.ConfigPath.
func (c *ConfigDTO) ToDomain(path string) *config.Config {
	cfg := &config.Config{
		Version:    c.Version,
		ConfigPath: path,
		Logging:    c.Logging.toDomain(),
		Nodes:      make([]config.NodeConfig, 0, len(c.Nodes)),
		Transport:  c.Transport.toDomain(),
	}
	for i := range c.Nodes {
		cfg.Nodes = append(cfg.Nodes, c.Nodes[i].toDomain())
	}
	return cfg
}

func (l *LoggingDTO) toDomain() config.LoggingConfig {
	writers := make([]config.WriterConfig, 0, len(l.Daemon.Writers))
	for _, w := range l.Daemon.Writers {
		writers = append(writers, config.WriterConfig{
			Type:  w.Type,
			Level: w.Level,
			File:  config.FileWriterConfig{Path: w.File.Path},
			JSON:  config.JSONWriterConfig{Pretty: w.JSON.Pretty},
		})
	}
	return config.LoggingConfig{
		BaseDir: l.BaseDir,
		Defaults: config.LogDefaults{
			TimestampFormat: l.Defaults.TimestampFormat,
			Rotation: config.RotationConfig{
				MaxSize:  l.Defaults.Rotation.MaxSize,
				MaxAge:   l.Defaults.Rotation.MaxAge,
				MaxFiles: l.Defaults.Rotation.MaxFiles,
				Compress: l.Defaults.Rotation.Compress,
			},
		},
		Daemon: config.DaemonLogging{Writers: writers},
	}
}

func (n *NodeDTO) toDomain() config.NodeConfig {
	endpoints := make([]config.EndpointConfig, 0, len(n.Endpoints))
	for _, e := range n.Endpoints {
		endpoints = append(endpoints, config.EndpointConfig{
			Topic:        e.Topic,
			Role:         e.Role,
			PoolCapacity: e.PoolCapacity,
			QueueDepth:   e.QueueDepth,
			PayloadSize:  e.PayloadSize,
		})
	}
	return config.NodeConfig{Name: n.Name, Endpoints: endpoints}
}

func (t *TransportDTO) toDomain() config.TransportConfig {
	bridges := make([]config.BridgeConfig, 0, len(t.Bridges))
	for _, b := range t.Bridges {
		bridges = append(bridges, config.BridgeConfig{
			Topic:        b.Topic,
			Role:         b.Role,
			SourceNodeID: b.SourceNodeID,
			TopicID:      b.TopicID,
			Class:        b.Class,
			PoolCapacity: b.PoolCapacity,
			PayloadSize:  b.PayloadSize,
		})
	}
	return config.TransportConfig{
		Driver: t.Driver,
		MQTT: config.MQTTConfig{
			Broker:   t.MQTT.Broker,
			ClientID: t.MQTT.ClientID,
			Username: t.MQTT.Username,
			Password: t.MQTT.Password,
			QoS:      t.MQTT.QoS,
		},
		Bridges: bridges,
	}
}
