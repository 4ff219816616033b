// Package mqtt bridges the domain bus ports onto an MQTT broker, standing
// in for the CAN-class transport this design was built against: every
// routing key maps to a topic string, every frame becomes a retained-false
// MQTT publish at a fixed QoS.
package mqtt

import (
	"context"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"github.com/kodflow/meshbus/internal/domain/bus"
	"github.com/kodflow/meshbus/internal/domain/config"
)

const (
	connectTimeout = 5 * time.Second
	pubSubTimeout  = 5 * time.Second
	topicPrefix    = "meshbus"
)

// Adapter implements bus.FrameSink and bus.FrameSource over a single MQTT
// connection.
type Adapter struct {
	client paho.Client
	logger *logrus.Logger
	qos    byte
}

// NewAdapter connects to the broker described by cfg and returns a ready
// Adapter. The connection is synchronous: NewAdapter blocks until
// connected or the connect timeout elapses.
func NewAdapter(cfg config.MQTTConfig, logger *logrus.Logger) (*Adapter, error) {
	if logger == nil {
		logger = logrus.New()
	}

	opts := paho.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(60 * time.Second)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.WithError(err).Warn("mqtt connection lost")
	})

	client := paho.NewClient(opts)
	if token := client.Connect(); token.WaitTimeout(connectTimeout) && token.Error() != nil {
		return nil, fmt.Errorf("connecting to mqtt broker %s: %w", cfg.Broker, token.Error())
	}

	qos := cfg.QoS
	logger.WithFields(logrus.Fields{
		"broker":    cfg.Broker,
		"client_id": cfg.ClientID,
		"qos":       qos,
	}).Info("mqtt adapter connected")

	return &Adapter{client: client, logger: logger, qos: qos}, nil
}

// Send publishes f onto the topic derived from its routing key. Traffic
// class is not representable on MQTT and is only logged, not enforced;
// an MQTT broker has no real-time scheduling concept to map it onto.
func (a *Adapter) Send(ctx context.Context, f bus.Frame) error {
	topic := routingKeyTopic(f.Key)
	token := a.client.Publish(topic, a.qos, false, f.Payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(pubSubTimeout):
		return fmt.Errorf("publish to %s timed out after %s", topic, pubSubTimeout)
	}
	if token.Error() != nil {
		return fmt.Errorf("publish to %s: %w", topic, token.Error())
	}

	a.logger.WithFields(logrus.Fields{
		"topic": topic,
		"class": f.Class.String(),
		"size":  len(f.Payload),
	}).Debug("forwarded frame")
	return nil
}

// RegisterRX subscribes to the topic derived from key and invokes handler
// for every message received on it.
func (a *Adapter) RegisterRX(key bus.RoutingKey, handler bus.FrameHandler) error {
	topic := routingKeyTopic(key)
	token := a.client.Subscribe(topic, a.qos, func(_ paho.Client, msg paho.Message) {
		handler(msg.Payload())
	})

	if !token.WaitTimeout(pubSubTimeout) {
		return fmt.Errorf("subscribe to %s timed out after %s", topic, pubSubTimeout)
	}
	if token.Error() != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, token.Error())
	}

	a.logger.WithField("topic", topic).Debug("registered inbound bridge")
	return nil
}

// Close disconnects from the broker, allowing up to 250ms for in-flight
// acknowledgements to drain.
func (a *Adapter) Close() {
	a.client.Disconnect(250)
}

func routingKeyTopic(key bus.RoutingKey) string {
	return fmt.Sprintf("%s/%d/%d", topicPrefix, key.SourceNodeID(), key.TopicID())
}

var (
	_ bus.FrameSink   = (*Adapter)(nil)
	_ bus.FrameSource = (*Adapter)(nil)
)
