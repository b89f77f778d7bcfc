package mqtt

import (
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/catgar/catgar/internal/infrastructure/config"
)

const (
	// connectTimeout is the maximum time to wait for the initial connection.
	connectTimeout = 10 * time.Second

	// publishTimeout is the maximum time to wait for publish acknowledgment.
	publishTimeout = 5 * time.Second

	// disconnectQuiesce is the time to wait for pending operations on
	// disconnect, in milliseconds.
	disconnectQuiesce = 1000

	// keepAlive is the keepalive interval for the connection.
	keepAlive = 60 * time.Second

	// tlsMinVersion is the minimum TLS version for secure connections.
	tlsMinVersion = tls.VersionTLS12
)

// Client is a publish-only MQTT connection for run-status messages.
//
// Thread Safety: all methods are safe for concurrent use, though the sync
// process only ever publishes from one goroutine.
type Client struct {
	client pahomqtt.Client
	cfg    config.MQTTConfig

	connected bool
	connMu    sync.RWMutex
}

// Connect establishes a connection to the MQTT broker.
//
// Parameters:
//   - cfg: MQTT configuration
//
// Returns:
//   - *Client: Connected client ready for publishing
//   - error: ErrConnectionFailed-wrapped error if the broker is unreachable
func Connect(cfg config.MQTTConfig) (*Client, error) {
	opts := buildClientOptions(cfg)

	c := &Client{cfg: cfg}

	opts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		c.setConnected(true)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, _ error) {
		c.setConnected(false)
	})

	c.client = pahomqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	// The OnConnect handler runs asynchronously and may not have fired yet.
	c.setConnected(true)

	return c, nil
}

// buildClientOptions creates paho options from the configuration.
func buildClientOptions(cfg config.MQTTConfig) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions()

	scheme := "tcp"
	if cfg.Broker.TLS {
		scheme = "ssl"
	}
	opts.AddBroker(fmt.Sprintf("%s://%s:%d", scheme, cfg.Broker.Host, cfg.Broker.Port))
	opts.SetClientID(cfg.Broker.ClientID)

	if cfg.Auth.Username != "" {
		opts.SetUsername(cfg.Auth.Username)
		opts.SetPassword(cfg.Auth.Password)
	}

	opts.SetCleanSession(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)

	if cfg.Broker.TLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tlsMinVersion})
	}

	return opts
}

// Publish sends a message to the specified topic.
//
// Parameters:
//   - topic: Topic to publish to
//   - payload: Message payload, typically JSON
//   - retained: Whether the broker keeps the message for new subscribers
//
// Returns:
//   - error: ErrNotConnected or ErrPublishFailed-wrapped error on failure
func (c *Client) Publish(topic string, payload []byte, retained bool) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	token := c.client.Publish(topic, byte(c.cfg.QoS), retained, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrPublishFailed, publishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// Close disconnects from the broker, waiting briefly for pending operations.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	c.client.Disconnect(disconnectQuiesce)
	c.setConnected(false)
	return nil
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.connected && c.client.IsConnected()
}

func (c *Client) setConnected(state bool) {
	c.connMu.Lock()
	c.connected = state
	c.connMu.Unlock()
}
