package influxdb

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/catgar/catgar/internal/infrastructure/config"
	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// Default timeouts for InfluxDB operations.
const (
	defaultConnectTimeout = 10 * time.Second
	defaultPingTimeout    = 5 * time.Second
)

// Client wraps the InfluxDB v2 client with catGar-specific functionality.
//
// Writes use the blocking API: the sync engine is fully sequential and needs
// every write error attributed to the category batch that caused it, so
// asynchronous batching would only blur the failure isolation contract.
type Client struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	cfg      config.InfluxDBConfig
	log      *logging.Logger
}

// Connect establishes a connection to the InfluxDB server.
//
// It performs the following setup:
//  1. Creates the client with token authentication
//  2. Verifies connectivity with a ping
//  3. Configures the blocking write API for the target org/bucket
//
// Parameters:
//   - ctx: Context for the connectivity check
//   - cfg: InfluxDB configuration
//
// Returns:
//   - *Client: Connected client ready for use
//   - error: If the connection cannot be verified
func Connect(ctx context.Context, cfg config.InfluxDBConfig) (*Client, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(pingCtx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrConnectionFailed, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server not healthy", ErrConnectionFailed)
	}

	return &Client{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		cfg:      cfg,
		log:      logging.Default(),
	}, nil
}

// SetLogger replaces the client's logger. Call once after construction,
// before any writes.
func (c *Client) SetLogger(log *logging.Logger) {
	c.log = log
}

// Close shuts down the InfluxDB connection. The blocking write API has no
// internal buffer, so there is nothing to flush.
func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// HealthCheck verifies the InfluxDB connection is alive and functioning.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (c *Client) HealthCheck(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	healthy, err := c.client.Ping(checkCtx)
	if err != nil {
		return fmt.Errorf("influxdb health check failed: %w", err)
	}
	if !healthy {
		return fmt.Errorf("influxdb health check failed: server not healthy")
	}

	return nil
}
