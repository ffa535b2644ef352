// Package statsd emits operational counters over UDP using the StatsD line
// protocol. Metrics are best-effort: emission never fails a request.
package statsd

import (
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

// Sink describes the minimal interface required to emit StatsD-style metrics.
type Sink interface {
	Count(name string, value int64)
	Timing(name string, value time.Duration)
}

// Config describes how to connect to a StatsD-compatible sink.
type Config struct {
	Enabled bool
	Address string
	Prefix  string
	Logger  *slog.Logger
}

// Client emits metrics over UDP. It is safe for concurrent use; a disabled
// client swallows every call.
type Client struct {
	enabled bool
	address string
	prefix  string
	logger  *slog.Logger

	mu   sync.Mutex
	conn net.Conn
}

var _ Sink = (*Client)(nil)

// NewClient builds a client. When disabled (or without an address) every
// emission is a no-op; the UDP socket is dialed lazily on first use.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	address := strings.TrimSpace(cfg.Address)
	prefix := strings.Trim(strings.TrimSpace(cfg.Prefix), ".")
	if prefix != "" {
		prefix += "."
	}

	return &Client{
		enabled: cfg.Enabled && address != "",
		address: address,
		prefix:  prefix,
		logger:  logger,
	}
}

// Enabled reports whether the client will emit anything.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Count emits a counter increment.
func (c *Client) Count(name string, value int64) {
	c.write(fmt.Sprintf("%s%s:%d|c", c.prefix, name, value))
}

// Timing emits a duration in milliseconds.
func (c *Client) Timing(name string, value time.Duration) {
	c.write(fmt.Sprintf("%s%s:%d|ms", c.prefix, name, value.Milliseconds()))
}

// Close releases the UDP socket if one was dialed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) write(payload string) {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		conn, err := net.Dial("udp", c.address)
		if err != nil {
			c.logger.Warn("statsd dial failed", "address", c.address, "error", err)
			c.enabled = false
			return
		}
		c.conn = conn
	}

	if _, err := c.conn.Write([]byte(payload)); err != nil {
		c.logger.Debug("statsd write failed", "error", err)
	}
}
