// Package feed pulls order books and derivative state from the venues and
// hands raw payloads to the ingest workers. Every feed follows the same
// lifecycle: Start(ctx) spawns one worker per instrument, Stop waits for
// them to drain.
package feed

import (
	"context"
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"depthflow/config"
)

// Feed is one venue data source with a start/stop lifecycle.
type Feed interface {
	Name() string
	Start(ctx context.Context) error
	Stop()
}

// newTransport builds the pooled transport shared by the REST feeds,
// optionally binding outbound connections to a local IP.
func newTransport(cfg config.FeedConfig) *http.Transport {
	transport := &http.Transport{
		MaxIdleConns:        cfg.ConnectionPool.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.ConnectionPool.MaxIdleConns,
		MaxConnsPerHost:     cfg.ConnectionPool.MaxConnsPerHost,
		IdleConnTimeout:     cfg.ConnectionPool.IdleConnTimeout,
		DisableCompression:  false,
	}
	if cfg.LocalIP != "" {
		if ip := net.ParseIP(cfg.LocalIP); ip != nil {
			dialer := &net.Dialer{LocalAddr: &net.TCPAddr{IP: ip}}
			transport.DialContext = dialer.DialContext
		}
	}
	return transport
}

func newHTTPClient(cfg config.FeedConfig) *http.Client {
	return &http.Client{Transport: newTransport(cfg), Timeout: cfg.Timeout}
}

func newLimiter(cfg config.RateLimitConfig) *rate.Limiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.BurstSize
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}
