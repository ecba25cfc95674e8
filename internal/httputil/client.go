// Package httputil builds the HTTP clients shared by the provider
// adapters and the key validation service.
package httputil

import (
	"net"
	"net/http"
	"time"
)

type ClientConfig struct {
	Timeout               time.Duration
	DialTimeout           time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	IdleConnTimeout       time.Duration
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
}

func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:               120 * time.Second,
		DialTimeout:           10 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
	}
}

func NewClient(cfg ClientConfig) *http.Client {
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: newTransport(cfg),
	}
}

// NewStreamingClient returns a client without a whole-request timeout:
// an SSE stream may legitimately stay open for minutes, so the only
// bounds are on connecting and on the upstream producing its response
// headers. Mid-stream stalls are cut by the caller's context.
func NewStreamingClient(cfg ClientConfig) *http.Client {
	return &http.Client{
		Transport: newTransport(cfg),
	}
}

func newTransport(cfg ClientConfig) *http.Transport {
	return &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   cfg.TLSHandshakeTimeout,
		ResponseHeaderTimeout: cfg.ResponseHeaderTimeout,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		ForceAttemptHTTP2:     true,
	}
}

func DefaultClient() *http.Client {
	return NewClient(DefaultConfig())
}

func DefaultStreamingClient() *http.Client {
	return NewStreamingClient(DefaultConfig())
}
