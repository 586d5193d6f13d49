// Package timeouts defines shared timeout constants used across commands.
// Centralizing these values prevents drift between transports and makes the
// durations discoverable.
package timeouts

import "time"

// DatasetLoad caps the one-shot dataset load at startup.
const DatasetLoad = 30 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// ClientCall caps a single in-process MCP client call made by the query command.
const ClientCall = 10 * time.Second
