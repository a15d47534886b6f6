package server

import "time"

const (
	readTimeout = 10 * time.Second
	// A cold cache assembles the roster inside the request, one throttled call per player.
	writeTimeout = 90 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
