// Package lifecycle holds shared start-up and shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as pinging the store or draining the HTTP server.
const DefaultTimeout = 15 * time.Second
