// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and start-up pings.
const DefaultTimeout = 10 * time.Second
