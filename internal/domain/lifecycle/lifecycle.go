// Package lifecycle holds process lifecycle constants shared across layers.
package lifecycle

import "time"

// DefaultTimeout bounds individual startup and shutdown steps.
const DefaultTimeout = 30 * time.Second
