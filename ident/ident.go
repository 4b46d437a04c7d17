// Package ident generates user, session and event identifiers.
package ident

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a process-wide-unique identifier with the given prefix,
// combining the current time with a random suffix. It never fails.
func New(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
