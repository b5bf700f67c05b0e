package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID returns prefix followed by a short random suffix, e.g. U3F9A1C2E.
func newID(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + suffix[:8]
}

func today() string {
	return time.Now().Format("2006-01-02")
}
