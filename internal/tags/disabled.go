package tags

import (
	"sync"

	"github.com/probelab/lawspace/internal/log"
)

// The process-wide disabled set mirrors the feature-flag pattern: loaded
// once from configuration at startup, read-only afterwards.
var globalDisabled struct {
	mu   sync.RWMutex
	tags map[Tag]bool
}

// SetDisabled replaces the process-wide disabled set. Called once during
// startup from configuration; not intended for concurrent use with readers
// mid-run.
func SetDisabled(disabled []Tag) {
	m := make(map[Tag]bool, len(disabled))
	for _, t := range disabled {
		m[t] = true
	}

	globalDisabled.mu.Lock()
	globalDisabled.tags = m
	globalDisabled.mu.Unlock()

	log.Debug(log.CatTags, "Disabled tags initialized", "count", len(m))
}

// Disabled reports whether the tag is globally disabled.
func Disabled(t Tag) bool {
	globalDisabled.mu.RLock()
	defer globalDisabled.mu.RUnlock()
	return globalDisabled.tags[t]
}
