package capability

import (
	"context"
	"time"

	"github.com/probelab/lawspace/internal/cachemanager"
	"github.com/probelab/lawspace/internal/flags"
)

// Service hands out capability checkers, memoized per target type. The
// derivation itself is cheap but suites ask for the same handful of types
// over and over while generating thousands of cases.
type Service struct {
	cache *cachemanager.ReadThroughCache[string, Checker, string]
}

// NewService creates a checker service over the given introspector. Caching
// is skipped entirely when the capability-cache flag is disabled.
func NewService(intro Introspector, flagReg *flags.Registry) *Service {
	derive := func(ctx context.Context, typeName string) (Checker, error) {
		return From(typeName, intro), nil
	}

	skipCache := !flagReg.Enabled(flags.FlagCapabilityCache)
	cache := cachemanager.NewInMemoryCacheManager[string, Checker](
		"capability", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return &Service{
		cache: cachemanager.NewReadThroughCache[string, Checker, string](cache, derive, skipCache),
	}
}

// Checker returns the (possibly cached) checker for a target type.
func (s *Service) Checker(ctx context.Context, typeName string, ttl time.Duration) Checker {
	checker, err := s.cache.Get(ctx, "type:"+typeName, typeName, ttl)
	if err != nil {
		// Derivation never fails; the error path exists only to satisfy
		// the read-through contract.
		return From(typeName, func(string) ([]string, bool) { return nil, false })
	}
	return checker
}
