package metrics

import (
	"strings"
	"sync"
)

// Feature names accepted in the metrics.features config list.
const (
	FeatureCacheStats  = "cache_stats"
	FeatureChannelSize = "channel_size"
	FeatureResources   = "resources"
)

var (
	featuresMu      sync.RWMutex
	enabledFeatures map[string]bool
)

// SetEnabledFeatures selects which periodic metric emitters run. An empty or
// nil list enables everything.
func SetEnabledFeatures(names []string) {
	featuresMu.Lock()
	defer featuresMu.Unlock()

	if len(names) == 0 {
		enabledFeatures = nil
		return
	}

	enabledFeatures = make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			enabledFeatures[name] = true
		}
	}
}

// IsFeatureEnabled reports whether a periodic metric emitter is selected.
func IsFeatureEnabled(name string) bool {
	featuresMu.RLock()
	defer featuresMu.RUnlock()

	if enabledFeatures == nil {
		return true
	}
	return enabledFeatures[strings.ToLower(name)]
}
