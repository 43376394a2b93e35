package metrics

import (
	"context"
	"time"

	"depthflow/cache"
	"depthflow/internal/channel"
	"depthflow/logger"
)

// StartCacheStatsMetrics emits book cache population gauges and raw channel
// occupancy every `interval` until the context is cancelled. When interval
// <= 0, a five-second cadence is used.
func StartCacheStatsMetrics(ctx context.Context, books *cache.BookCache, channels *channel.Channels, maxBookAge time.Duration, interval time.Duration) {
	if !IsFeatureEnabled(FeatureCacheStats) {
		return
	}
	if books == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}

	log := logger.GetLogger()
	ticker := time.NewTicker(interval)
	component := "cache_stats"

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				EmitMetric(log, component, "cache_books_populated", books.Size(), "gauge", nil)
				EmitMetric(log, component, "cache_books_valid", books.ValidCount(), "gauge", nil)
				EmitMetric(log, component, "cache_books_fresh", books.FreshCount(maxBookAge), "gauge", nil)

				if channels != nil && IsFeatureEnabled(FeatureChannelSize) {
					stats := channels.GetStats()
					EmitMetric(log, component, "raw_buffer_length", stats.RawLength, "gauge", logger.Fields{
						"buffer":   "raw_books",
						"capacity": stats.RawCap,
					})
					EmitMetric(log, component, "raw_messages_dropped_total", stats.RawDropped, "gauge", logger.Fields{
						"buffer": "raw_books",
					})
				}
			}
		}
	}()
}
