package metrics

import "depthflow/logger"

// DropMetric identifies the metric name emitted when a pipeline stage drops a
// message instead of blocking.
type DropMetric string

const (
	// DropMetricBookRaw records raw book payloads dropped before parsing.
	DropMetricBookRaw DropMetric = "book_messages_dropped"
	// DropMetricPartialUpdate records dropped funding/mark/greeks updates.
	DropMetricPartialUpdate DropMetric = "partial_updates_dropped"
	// DropMetricSignal records blockchain signals dropped before processing.
	DropMetricSignal DropMetric = "signals_dropped"
)

// EmitDropMetric logs and emits a metric representing one dropped message;
// call it once per drop. Optional metadata (venue, instrument, stage) is added
// to the metric fields when provided, enabling aggregation per venue and
// stream type.
func EmitDropMetric(log *logger.Log, metric DropMetric, venue, instrument, stage string) {
	fields := logger.Fields{}
	if venue != "" {
		fields["venue"] = venue
	}
	if instrument != "" {
		fields["instrument"] = instrument
	}
	if stage != "" {
		fields["stage"] = stage
	}

	EmitMetric(log, "channel_drops", string(metric), 1, "counter", fields)
}
