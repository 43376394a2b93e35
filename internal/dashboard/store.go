package dashboard

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"depthflow/internal/metrics"
)

// metricStore keeps the most recent emitted metrics in a fixed ring plus
// the latest sample per component/name pair. Safe for concurrent use.
type metricStore struct {
	mu     sync.RWMutex
	ring   []metrics.Metric
	head   int
	count  int
	latest map[string]metrics.Metric
}

func newMetricStore(limit int) *metricStore {
	if limit <= 0 {
		limit = 200
	}
	return &metricStore{
		ring:   make([]metrics.Metric, limit),
		latest: make(map[string]metrics.Metric),
	}
}

func (s *metricStore) handle(metric metrics.Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ring[s.head] = metric
	s.head = (s.head + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
	s.latest[metric.Component+"/"+metric.Name] = metric
}

// snapshot returns the retained metrics oldest first.
func (s *metricStore) snapshot() []metrics.Metric {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]metrics.Metric, 0, s.count)
	start := s.head - s.count
	if start < 0 {
		start += len(s.ring)
	}
	for i := 0; i < s.count; i++ {
		out = append(out, s.ring[(start+i)%len(s.ring)])
	}
	return out
}

// latestValues returns the most recent sample per component/name key, for
// the dashboard's gauge row.
func (s *metricStore) latestValues() map[string]metrics.Metric {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]metrics.Metric, len(s.latest))
	for k, v := range s.latest {
		out[k] = v
	}
	return out
}

// logRecord is one captured log line as rendered by the dashboard. Venue
// and instrument are promoted out of the field map because nearly every
// feed and ingest line carries them and the UI groups on them.
type logRecord struct {
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Component  string                 `json:"component,omitempty"`
	Venue      string                 `json:"venue,omitempty"`
	Instrument string                 `json:"instrument,omitempty"`
	Message    string                 `json:"message"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// logStore is a logrus hook retaining the most recent log lines in a
// fixed ring. close() detaches it logically; logrus has no unhook.
type logStore struct {
	mu      sync.RWMutex
	ring    []logRecord
	head    int
	count   int
	enabled atomic.Bool
}

func newLogStore(limit int) *logStore {
	if limit <= 0 {
		limit = 200
	}
	ls := &logStore{ring: make([]logRecord, limit)}
	ls.enabled.Store(true)
	return ls
}

func (s *logStore) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (s *logStore) Fire(entry *logrus.Entry) error {
	if !s.enabled.Load() {
		return nil
	}

	record := logRecord{
		Timestamp: entry.Time,
		Level:     entry.Level.String(),
		Message:   entry.Message,
	}

	promoted := map[string]*string{
		"component":  &record.Component,
		"venue":      &record.Venue,
		"instrument": &record.Instrument,
	}
	for key, dst := range promoted {
		if v, ok := entry.Data[key].(string); ok {
			*dst = v
		}
	}

	for k, v := range entry.Data {
		if _, ok := promoted[k]; ok {
			continue
		}
		if record.Fields == nil {
			record.Fields = make(map[string]interface{})
		}
		switch val := v.(type) {
		case error:
			record.Fields[k] = val.Error()
		case fmt.Stringer:
			record.Fields[k] = val.String()
		default:
			record.Fields[k] = val
		}
	}

	s.mu.Lock()
	s.ring[s.head] = record
	s.head = (s.head + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
	s.mu.Unlock()
	return nil
}

// snapshot returns the retained lines oldest first.
func (s *logStore) snapshot() []logRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]logRecord, 0, s.count)
	start := s.head - s.count
	if start < 0 {
		start += len(s.ring)
	}
	for i := 0; i < s.count; i++ {
		out = append(out, s.ring[(start+i)%len(s.ring)])
	}
	return out
}

func (s *logStore) close() {
	s.enabled.Store(false)
}
