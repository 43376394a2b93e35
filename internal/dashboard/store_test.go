package dashboard

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"depthflow/internal/metrics"
)

func TestMetricStoreRing(t *testing.T) {
	store := newMetricStore(2)
	for i := 0; i < 5; i++ {
		store.handle(metrics.Metric{Timestamp: time.Unix(int64(i), 0), Component: "ingest", Name: "books_parsed", Value: i})
	}

	snapshot := store.snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 metrics in snapshot, got %d", len(snapshot))
	}
	// Oldest first, most recent writes retained.
	if snapshot[0].Value != 3 || snapshot[1].Value != 4 {
		t.Fatalf("unexpected metrics retained: %#v", snapshot)
	}
}

func TestMetricStoreLatestPerKey(t *testing.T) {
	store := newMetricStore(10)
	store.handle(metrics.Metric{Component: "ingest", Name: "raw_buffer_length", Value: 5})
	store.handle(metrics.Metric{Component: "cache", Name: "books_fresh", Value: 3})
	store.handle(metrics.Metric{Component: "ingest", Name: "raw_buffer_length", Value: 9})

	latest := store.latestValues()
	if len(latest) != 2 {
		t.Fatalf("expected 2 latest keys, got %d", len(latest))
	}
	if latest["ingest/raw_buffer_length"].Value != 9 {
		t.Errorf("latest ingest value = %v, want 9", latest["ingest/raw_buffer_length"].Value)
	}
	if latest["cache/books_fresh"].Value != 3 {
		t.Errorf("latest cache value = %v, want 3", latest["cache/books_fresh"].Value)
	}
}

func TestLogStorePromotesMarketFields(t *testing.T) {
	store := newLogStore(3)
	entry := logrus.NewEntry(logrus.New())
	entry.Time = time.Unix(10, 0)
	entry.Level = logrus.WarnLevel
	entry.Message = "failed to parse book payload"
	entry.Data = logrus.Fields{
		"component":  "ingest",
		"venue":      "binance",
		"instrument": "perpetual",
		"bytes":      512,
	}

	if err := store.Fire(entry); err != nil {
		t.Fatalf("store.Fire returned error: %v", err)
	}

	snapshot := store.snapshot()
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(snapshot))
	}
	rec := snapshot[0]
	if rec.Component != "ingest" || rec.Venue != "binance" || rec.Instrument != "perpetual" {
		t.Fatalf("promoted fields not set: %#v", rec)
	}
	if _, ok := rec.Fields["venue"]; ok {
		t.Error("venue should be promoted out of the field map")
	}
	if rec.Fields["bytes"] != 512 {
		t.Errorf("bytes field = %v, want 512", rec.Fields["bytes"])
	}
}

func TestLogStoreRingAndClose(t *testing.T) {
	store := newLogStore(2)
	for i := 0; i < 4; i++ {
		entry := logrus.NewEntry(logrus.New())
		entry.Message = "msg"
		entry.Level = logrus.InfoLevel
		entry.Data = logrus.Fields{"index": i}
		if err := store.Fire(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	snapshot := store.snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 entries after wrapping, got %d", len(snapshot))
	}
	if snapshot[0].Fields["index"] != 2 || snapshot[1].Fields["index"] != 3 {
		t.Fatalf("ring kept wrong entries: %#v", snapshot)
	}

	store.close()
	entry := logrus.NewEntry(logrus.New())
	entry.Message = "ignored"
	if err := store.Fire(entry); err != nil {
		t.Fatalf("unexpected error after close: %v", err)
	}
	if len(store.snapshot()) != 2 {
		t.Fatal("store accepted entries after close")
	}
}
