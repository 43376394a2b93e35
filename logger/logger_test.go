package logger

import (
	"os"
	"sync/atomic"
	"testing"
)

func TestWithComponent(t *testing.T) {
	log := Logger()
	entry := log.WithComponent("test")
	if v, ok := entry.Entry.Data["component"]; !ok || v != "test" {
		t.Fatalf("component field missing: %v", entry.Entry.Data)
	}
}

func TestConfigureInvalidLevel(t *testing.T) {
	// Ensure environment variables do not override the provided level
	t.Setenv("LOG_LEVEL", "")

	log := Logger()
	if err := log.Configure("invalid", "json", "stdout", 0); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestConfigureInvalidFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	log := Logger()
	if err := log.Configure("info", "xml", "stdout", 0); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestWithEnv(t *testing.T) {
	os.Setenv("FOO", "bar")
	log := Logger()
	entry := log.WithEnv("FOO")
	if v, ok := entry.Entry.Data["FOO"]; !ok || v != "bar" {
		t.Fatalf("env field not set: %v", entry.Entry.Data)
	}
}

func TestWarnRecordsComponentCounter(t *testing.T) {
	before := atomic.LoadInt64(&warnsFeed)
	Logger().WithComponent("book_feed").Warn("poll failed")
	if atomic.LoadInt64(&warnsFeed) != before+1 {
		t.Fatalf("feed warn counter not incremented")
	}
}

func TestChannelActivityRecorded(t *testing.T) {
	RecordChannelMessage("raw_books", 128)
	RecordChannelMessage("raw_books", 64)

	v, ok := channelActivity.Load("raw_books")
	if !ok {
		t.Fatal("channel stat missing")
	}
	cs := v.(*channelStat)
	if atomic.LoadInt64(&cs.messages) < 2 || atomic.LoadInt64(&cs.bytes) < 192 {
		t.Fatalf("stat not accumulated: %d msgs %d bytes", cs.messages, cs.bytes)
	}
}
