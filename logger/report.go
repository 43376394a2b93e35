package logger

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"
)

type channelStat struct {
	messages int64
	bytes    int64
}

var (
	errorsFeed      int64
	errorsEngine    int64
	warnsFeed       int64
	warnsEngine     int64
	bookUpdates     int64
	partialUpdates  int64
	signalsSeen     int64
	parseFailures   int64
	channelActivity sync.Map // map[string]*channelStat
)

func recordWarn(component string) {
	if strings.Contains(component, "feed") || strings.Contains(component, "stream") || strings.Contains(component, "ingest") {
		atomic.AddInt64(&warnsFeed, 1)
	} else if strings.Contains(component, "engine") || strings.Contains(component, "signal") {
		atomic.AddInt64(&warnsEngine, 1)
	}
}

func recordError(component string) {
	if strings.Contains(component, "feed") || strings.Contains(component, "stream") || strings.Contains(component, "ingest") {
		atomic.AddInt64(&errorsFeed, 1)
	} else if strings.Contains(component, "engine") || strings.Contains(component, "signal") {
		atomic.AddInt64(&errorsEngine, 1)
	}
}

// IncrementBookUpdate counts one order book written to the cache.
func IncrementBookUpdate(size int) {
	atomic.AddInt64(&bookUpdates, 1)
	recordChannel("book_updates", size)
}

// IncrementPartialUpdate counts one funding/mark/greeks write.
func IncrementPartialUpdate() {
	atomic.AddInt64(&partialUpdates, 1)
}

// IncrementSignal counts one blockchain signal handed to the engine.
func IncrementSignal() {
	atomic.AddInt64(&signalsSeen, 1)
}

// IncrementParseFailure counts one raw payload the parsers rejected.
func IncrementParseFailure() {
	atomic.AddInt64(&parseFailures, 1)
}

func RecordChannelMessage(name string, size int) {
	recordChannel(name, size)
}

func recordChannel(name string, size int) {
	v, _ := channelActivity.LoadOrStore(name, &channelStat{})
	cs := v.(*channelStat)
	atomic.AddInt64(&cs.messages, 1)
	atomic.AddInt64(&cs.bytes, int64(size))
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(log)
			}
		}
	}()
}

// StartReport begins periodic logging of system and pipeline statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(log *Log) {
	cpuPercent, _ := cpu.Percent(0, false)
	memStats, _ := mem.VirtualMemory()
	diskStats, _ := disk.Usage("/")
	netStats, _ := gnet.IOCounters(false)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	channelData := map[string]map[string]int64{}
	channelActivity.Range(func(k, v any) bool {
		name := k.(string)
		cs := v.(*channelStat)
		channelData[name] = map[string]int64{
			"messages": atomic.LoadInt64(&cs.messages),
			"bytes":    atomic.LoadInt64(&cs.bytes),
		}
		return true
	})

	cpuPct := 0.0
	if len(cpuPercent) > 0 {
		cpuPct = cpuPercent[0]
	}

	bytesSent := uint64(0)
	bytesRecv := uint64(0)
	if len(netStats) > 0 {
		bytesSent = netStats[0].BytesSent
		bytesRecv = netStats[0].BytesRecv
	}

	fields := Fields{
		"errors_feed":       atomic.LoadInt64(&errorsFeed),
		"errors_engine":     atomic.LoadInt64(&errorsEngine),
		"warns_feed":        atomic.LoadInt64(&warnsFeed),
		"warns_engine":      atomic.LoadInt64(&warnsEngine),
		"book_updates":      atomic.LoadInt64(&bookUpdates),
		"partial_updates":   atomic.LoadInt64(&partialUpdates),
		"signals_seen":      atomic.LoadInt64(&signalsSeen),
		"parse_failures":    atomic.LoadInt64(&parseFailures),
		"goroutines":        runtime.NumGoroutine(),
		"heap_alloc_mb":     int64(ms.HeapAlloc) / 1024 / 1024,
		"gc_cycles":         int64(ms.NumGC),
		"cpu_percent":       cpuPct,
		"memory_mb":         int64(memStats.Used) / 1024 / 1024,
		"disk_mb":           int64(diskStats.Used) / 1024 / 1024,
		"channels":          channelData,
		"net_bytes_sent":    int64(bytesSent),
		"net_bytes_recv":    int64(bytesRecv),
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")
}
