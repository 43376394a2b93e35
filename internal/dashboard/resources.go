package dashboard

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"

	"depthflow/logger"
)

// resourceSnapshot is one sample of host and process utilisation. The
// runtime fields matter most here: goroutine growth points at a stuck
// feed worker and heap growth at a book cache leak long before the host
// numbers move.
type resourceSnapshot struct {
	Timestamp   time.Time `json:"timestamp"`
	CPUPercent  float64   `json:"cpu_percent"`
	MemoryUsed  uint64    `json:"memory_used"`
	MemoryTotal uint64    `json:"memory_total"`
	MemoryPct   float64   `json:"memory_percent"`
	DiskUsed    uint64    `json:"disk_used"`
	DiskTotal   uint64    `json:"disk_total"`
	DiskPct     float64   `json:"disk_percent"`
	Goroutines  int       `json:"goroutines"`
	HeapAlloc   uint64    `json:"heap_alloc"`
	HeapObjects uint64    `json:"heap_objects"`
	GCCycles    uint32    `json:"gc_cycles"`
}

type resourceSampler struct {
	mu       sync.RWMutex
	ring     []resourceSnapshot
	head     int
	count    int
	interval time.Duration
	diskPath string

	cancel  context.CancelFunc
	running atomic.Bool
	wg      sync.WaitGroup
	log     *logger.Log
}

var (
	cpuPercentFn = func(ctx context.Context, interval time.Duration) ([]float64, error) {
		return cpu.PercentWithContext(ctx, interval, false)
	}
	memoryStatsFn = mem.VirtualMemoryWithContext
	diskUsageFn   = disk.UsageWithContext
)

func newResourceSampler(limit int, interval time.Duration, diskPath string, log *logger.Log) *resourceSampler {
	if limit <= 0 {
		limit = 200
	}
	if interval <= 0 {
		interval = time.Second
	}
	if diskPath == "" {
		diskPath = "/"
	}
	return &resourceSampler{
		ring:     make([]resourceSnapshot, limit),
		interval: interval,
		diskPath: diskPath,
		log:      log,
	}
}

func (s *resourceSampler) start(ctx context.Context) {
	if s == nil {
		return
	}
	if s.running.Swap(true) {
		return
	}
	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(childCtx)
	}()
}

func (s *resourceSampler) stop() {
	if s == nil {
		return
	}
	if cancel := s.cancel; cancel != nil {
		cancel()
	}
	s.wg.Wait()
	s.running.Store(false)
}

// snapshot returns the retained samples oldest first.
func (s *resourceSampler) snapshot() []resourceSnapshot {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]resourceSnapshot, 0, s.count)
	start := s.head - s.count
	if start < 0 {
		start += len(s.ring)
	}
	for i := 0; i < s.count; i++ {
		out = append(out, s.ring[(start+i)%len(s.ring)])
	}
	return out
}

func (s *resourceSampler) append(snapshot resourceSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ring[s.head] = snapshot
	s.head = (s.head + 1) % len(s.ring)
	if s.count < len(s.ring) {
		s.count++
	}
}

func (s *resourceSampler) run(ctx context.Context) {
	defer s.running.Store(false)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		// cpuPercentFn blocks for the sampling interval, which also
		// paces the loop.
		snap, ok := s.sample(ctx)
		if ok {
			s.append(snap)
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

func (s *resourceSampler) sample(ctx context.Context) (resourceSnapshot, bool) {
	slog := s.log.WithComponent("resource_sampler")

	cpuSamples, err := cpuPercentFn(ctx, s.interval)
	if err != nil {
		slog.WithError(err).Debug("failed to sample cpu usage")
		return resourceSnapshot{}, false
	}
	memStats, err := memoryStatsFn(ctx)
	if err != nil {
		slog.WithError(err).Debug("failed to sample memory usage")
		return resourceSnapshot{}, false
	}
	diskStats, err := diskUsageFn(ctx, s.diskPath)
	if err != nil {
		slog.WithError(err).Debug("failed to sample disk usage")
		return resourceSnapshot{}, false
	}

	var rt runtime.MemStats
	runtime.ReadMemStats(&rt)

	return resourceSnapshot{
		Timestamp:   time.Now(),
		CPUPercent:  firstSample(cpuSamples),
		MemoryUsed:  memStats.Used,
		MemoryTotal: memStats.Total,
		MemoryPct:   memStats.UsedPercent,
		DiskUsed:    diskStats.Used,
		DiskTotal:   diskStats.Total,
		DiskPct:     diskStats.UsedPercent,
		Goroutines:  runtime.NumGoroutine(),
		HeapAlloc:   rt.HeapAlloc,
		HeapObjects: rt.HeapObjects,
		GCCycles:    rt.NumGC,
	}, true
}

func firstSample(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return samples[0]
}
