// Tracks run-wide packet statistics: transmitted/dropped counts, latency
// accumulation, and the derived throughput and latency summaries.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Metrics accumulates statistics over one simulation run. Each run owns its
// Metrics exclusively; nothing is shared across scenarios.
type Metrics struct {
	TransmittedCount int
	TimeoutDrops     int
	DeadlineDrops    int
	OverflowDrops    int
	GeneratedCount   int

	LatencySum int64 // ticks, across transmitted packets
	MaxLatency int64 // ticks

	// latencies holds one sample per transmitted packet for the
	// distribution summary.
	latencies []int64
}

// NewMetrics creates an empty Metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordTransmit accounts for one successfully transmitted packet.
func (m *Metrics) RecordTransmit(latency int64) {
	m.TransmittedCount++
	m.LatencySum += latency
	if latency > m.MaxLatency {
		m.MaxLatency = latency
	}
	m.latencies = append(m.latencies, latency)
}

// RecordDrop accounts for one dropped packet by cause.
func (m *Metrics) RecordDrop(cause DropCause) {
	switch cause {
	case DropTimeout:
		m.TimeoutDrops++
	case DropDeadline:
		m.DeadlineDrops++
	case DropOverflow:
		m.OverflowDrops++
	}
}

// DroppedCount returns the scheduler-side drops (timeout plus deadline).
// Overflow drops happen at enqueue time and are reported separately.
func (m *Metrics) DroppedCount() int {
	return m.TimeoutDrops + m.DeadlineDrops
}

// Snapshot is the read-only result of a run, handed to the scenario runner.
type Snapshot struct {
	TransmittedCount   int
	DroppedCount       int // timeout + deadline drops
	TimeoutDrops       int
	DeadlineDrops      int
	OverflowDrops      int
	TotalSimulatedTime int64   // ticks
	AverageLatency     float64 // ticks
	MaxLatency         int64   // ticks
	Throughput         float64 // bits per second
	Incomplete         bool    // true after a fatal time-budget abort
}

// Snapshot derives the read-only result from the accumulated counters and
// the final clock value. A zero-transmission run yields zero averages; the
// caller distinguishes that case via ErrNoPacketsTransmitted.
func (m *Metrics) Snapshot(finalClock int64, packetSizeBits int, incomplete bool) *Snapshot {
	s := &Snapshot{
		TransmittedCount:   m.TransmittedCount,
		DroppedCount:       m.DroppedCount(),
		TimeoutDrops:       m.TimeoutDrops,
		DeadlineDrops:      m.DeadlineDrops,
		OverflowDrops:      m.OverflowDrops,
		TotalSimulatedTime: finalClock,
		MaxLatency:         m.MaxLatency,
		Incomplete:         incomplete,
	}
	if m.TransmittedCount > 0 {
		s.AverageLatency = float64(m.LatencySum) / float64(m.TransmittedCount)
	}
	if finalClock > 0 {
		elapsedSeconds := float64(finalClock) / float64(TicksPerSecond)
		s.Throughput = float64(m.TransmittedCount*packetSizeBits) / elapsedSeconds
	}
	return s
}

// LatencySummary describes the latency distribution of transmitted packets,
// in milliseconds.
type LatencySummary struct {
	MeanMs float64
	P50Ms  float64
	P90Ms  float64
	P99Ms  float64
	MaxMs  float64
}

// Summary computes the latency distribution over all transmitted packets.
// Safe on a zero-transmission run (returns zero-value fields).
func (m *Metrics) Summary() LatencySummary {
	if len(m.latencies) == 0 {
		return LatencySummary{}
	}
	samples := make([]float64, len(m.latencies))
	for i, l := range m.latencies {
		samples[i] = float64(l) / 1000 // ticks -> ms
	}
	sort.Float64s(samples)
	return LatencySummary{
		MeanMs: stat.Mean(samples, nil),
		P50Ms:  stat.Quantile(0.50, stat.Empirical, samples, nil),
		P90Ms:  stat.Quantile(0.90, stat.Empirical, samples, nil),
		P99Ms:  stat.Quantile(0.99, stat.Empirical, samples, nil),
		MaxMs:  samples[len(samples)-1],
	}
}

// Print displays a snapshot at the end of a run.
func (s *Snapshot) Print(userCount int) {
	fmt.Printf("Results for %d Users:\n", userCount)
	if s.Incomplete {
		fmt.Println("(incomplete run: time budget exhausted during backoff)")
	}
	fmt.Printf("Throughput          : %.2f Mbps\n", s.Throughput/1e6)
	fmt.Printf("Average Latency     : %.6f ms\n", s.AverageLatency/1000)
	fmt.Printf("Maximum Latency     : %.6f ms\n", float64(s.MaxLatency)/1000)
	fmt.Printf("Transmitted Packets : %d\n", s.TransmittedCount)
	fmt.Printf("Dropped Packets     : %d (timeout %d, deadline %d, overflow %d)\n",
		s.DroppedCount, s.TimeoutDrops, s.DeadlineDrops, s.OverflowDrops)
	fmt.Printf("Simulated Time      : %.3f s\n", float64(s.TotalSimulatedTime)/float64(TicksPerSecond))
	fmt.Println("-----------------------------------")
}
