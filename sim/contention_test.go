package sim

import (
	"errors"
	"testing"

	"github.com/meenakshi184/wifisim/sim/trace"
)

func contentionConfig(users, packets int) Config {
	cfg := DefaultConfig()
	cfg.Policy = PolicyContention
	cfg.UserCount = users
	cfg.PacketsPerUser = packets
	return cfg
}

func TestContention_SingleUserSinglePacket_LatencyEqualsAirtime(t *testing.T) {
	// GIVEN a single user with one packet and an ample time budget
	cfg := contentionConfig(1, 1)
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	// WHEN the run executes
	snap, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN the packet transmits with zero drops and latency equal to the
	// per-packet airtime at this user's power factor
	perStream := cfg.Resources.ChannelMHz / float64(cfg.Resources.StreamCount)
	rate := cfg.PHY.Rate(perStream, cfg.Power.Factor(s.Users[0].Distance))
	want := cfg.PHY.AirtimeTicks(rate)

	if snap.TransmittedCount != 1 || snap.DroppedCount != 0 {
		t.Fatalf("got %d transmitted, %d dropped, want 1 and 0", snap.TransmittedCount, snap.DroppedCount)
	}
	if snap.MaxLatency != want {
		t.Errorf("MaxLatency: got %d, want %d", snap.MaxLatency, want)
	}
	if snap.AverageLatency != float64(want) {
		t.Errorf("AverageLatency: got %v, want %v", snap.AverageLatency, float64(want))
	}
}

func TestContention_HeavyLoad_DropsExpectedAndAccountingBalances(t *testing.T) {
	// GIVEN 100 users with 10 packets each, 4 streams, and a budget tight
	// enough that the backlog cannot fully drain
	cfg := contentionConfig(100, 10)
	cfg.Seed = 7
	cfg.TimeBudget = 50_000 // 50 ms

	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	// WHEN the run executes
	snap, err := s.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// THEN contention produces drops, but every generated packet reaches
	// exactly one terminal state
	if snap.TransmittedCount == 0 {
		t.Error("TransmittedCount: got 0, want > 0")
	}
	if snap.DroppedCount == 0 {
		t.Error("DroppedCount: got 0, want > 0")
	}
	if got := snap.TransmittedCount + snap.DroppedCount; got != 1000 {
		t.Errorf("transmitted+dropped: got %d, want 1000", got)
	}
}

func TestContention_Determinism_SameSeedSameResults(t *testing.T) {
	// GIVEN two identical configurations with the same seed
	run := func() (*Snapshot, int64) {
		cfg := contentionConfig(100, 10)
		cfg.Seed = 99
		cfg.TimeBudget = 50_000
		s, err := NewSimulator(cfg)
		if err != nil {
			t.Fatalf("NewSimulator: %v", err)
		}
		snap, err := s.Run()
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return snap, s.Metrics.LatencySum
	}

	// WHEN both execute
	snap1, sum1 := run()
	snap2, sum2 := run()

	// THEN counts and latency sums are identical
	if snap1.TransmittedCount != snap2.TransmittedCount {
		t.Errorf("TransmittedCount: got %d and %d", snap1.TransmittedCount, snap2.TransmittedCount)
	}
	if snap1.DroppedCount != snap2.DroppedCount {
		t.Errorf("DroppedCount: got %d and %d", snap1.DroppedCount, snap2.DroppedCount)
	}
	if sum1 != sum2 {
		t.Errorf("LatencySum: got %d and %d", sum1, sum2)
	}
	if snap1.TotalSimulatedTime != snap2.TotalSimulatedTime {
		t.Errorf("TotalSimulatedTime: got %d and %d", snap1.TotalSimulatedTime, snap2.TotalSimulatedTime)
	}
}

func TestContention_BudgetBelowOneAirtime_NoPacketsTransmitted(t *testing.T) {
	// GIVEN a time budget smaller than a single transmission duration
	cfg := contentionConfig(1, 1)
	cfg.TimeBudget = 100 // minimum airtime is ~164 ticks at max power

	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	// WHEN the run executes
	snap, err := s.Run()

	// THEN it yields zero transmissions and the explicit empty-result signal
	if !errors.Is(err, ErrNoPacketsTransmitted) {
		t.Fatalf("error: got %v, want ErrNoPacketsTransmitted", err)
	}
	if snap.TransmittedCount != 0 {
		t.Errorf("TransmittedCount: got %d, want 0", snap.TransmittedCount)
	}
	if snap.DeadlineDrops != 1 {
		t.Errorf("DeadlineDrops: got %d, want 1", snap.DeadlineDrops)
	}
	if snap.Incomplete {
		t.Error("Incomplete: got true, want false (deadline drops are not fatal)")
	}
}

func TestContention_BackoffExhaustsBudget_FatalAbort(t *testing.T) {
	// GIVEN a run whose streams are all held, so the backoff retry loop can
	// never find a free slot
	cfg := contentionConfig(1, 1)
	cfg.TimeBudget = 50_000
	s, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	s.Trace = trace.NewRunTrace(trace.LevelPackets)
	for i := 0; i < s.Streams.Len(); i++ {
		s.Streams.Reserve(i)
	}

	// WHEN the run executes
	snap, err := s.Run()

	// THEN the run aborts fatally with an incomplete snapshot
	if !errors.Is(err, ErrTimeBudgetExceeded) {
		t.Fatalf("error: got %v, want ErrTimeBudgetExceeded", err)
	}
	if !snap.Incomplete {
		t.Error("Incomplete: got false, want true")
	}
	if snap.TransmittedCount != 0 {
		t.Errorf("TransmittedCount: got %d, want 0", snap.TransmittedCount)
	}
	if len(s.Trace.Backoffs) == 0 {
		t.Error("Backoffs: got 0 records, want > 0")
	}
	for i := 1; i < len(s.Trace.Backoffs); i++ {
		if s.Trace.Backoffs[i].Clock < s.Trace.Backoffs[i-1].Clock {
			t.Fatalf("backoff clocks not monotonic at record %d", i)
		}
	}
}
