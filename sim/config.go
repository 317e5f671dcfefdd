package sim

import "fmt"

// TicksPerSecond fixes the tick resolution: one tick is one microsecond.
const TicksPerSecond = 1_000_000

// Policy selects the medium-access strategy of a run.
type Policy string

const (
	// PolicyRoundRobin is round-robin-with-timeout over independent
	// sub-channels (OFDMA style).
	PolicyRoundRobin Policy = "round-robin"
	// PolicyContention is contention-backoff-with-power-control over the
	// streams of a single shared channel (MU-MIMO style).
	PolicyContention Policy = "contention"
	// PolicyCSMA is probabilistic carrier sensing on a single full-rate
	// channel.
	PolicyCSMA Policy = "csma"
)

// validPolicies maps accepted policy strings.
var validPolicies = map[Policy]bool{
	PolicyRoundRobin: true,
	PolicyContention: true,
	PolicyCSMA:       true,
}

// IsValidPolicy returns true if the given string names a known policy.
func IsValidPolicy(p string) bool {
	return validPolicies[Policy(p)]
}

// ResourceConfig describes the shared transmission resources of a run.
// SubChannelMHz applies to the round-robin policy; ChannelMHz and StreamCount
// apply to the contention and CSMA policies.
type ResourceConfig struct {
	SubChannelMHz []float64 // bandwidth per independent sub-channel
	ChannelMHz    float64   // total bandwidth of the single shared channel
	StreamCount   int       // parallel stream slots on the shared channel
}

// Config groups all parameters of a single simulation run.
type Config struct {
	UserCount      int
	PacketsPerUser int
	Policy         Policy
	Seed           int64
	TimeBudget     int64 // ticks; the run never advances past this
	QueueCapacity  int   // per-user pending packet bound
	ArrivalSpacing int64 // ticks between consecutive packets of one user
	TimeoutLimit   int64 // ticks; round-robin policy drops older head packets
	MinBackoff     int64 // ticks; lower bound of a contention backoff draw
	MaxBackoff     int64 // ticks; upper bound of a contention backoff draw

	PHY       PHYProfile
	Power     PowerModel
	Resources ResourceConfig
}

// DefaultConfig returns a Config carrying the reference 802.11 parameters:
// 1 KB frames, 256-QAM rate 5/6, {2,4,10} MHz sub-channels, a 20 MHz shared
// channel with 4 streams, 1-10 ms backoff, 1 s timeout, 5000 s budget.
func DefaultConfig() Config {
	return Config{
		UserCount:      1,
		PacketsPerUser: 10,
		Policy:         PolicyRoundRobin,
		Seed:           1,
		TimeBudget:     5000 * TicksPerSecond,
		QueueCapacity:  50,
		ArrivalSpacing: TicksPerSecond / 100, // 0.01 s
		TimeoutLimit:   1 * TicksPerSecond,
		MinBackoff:     TicksPerSecond / 1000,      // 1 ms
		MaxBackoff:     10 * TicksPerSecond / 1000, // 10 ms
		PHY: PHYProfile{
			BitsPerSymbol:  8,
			CodingRate:     5.0 / 6.0,
			PacketSizeBits: 1024 * 8,
		},
		Power: PowerModel{
			MinPower:    0.5,
			MaxPower:    1.5,
			MaxDistance: 1000.0,
		},
		Resources: ResourceConfig{
			SubChannelMHz: []float64{2.0, 4.0, 10.0},
			ChannelMHz:    20.0,
			StreamCount:   4,
		},
	}
}

// Validate checks that the configuration describes a runnable simulation.
func (c Config) Validate() error {
	if c.UserCount <= 0 {
		return fmt.Errorf("user count must be positive, got %d", c.UserCount)
	}
	if c.PacketsPerUser <= 0 {
		return fmt.Errorf("packets per user must be positive, got %d", c.PacketsPerUser)
	}
	if !validPolicies[c.Policy] {
		return fmt.Errorf("unknown policy %q", c.Policy)
	}
	if c.TimeBudget <= 0 {
		return fmt.Errorf("time budget must be positive, got %d", c.TimeBudget)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity must be positive, got %d", c.QueueCapacity)
	}
	if c.ArrivalSpacing < 0 {
		return fmt.Errorf("arrival spacing must be non-negative, got %d", c.ArrivalSpacing)
	}
	if c.PHY.PacketSizeBits <= 0 {
		return fmt.Errorf("packet size must be positive, got %d", c.PHY.PacketSizeBits)
	}
	if c.PHY.BitsPerSymbol <= 0 || c.PHY.CodingRate <= 0 {
		return fmt.Errorf("modulation parameters must be positive")
	}
	switch c.Policy {
	case PolicyRoundRobin:
		if len(c.Resources.SubChannelMHz) == 0 {
			return fmt.Errorf("round-robin policy requires at least one sub-channel")
		}
		for i, bw := range c.Resources.SubChannelMHz {
			if bw <= 0 {
				return fmt.Errorf("sub-channel %d bandwidth must be positive, got %v", i, bw)
			}
		}
		if c.TimeoutLimit <= 0 {
			return fmt.Errorf("timeout limit must be positive, got %d", c.TimeoutLimit)
		}
	case PolicyContention:
		if c.Resources.StreamCount <= 0 {
			return fmt.Errorf("contention policy requires at least one stream")
		}
		fallthrough
	case PolicyCSMA:
		if c.Resources.ChannelMHz <= 0 {
			return fmt.Errorf("channel bandwidth must be positive, got %v", c.Resources.ChannelMHz)
		}
		if c.MinBackoff < 0 || c.MaxBackoff < c.MinBackoff {
			return fmt.Errorf("backoff bounds [%d, %d] are invalid", c.MinBackoff, c.MaxBackoff)
		}
		if pm := c.Power; pm.MaxDistance <= 0 || pm.MaxPower < pm.MinPower || pm.MinPower <= 0 {
			return fmt.Errorf("power model parameters are invalid: %+v", pm)
		}
	}
	return nil
}
