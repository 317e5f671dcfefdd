// Pure power/rate model. Converts a bandwidth allocation and a user's
// transmit-power factor into an effective bit rate and a per-packet airtime.

package sim

import "math"

// PHYProfile groups the fixed physical-layer parameters of a run.
// The defaults model 256-QAM at coding rate 5/6 with 1 KB frames.
type PHYProfile struct {
	BitsPerSymbol  float64 // log2(constellation size), 8 for 256-QAM
	CodingRate     float64 // FEC coding rate, 5/6
	PacketSizeBits int     // frame size in bits
}

// PowerModel maps a user's distance from the access point onto a multiplier
// applied to its transmission rate. Distances are clamped to [0, MaxDistance].
type PowerModel struct {
	MinPower    float64 // multiplier at MaxDistance
	MaxPower    float64 // multiplier at distance zero
	MaxDistance float64 // meters
}

// Factor returns the power factor for a user at the given distance.
func (pm PowerModel) Factor(distance float64) float64 {
	d := math.Min(math.Max(distance, 0), pm.MaxDistance)
	return pm.MaxPower - (d/pm.MaxDistance)*(pm.MaxPower-pm.MinPower)
}

// Rate returns the effective bit rate in bits per second for a bandwidth
// share in MHz and a power factor. Pure and stateless: identical inputs
// always produce identical output.
func (phy PHYProfile) Rate(bandwidthMHz, powerFactor float64) float64 {
	return bandwidthMHz * 1e6 * phy.BitsPerSymbol * phy.CodingRate * powerFactor
}

// AirtimeTicks returns the transmission duration of one packet at the given
// rate, in whole ticks. Durations always consume at least one tick so the
// clock cannot stall on a zero-length transmission.
func (phy PHYProfile) AirtimeTicks(rate float64) int64 {
	ticks := int64(float64(phy.PacketSizeBits) / rate * float64(TicksPerSecond))
	if ticks < 1 {
		return 1
	}
	return ticks
}
