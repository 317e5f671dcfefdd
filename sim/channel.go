// Models the shared transmission resources: independent sub-channels for the
// round-robin policy and interchangeable stream slots for the contention
// policy. Occupancy is an explicit reserve/release contract on an indexed
// table; each pool is owned exclusively by one run.

package sim

// NoStream is the sentinel returned by FindAvailable when every stream slot
// is occupied.
const NoStream = -1

// SubChannel is one independently schedulable slice of spectrum with a fixed
// bandwidth and a busy flag.
type SubChannel struct {
	BandwidthMHz float64
	busy         bool
}

// SubChannelPool holds the fixed set of independent sub-channels of a run.
type SubChannelPool struct {
	channels []SubChannel
}

// NewSubChannelPool creates a pool with one free sub-channel per bandwidth,
// in the given order. Iteration order is fixed so the first-free scan is
// reproducible.
func NewSubChannelPool(bandwidthsMHz []float64) *SubChannelPool {
	chans := make([]SubChannel, len(bandwidthsMHz))
	for i, bw := range bandwidthsMHz {
		chans[i] = SubChannel{BandwidthMHz: bw}
	}
	return &SubChannelPool{channels: chans}
}

// Len returns the number of sub-channels.
func (p *SubChannelPool) Len() int {
	return len(p.channels)
}

// Bandwidth returns the bandwidth of sub-channel idx in MHz.
func (p *SubChannelPool) Bandwidth(idx int) float64 {
	return p.channels[idx].BandwidthMHz
}

// IsBusy reports the occupancy of sub-channel idx.
func (p *SubChannelPool) IsBusy(idx int) bool {
	return p.channels[idx].busy
}

// Acquire marks sub-channel idx busy. Returns false if it was already busy;
// at most one in-flight transmission may occupy a resource unit at any
// simulated instant.
func (p *SubChannelPool) Acquire(idx int) bool {
	if p.channels[idx].busy {
		return false
	}
	p.channels[idx].busy = true
	return true
}

// Release marks sub-channel idx free again. Acquire and Release are paired
// within the scheduling step that performs the transmission.
func (p *SubChannelPool) Release(idx int) {
	p.channels[idx].busy = false
}

// StreamChannel is a single frequency channel multiplexing a fixed number of
// interchangeable stream slots (MU-MIMO).
type StreamChannel struct {
	occupied []bool
}

// NewStreamChannel creates a channel with streamCount free slots.
func NewStreamChannel(streamCount int) *StreamChannel {
	return &StreamChannel{occupied: make([]bool, streamCount)}
}

// Len returns the number of stream slots.
func (c *StreamChannel) Len() int {
	return len(c.occupied)
}

// FindAvailable returns the lowest-indexed free stream slot, or NoStream if
// every slot is occupied.
func (c *StreamChannel) FindAvailable() int {
	for i, busy := range c.occupied {
		if !busy {
			return i
		}
	}
	return NoStream
}

// Reserve marks stream idx occupied. Returns false if it was already
// occupied.
func (c *StreamChannel) Reserve(idx int) bool {
	if c.occupied[idx] {
		return false
	}
	c.occupied[idx] = true
	return true
}

// Release frees stream idx. Every successful Reserve is paired with exactly
// one Release within the same scheduling step, even when the transmission is
// abandoned for a deadline drop.
func (c *StreamChannel) Release(idx int) {
	c.occupied[idx] = false
}
