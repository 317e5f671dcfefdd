// Defines the Packet record that models a single fixed-size frame in the
// simulation. Tracks arrival and transmission timestamps in ticks.

package sim

import "fmt"

// PacketState represents the terminal state of a packet. A packet is pending
// until it is either transmitted or dropped; the terminal state is set exactly
// once.
type PacketState string

const (
	StatePending     PacketState = "pending"
	StateTransmitted PacketState = "transmitted"
	StateDropped     PacketState = "dropped"
)

// DropCause distinguishes the recoverable drop reasons in the taxonomy.
type DropCause string

const (
	// DropOverflow means the owning queue was at capacity at enqueue time.
	DropOverflow DropCause = "overflow"
	// DropTimeout means the packet aged past the timeout limit while queued.
	DropTimeout DropCause = "timeout"
	// DropDeadline means the transmission would have completed after the
	// run's time budget.
	DropDeadline DropCause = "deadline"
)

// Packet models one fixed-size frame. Seq is unique within the owning user.
// All timestamps are simulation ticks (microseconds); TxStart and TxEnd are
// zero until the packet transmits, and are set exactly once.
type Packet struct {
	Seq     int
	Arrival int64
	TxStart int64
	TxEnd   int64

	State PacketState
	Cause DropCause // set only when State == StateDropped
}

// Latency returns the queueing-plus-transmission latency in ticks.
// Only meaningful once the packet has transmitted.
func (p *Packet) Latency() int64 {
	return p.TxEnd - p.Arrival
}

func (p Packet) String() string {
	return fmt.Sprintf("Packet: (Seq: %d, State: %s, Arrival: %d)", p.Seq, p.State, p.Arrival)
}
