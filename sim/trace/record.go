// Package trace provides per-packet event recording for medium-access
// analysis. This package has no dependencies on sim/ — it stores pure data
// types.
package trace

// NoResource marks a record whose event involved no resource unit.
const NoResource = -1

// Outcome is the terminal state of a packet as seen by the scheduler.
type Outcome string

const (
	OutcomeTransmitted Outcome = "transmitted"
	OutcomeDropped     Outcome = "dropped"
)

// PacketRecord captures one terminal packet event: which user transmitted
// (or lost) which frame, on which resource, and when. Resource is the
// sub-channel or stream index, -1 when no resource was involved.
type PacketRecord struct {
	UserID   int
	Seq      int
	Resource int
	Start    int64 // ticks; zero for drops
	End      int64 // ticks; zero for drops
	Outcome  Outcome
	Cause    string // drop cause, empty for transmissions
}

// BackoffRecord captures one backoff wait drawn while searching for a free
// resource.
type BackoffRecord struct {
	UserID   int
	Clock    int64
	Duration int64 // ticks
}
