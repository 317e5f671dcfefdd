// sim/simulator.go
package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/meenakshi184/wifisim/sim/trace"
)

var (
	// ErrNoPacketsTransmitted signals a run that completed without a single
	// successful transmission. Distinct from a run that completes with some
	// drops.
	ErrNoPacketsTransmitted = errors.New("no packets transmitted")

	// ErrTimeBudgetExceeded signals a fatal abort: backoff retries pushed
	// the clock past the time budget while still searching for a free
	// resource. The run terminates early with an incomplete snapshot.
	ErrTimeBudgetExceeded = errors.New("time budget exceeded while waiting for a free resource")
)

// accessPolicy is one medium-access strategy. step executes one scheduling
// pass over the shared resources, advancing the simulator's clock and
// accounting for every terminal packet event it causes. It reports whether
// pending packets remain; a non-nil error is fatal to the run.
type accessPolicy interface {
	name() Policy
	step(s *Simulator) (pending bool, err error)
}

// Simulator is the core object holding simulation time, users, the resource
// pool, and the accumulated metrics of one run. A Simulator is single-use:
// construct with NewSimulator, call Run once.
type Simulator struct {
	Config  Config
	Clock   int64
	Users   []*User
	Metrics *Metrics
	RNG     *PartitionedRNG

	// Trace is optional; nil disables packet tracing.
	Trace *trace.RunTrace

	// SubChannels is populated for the round-robin policy, Streams for the
	// contention policy. The CSMA policy needs neither pool.
	SubChannels *SubChannelPool
	Streams     *StreamChannel

	// rrPointer is the shared rotating cursor of the round-robin policy.
	rrPointer int
	pending   int
	policy    accessPolicy
}

// NewSimulator constructs a run from the given configuration: users are
// created with seeded distances and their packet bursts are pre-generated.
// Implements the configure() operation of the external interface.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Simulator{
		Config:  cfg,
		Metrics: NewMetrics(),
		RNG:     NewPartitionedRNG(cfg.Seed),
	}

	placement := s.RNG.ForSubsystem(SubsystemPlacement)
	s.Users = make([]*User, cfg.UserCount)
	for i := range s.Users {
		distance := placement.Float64() * cfg.Power.MaxDistance
		s.Users[i] = NewUser(i, distance, cfg.QueueCapacity)
		s.Users[i].GenerateBurst(cfg.PacketsPerUser, 0, cfg.ArrivalSpacing)
		s.Metrics.GeneratedCount += s.Users[i].Queue.Generated()
		s.Metrics.OverflowDrops += s.Users[i].Queue.OverflowDrops
		s.pending += s.Users[i].Queue.Len()
	}

	switch cfg.Policy {
	case PolicyRoundRobin:
		s.SubChannels = NewSubChannelPool(cfg.Resources.SubChannelMHz)
		s.policy = &roundRobinPolicy{}
	case PolicyContention:
		s.Streams = NewStreamChannel(cfg.Resources.StreamCount)
		s.policy = &contentionPolicy{}
	case PolicyCSMA:
		s.policy = &csmaPolicy{}
	}

	return s, nil
}

// Run executes the simulation to completion or fatal abort. It always
// returns a snapshot; the error is nil for a normal run,
// ErrNoPacketsTransmitted for an empty result, or wraps
// ErrTimeBudgetExceeded after a fatal abort (snapshot flagged incomplete).
func (s *Simulator) Run() (*Snapshot, error) {
	logrus.Infof("starting %s run: %d users, %d packets/user, seed %d",
		s.policy.name(), s.Config.UserCount, s.Config.PacketsPerUser, s.Config.Seed)

	var fatal error
	for {
		pending, err := s.policy.step(s)
		if err != nil {
			fatal = err
			break
		}
		if !pending {
			break
		}
		if s.Clock >= s.Config.TimeBudget {
			// Budget reached with packets still queued: none of them
			// can complete in time, so they terminate as deadline
			// drops and the accounting stays balanced.
			s.dropAllPending(DropDeadline)
			break
		}
	}

	incomplete := fatal != nil
	snap := s.Metrics.Snapshot(s.Clock, s.Config.PHY.PacketSizeBits, incomplete)
	logrus.Infof("[tick %d] run ended: %d transmitted, %d dropped",
		s.Clock, snap.TransmittedCount, snap.DroppedCount)

	if fatal != nil {
		return snap, fatal
	}
	if snap.TransmittedCount == 0 {
		return snap, ErrNoPacketsTransmitted
	}
	return snap, nil
}

// transmit stamps the packet's transmission window, pops it from the user's
// queue, and accounts for the completed transmission.
func (s *Simulator) transmit(u *User, resource int, start, end int64) {
	pkt := u.Queue.Dequeue()
	pkt.TxStart = start
	pkt.TxEnd = end
	pkt.State = StateTransmitted
	s.pending--
	s.Metrics.RecordTransmit(pkt.Latency())
	s.Trace.RecordPacket(trace.PacketRecord{
		UserID:   u.ID,
		Seq:      pkt.Seq,
		Resource: resource,
		Start:    start,
		End:      end,
		Outcome:  trace.OutcomeTransmitted,
	})
	logrus.Debugf("[tick %d] user %d seq %d transmitted on resource %d", end, u.ID, pkt.Seq, resource)
}

// drop pops the user's head packet and records its terminal drop state.
func (s *Simulator) drop(u *User, cause DropCause, resource int) {
	pkt := u.Queue.Dequeue()
	pkt.State = StateDropped
	pkt.Cause = cause
	s.pending--
	s.Metrics.RecordDrop(cause)
	s.Trace.RecordPacket(trace.PacketRecord{
		UserID:   u.ID,
		Seq:      pkt.Seq,
		Resource: resource,
		Outcome:  trace.OutcomeDropped,
		Cause:    string(cause),
	})
	logrus.Debugf("[tick %d] user %d seq %d dropped (%s)", s.Clock, u.ID, pkt.Seq, cause)
}

// dropAllPending terminates every still-queued packet with the given cause.
func (s *Simulator) dropAllPending(cause DropCause) {
	for _, u := range s.Users {
		for !u.Queue.IsEmpty() {
			s.drop(u, cause, trace.NoResource)
		}
	}
}

// waitForArrival advances the clock to the packet's arrival time when the
// clock is earlier. An arrival in the future is a wait, never an error.
func (s *Simulator) waitForArrival(pkt *Packet) {
	if s.Clock < pkt.Arrival {
		s.Clock = pkt.Arrival
	}
}

// Pending returns the number of packets still queued across all users.
func (s *Simulator) Pending() int {
	return s.pending
}
