// Policy B: contention-backoff-with-power-control over the stream slots of a
// single shared channel. One scheduling step is a pass over all users in
// fixed order; a user that finds no free stream backs off for a random
// duration and retries, which can fatally exhaust the time budget.

package sim

import (
	"fmt"

	"github.com/meenakshi184/wifisim/sim/trace"
)

type contentionPolicy struct{}

func (p *contentionPolicy) name() Policy { return PolicyContention }

func (p *contentionPolicy) step(s *Simulator) (bool, error) {
	if s.Pending() == 0 {
		return false, nil
	}

	for _, user := range s.Users {
		if s.Clock >= s.Config.TimeBudget {
			break
		}
		if user.Queue.IsEmpty() {
			continue
		}

		pkt := user.Queue.Peek()
		s.waitForArrival(pkt)

		// Search for a free stream, backing off while none is. The retry
		// loop is the only fatal path in the simulation: exceeding the
		// budget here aborts the run.
		idx := s.Streams.FindAvailable()
		for idx == NoStream {
			if err := s.backoff(user); err != nil {
				return true, err
			}
			idx = s.Streams.FindAvailable()
		}

		s.Streams.Reserve(idx)
		powerFactor := s.Config.Power.Factor(user.Distance)
		rate := s.Config.PHY.Rate(s.Config.Resources.ChannelMHz/float64(s.Streams.Len()), powerFactor)
		end := s.Clock + s.Config.PHY.AirtimeTicks(rate)

		// A transmission that would finish past the budget is abandoned;
		// the stream is released before the packet is marked dropped.
		if end > s.Config.TimeBudget {
			s.Streams.Release(idx)
			s.drop(user, DropDeadline, idx)
			continue
		}

		s.transmit(user, idx, s.Clock, end)
		s.Clock = end
		s.Streams.Release(idx)
	}

	return s.Pending() > 0, nil
}

// backoff advances the clock by a uniform draw over the configured bound.
// Returns a fatal error if the draw pushes the clock past the time budget.
func (s *Simulator) backoff(u *User) error {
	rng := s.RNG.ForSubsystem(SubsystemBackoff)
	span := s.Config.MaxBackoff - s.Config.MinBackoff
	duration := s.Config.MinBackoff
	if span > 0 {
		duration += rng.Int63n(span + 1)
	}
	s.Trace.RecordBackoff(trace.BackoffRecord{UserID: u.ID, Clock: s.Clock, Duration: duration})
	s.Clock += duration
	if s.Clock > s.Config.TimeBudget {
		return fmt.Errorf("user %d backoff at tick %d: %w", u.ID, s.Clock, ErrTimeBudgetExceeded)
	}
	return nil
}
