// Policy A: round-robin-with-timeout over independent sub-channels.
// One scheduling step is a full pass over the sub-channel table; a shared
// rotating pointer decides which user is considered for each free channel.

package sim

// roundRobinPolicy drains user queues against the sub-channel pool. The
// pointer advances after every attempt, including skips of users with empty
// queues; it stays put when a timed-out head packet is dropped, so the same
// user's next packet is considered first.
type roundRobinPolicy struct{}

func (p *roundRobinPolicy) name() Policy { return PolicyRoundRobin }

func (p *roundRobinPolicy) step(s *Simulator) (bool, error) {
	if s.Pending() == 0 {
		return false, nil
	}

	for idx := 0; idx < s.SubChannels.Len(); idx++ {
		if s.Clock >= s.Config.TimeBudget {
			break
		}
		if s.SubChannels.IsBusy(idx) {
			continue
		}

		// SELECT: next user with a pending packet, skipping empty queues.
		user := p.nextUser(s)
		if user == nil {
			return false, nil
		}

		// WAIT-FOR-ARRIVAL
		pkt := user.Queue.Peek()
		s.waitForArrival(pkt)

		// CHECK-TIMEOUT: aged-out head packets drop without transmitting
		// and the pointer stays on this user.
		if s.Clock-pkt.Arrival > s.Config.TimeoutLimit {
			s.drop(user, DropTimeout, idx)
			continue
		}

		// TRANSMIT: the sub-channel is held for exactly the airtime; the
		// clock advances to completion before it is released.
		s.SubChannels.Acquire(idx)
		rate := s.Config.PHY.Rate(s.SubChannels.Bandwidth(idx), 1.0)
		end := s.Clock + s.Config.PHY.AirtimeTicks(rate)
		s.transmit(user, idx, s.Clock, end)
		s.Clock = end
		s.SubChannels.Release(idx)
		s.rrPointer = (s.rrPointer + 1) % len(s.Users)
	}

	return s.Pending() > 0, nil
}

// nextUser rotates the shared pointer to the next user with a non-empty
// queue, advancing past empty ones. Returns nil when every queue is empty.
func (p *roundRobinPolicy) nextUser(s *Simulator) *User {
	for i := 0; i < len(s.Users); i++ {
		u := s.Users[s.rrPointer]
		if u.Queue.IsEmpty() {
			s.rrPointer = (s.rrPointer + 1) % len(s.Users)
			continue
		}
		return u
	}
	return nil
}
