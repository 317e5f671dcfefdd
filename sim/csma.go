// Policy C: probabilistic CSMA on a single full-rate channel. The medium is
// found idle with probability 1/userCount per sensing attempt; a busy sense
// costs a short uniform backoff. Contention grows with the user population
// without modelling individual interferers.

package sim

type csmaPolicy struct{}

func (p *csmaPolicy) name() Policy { return PolicyCSMA }

func (p *csmaPolicy) step(s *Simulator) (bool, error) {
	if s.Pending() == 0 {
		return false, nil
	}

	idleProbability := 1.0 / float64(s.Config.UserCount)
	medium := s.RNG.ForSubsystem(SubsystemMedium)

	for _, user := range s.Users {
		if s.Clock >= s.Config.TimeBudget {
			break
		}
		if user.Queue.IsEmpty() {
			continue
		}

		pkt := user.Queue.Peek()
		s.waitForArrival(pkt)

		// Sense until the medium is idle; every busy sense backs off.
		for medium.Float64() >= idleProbability {
			if err := s.backoff(user); err != nil {
				return true, err
			}
		}

		rate := s.Config.PHY.Rate(s.Config.Resources.ChannelMHz, 1.0)
		end := s.Clock + s.Config.PHY.AirtimeTicks(rate)
		if end > s.Config.TimeBudget {
			s.drop(user, DropDeadline, 0)
			continue
		}

		s.transmit(user, 0, s.Clock, end)
		s.Clock = end
	}

	return s.Pending() > 0, nil
}
