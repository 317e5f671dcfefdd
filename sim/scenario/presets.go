package scenario

// Built-in scenario presets for the reference user-count sweeps.
// Each returns a valid Spec ready for use with Config.

import "fmt"

// sweepUserCounts is the reference station population sweep.
var sweepUserCounts = []int{1, 10, 100}

func sweep(seed int64, policy string, packetsPerUser int) *Spec {
	spec := &Spec{Version: "1", Seed: seed}
	for _, users := range sweepUserCounts {
		spec.Runs = append(spec.Runs, RunSpec{
			Name:           fmt.Sprintf("%s-%d-users", policy, users),
			Users:          users,
			PacketsPerUser: packetsPerUser,
			Policy:         policy,
		})
	}
	return spec
}

// RoundRobinSweep sweeps the round-robin policy over {1, 10, 100} users with
// 10 packets each.
func RoundRobinSweep(seed int64) *Spec {
	return sweep(seed, "round-robin", 10)
}

// ContentionSweep sweeps the contention policy over {1, 10, 100} users with
// 10 packets each.
func ContentionSweep(seed int64) *Spec {
	return sweep(seed, "contention", 10)
}

// CSMASweep sweeps the CSMA policy over {1, 10, 100} users with 1000 packets
// each and the short sensing backoff of the reference model.
func CSMASweep(seed int64) *Spec {
	spec := sweep(seed, "csma", 1000)
	for i := range spec.Runs {
		spec.Runs[i].QueueCapacity = 1000
		spec.Runs[i].MaxBackoffUs = 10
	}
	return spec
}

// Preset returns the named built-in sweep, or nil if unknown.
func Preset(name string, seed int64) *Spec {
	switch name {
	case "round-robin":
		return RoundRobinSweep(seed)
	case "contention":
		return ContentionSweep(seed)
	case "csma":
		return CSMASweep(seed)
	}
	return nil
}
