package trace

// Summary aggregates statistics from a RunTrace.
type Summary struct {
	TotalEvents      int
	TransmittedCount int
	DroppedCount     int
	TotalAirTime     int64          // ticks spent transmitting
	TotalBackoffTime int64          // ticks spent backing off
	BackoffCount     int
	ResourceCounts   map[int]int    // resource index → transmissions carried
	DropCauses       map[string]int // drop cause → count
}

// Summarize computes aggregate statistics from a RunTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(rt *RunTrace) *Summary {
	summary := &Summary{
		ResourceCounts: make(map[int]int),
		DropCauses:     make(map[string]int),
	}
	if rt == nil {
		return summary
	}

	summary.TotalEvents = len(rt.Packets)
	for _, p := range rt.Packets {
		switch p.Outcome {
		case OutcomeTransmitted:
			summary.TransmittedCount++
			summary.TotalAirTime += p.End - p.Start
			summary.ResourceCounts[p.Resource]++
		case OutcomeDropped:
			summary.DroppedCount++
			summary.DropCauses[p.Cause]++
		}
	}

	summary.BackoffCount = len(rt.Backoffs)
	for _, b := range rt.Backoffs {
		summary.TotalBackoffTime += b.Duration
	}

	return summary
}
