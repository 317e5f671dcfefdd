package trace

import "testing"

func TestRunTrace_RecordsAtPacketLevel(t *testing.T) {
	rt := NewRunTrace(LevelPackets)

	rt.RecordPacket(PacketRecord{UserID: 1, Seq: 0, Resource: 2, Start: 10, End: 20, Outcome: OutcomeTransmitted})
	rt.RecordBackoff(BackoffRecord{UserID: 1, Clock: 5, Duration: 3})

	if len(rt.Packets) != 1 {
		t.Errorf("Packets: got %d records, want 1", len(rt.Packets))
	}
	if len(rt.Backoffs) != 1 {
		t.Errorf("Backoffs: got %d records, want 1", len(rt.Backoffs))
	}
}

func TestRunTrace_LevelNone_RecordsNothing(t *testing.T) {
	rt := NewRunTrace(LevelNone)

	rt.RecordPacket(PacketRecord{UserID: 1})
	rt.RecordBackoff(BackoffRecord{UserID: 1})

	if len(rt.Packets) != 0 || len(rt.Backoffs) != 0 {
		t.Errorf("LevelNone recorded %d packets, %d backoffs, want 0/0", len(rt.Packets), len(rt.Backoffs))
	}
}

func TestRunTrace_NilIsSafe(t *testing.T) {
	var rt *RunTrace
	// Recording into a nil trace must be a no-op, not a panic.
	rt.RecordPacket(PacketRecord{UserID: 1})
	rt.RecordBackoff(BackoffRecord{UserID: 1})
}

func TestIsValidLevel(t *testing.T) {
	for _, level := range []string{"none", "packets", ""} {
		if !IsValidLevel(level) {
			t.Errorf("IsValidLevel(%q): got false, want true", level)
		}
	}
	if IsValidLevel("verbose") {
		t.Error(`IsValidLevel("verbose"): got true, want false`)
	}
}
