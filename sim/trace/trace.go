package trace

// Level controls the verbosity of packet tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelPackets captures every terminal packet event and backoff draw.
	LevelPackets Level = "packets"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:    true,
	LevelPackets: true,
	"":           true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is a recognized trace
// level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// RunTrace collects packet and backoff records during a simulation run.
// A nil *RunTrace is safe to record into and records nothing.
type RunTrace struct {
	Level    Level
	Packets  []PacketRecord
	Backoffs []BackoffRecord
}

// NewRunTrace creates a RunTrace ready for recording at the given level.
func NewRunTrace(level Level) *RunTrace {
	return &RunTrace{
		Level:    level,
		Packets:  make([]PacketRecord, 0),
		Backoffs: make([]BackoffRecord, 0),
	}
}

// RecordPacket appends a terminal packet event record.
func (rt *RunTrace) RecordPacket(record PacketRecord) {
	if rt == nil || rt.Level != LevelPackets {
		return
	}
	rt.Packets = append(rt.Packets, record)
}

// RecordBackoff appends a backoff draw record.
func (rt *RunTrace) RecordBackoff(record BackoffRecord) {
	if rt == nil || rt.Level != LevelPackets {
		return
	}
	rt.Backoffs = append(rt.Backoffs, record)
}
