// Implements the PacketQueue, the per-user bounded FIFO backlog.
// Packets are enqueued once at simulation start; overflow is dropped silently.

package sim

// PacketQueue is a bounded FIFO of packets owned by a single user. The backing
// slice doubles as the user's packet arena: dequeued packets stay in place so
// their timestamps remain addressable for metrics and tracing, and the head
// cursor advances instead of reslicing.
type PacketQueue struct {
	packets  []Packet
	head     int
	capacity int

	// OverflowDrops counts packets rejected because the queue was at
	// capacity. Overflow-dropped packets never enter the arena and never
	// appear in latency or throughput accounting.
	OverflowDrops int
}

// NewPacketQueue creates an empty queue bounded at capacity pending packets.
func NewPacketQueue(capacity int) *PacketQueue {
	return &PacketQueue{capacity: capacity}
}

// Enqueue appends a packet to the back of the queue. When the queue is at
// capacity the packet is dropped silently and the overflow counter increments.
func (q *PacketQueue) Enqueue(p Packet) {
	if q.Len() >= q.capacity {
		q.OverflowDrops++
		return
	}
	p.State = StatePending
	q.packets = append(q.packets, p)
}

// Len returns the number of pending packets.
func (q *PacketQueue) Len() int {
	return len(q.packets) - q.head
}

// IsEmpty reports whether no packets are pending.
func (q *PacketQueue) IsEmpty() bool {
	return q.Len() == 0
}

// Peek returns the packet at the front of the queue without removing it.
// The pointer aliases the arena, so callers may stamp timestamps in place.
// Returns nil if the queue is empty.
func (q *PacketQueue) Peek() *Packet {
	if q.IsEmpty() {
		return nil
	}
	return &q.packets[q.head]
}

// Dequeue removes the packet at the front of the queue and returns a pointer
// to its arena slot. Returns nil if the queue is empty.
func (q *PacketQueue) Dequeue() *Packet {
	if q.IsEmpty() {
		return nil
	}
	p := &q.packets[q.head]
	q.head++
	return p
}

// Generated returns the number of packets that entered the arena.
func (q *PacketQueue) Generated() int {
	return len(q.packets)
}
