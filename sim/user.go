// Models a single user (station) contending for the medium: identity,
// distance from the access point, and the bounded backlog of frames.

package sim

import "fmt"

// User is one station in the simulation. Distance is fixed for the user's
// lifetime and only consulted by the power-control policy. Users are created
// at simulation start with a pre-generated burst of packets; no packets arrive
// afterwards.
type User struct {
	ID       int
	Distance float64 // meters from the access point
	Queue    *PacketQueue
}

// NewUser creates a user with an empty bounded queue.
func NewUser(id int, distance float64, queueCapacity int) *User {
	return &User{
		ID:       id,
		Distance: distance,
		Queue:    NewPacketQueue(queueCapacity),
	}
}

// GenerateBurst enqueues count packets spaced spacing ticks apart starting at
// the given time. Packets beyond the queue capacity are overflow-dropped by
// the queue itself.
func (u *User) GenerateBurst(count int, start, spacing int64) {
	for i := 0; i < count; i++ {
		u.Queue.Enqueue(Packet{
			Seq:     i,
			Arrival: start + int64(i)*spacing,
		})
	}
}

func (u *User) String() string {
	return fmt.Sprintf("User: (ID: %d, Distance: %.1fm, Pending: %d)", u.ID, u.Distance, u.Queue.Len())
}
