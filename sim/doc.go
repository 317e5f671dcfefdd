// Package sim provides the discrete-event simulation engine for contention
// over a shared wireless medium.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - packet.go: Packet lifecycle (pending → transmitted | dropped)
//   - channel.go: the sub-channel and stream resource pools
//   - simulator.go: the clock, the scheduling loop, and the error taxonomy
//
// # Architecture
//
// A Simulator owns one run exclusively: its clock, users, resource pool,
// RNG streams, and metrics. The medium-access strategy is an accessPolicy
// implementation chosen at construction time:
//   - roundrobin.go: round-robin-with-timeout over independent sub-channels
//   - contention.go: contention-backoff-with-power-control over MU-MIMO streams
//   - csma.go: probabilistic carrier sensing on a single channel
//
// "Waiting" is modelled purely as clock advancement; no operation blocks a
// real thread. Runs are single-threaded and deterministic under a fixed seed;
// independent runs may execute concurrently since nothing is shared.
//
// Sub-packages:
//   - sim/scenario: YAML scenario specs and built-in sweep presets
//   - sim/trace: optional per-packet event recording
package sim
