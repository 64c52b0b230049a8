// Package sim provides the core discrete-event engine for pulse propagation
// networks.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - module.go: module kinds (relay, flip-flop, conjunction, broadcaster) and their reaction to a pulse
//   - graph.go: building the wired module graph from definitions
//   - simulator.go: the press loop draining pulses in FIFO order
//
// composer.go and search.go answer "how many presses until the target gets a
// pulse": the cycle shortcut composes per-input periods with an LCM, and the
// exhaustive strategy simulates press by press.
//
// # Architecture
//
// The sim package defines the engine and observer interfaces; supporting
// code lives in sub-packages:
//   - sim/circuit/: text and YAML circuit formats, Mermaid rendering
//   - sim/trace/: per-pulse trace recording and summaries
//   - sim/telemetry/: Prometheus counters fed by the observer hooks
//
// # Key Interfaces
//
//   - PulseObserver: notified of every delivered pulse with its 1-based press index
//   - PressObserver: optionally notified with the per-press totals once a press drains
package sim
