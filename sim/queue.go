// Implements the PulseQueue, which holds the pulses still in flight during one button press.
// Pulses are enqueued at the tail as modules react and dispatched from the head.

package sim

import (
	"fmt"
	"strings"
)

// pulseBuffer is the ordering discipline the simulator drains a press through.
// Production code always uses a PulseQueue; tests swap in other disciplines
// to show that ordering changes results.
type pulseBuffer interface {
	Enqueue(p Pulse)
	Dequeue() (Pulse, bool)
	Len() int
}

// PulseQueue represents a FIFO queue of pulses waiting to be delivered.
// A fresh queue is created for every press and discarded once drained.
type PulseQueue struct {
	queue []Pulse // FIFO queue of pulses
}

// Enqueue adds a pulse to the back of the queue.
func (pq *PulseQueue) Enqueue(p Pulse) {
	pq.queue = append(pq.queue, p)
}

func (pq *PulseQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range pq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(pq.queue)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of pulses in the queue.
func (pq *PulseQueue) Len() int {
	return len(pq.queue)
}

// Peek returns the pulse at the front of the queue without removing it.
// The second result is false if the queue is empty.
func (pq *PulseQueue) Peek() (Pulse, bool) {
	if len(pq.queue) == 0 {
		return Pulse{}, false
	}
	return pq.queue[0], true
}

// Dequeue removes and returns the pulse at the front of the queue.
// The second result is false if the queue is empty.
func (pq *PulseQueue) Dequeue() (Pulse, bool) {
	if len(pq.queue) == 0 {
		return Pulse{}, false
	}
	p := pq.queue[0]
	pq.queue = pq.queue[1:]
	return p, true
}
