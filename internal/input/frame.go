package input

// Scheduler runs callbacks on the next animation frame.
type Scheduler interface {
	RequestFrame(fn func())
}

// ManualScheduler queues frames until Flush is called. Tests use it to
// step animation deterministically.
type ManualScheduler struct {
	queue []func()
}

func (m *ManualScheduler) RequestFrame(fn func()) { m.queue = append(m.queue, fn) }

// Pending returns the number of queued frames.
func (m *ManualScheduler) Pending() int { return len(m.queue) }

// Flush runs the frames queued so far. Frames requested while flushing wait
// for the next Flush.
func (m *ManualScheduler) Flush() {
	q := m.queue
	m.queue = nil
	for _, fn := range q {
		fn()
	}
}
