package appstate

// frameEvent is posted to the window to run queued animation callbacks.
type frameEvent struct{}

// frameScheduler queues canvas frame callbacks and keeps at most one
// frameEvent in flight.
type frameScheduler struct {
	send     func(any)
	queue    []func()
	inFlight bool
}

func (f *frameScheduler) RequestFrame(fn func()) {
	f.queue = append(f.queue, fn)
	if f.inFlight {
		return
	}
	f.inFlight = true
	f.send(frameEvent{})
}

// run executes the callbacks queued before the frameEvent arrived.
func (f *frameScheduler) run() int {
	q := f.queue
	f.queue = nil
	f.inFlight = false
	for _, fn := range q {
		fn()
	}
	return len(q)
}
