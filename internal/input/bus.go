package input

// Bus fans events out to subscribed handlers. It is not safe for concurrent
// use: hosts dispatch from a single event loop.
type Bus struct {
	subs []*Subscription
}

// Subscription is a live registration on a Bus.
type Subscription struct {
	bus    *Bus
	kinds  map[Kind]bool
	fn     Handler
	active bool
}

// Subscribe registers fn for the listed kinds.
func (b *Bus) Subscribe(fn Handler, kinds ...Kind) *Subscription {
	s := &Subscription{bus: b, kinds: make(map[Kind]bool, len(kinds)), fn: fn, active: true}
	for _, k := range kinds {
		s.kinds[k] = true
	}
	b.subs = append(b.subs, s)
	return s
}

// Release unregisters the subscription. Further calls do nothing, and a nil
// subscription may be released.
func (s *Subscription) Release() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	b := s.bus
	for i, o := range b.subs {
		if o == s {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			break
		}
	}
}

// Active reports whether the subscription still receives events.
func (s *Subscription) Active() bool { return s != nil && s.active }

// Len returns the number of live subscriptions.
func (b *Bus) Len() int { return len(b.subs) }

// Dispatch delivers e to every handler subscribed to its kind at the time of
// the call. Handlers released while dispatch is running are skipped;
// handlers added during dispatch see the next event.
func (b *Bus) Dispatch(e Event) {
	snapshot := make([]*Subscription, len(b.subs))
	copy(snapshot, b.subs)
	for _, s := range snapshot {
		if s.active && s.kinds[e.Kind] {
			s.fn(e)
		}
	}
}
