package input

import "testing"

func TestDispatchByKind(t *testing.T) {
	var b Bus
	var got []Kind
	b.Subscribe(func(e Event) { got = append(got, e.Kind) }, PointerMove, TouchMove)
	b.Dispatch(Event{Kind: PointerMove})
	b.Dispatch(Event{Kind: PointerUp})
	b.Dispatch(Event{Kind: TouchMove})
	if len(got) != 2 || got[0] != PointerMove || got[1] != TouchMove {
		t.Fatalf("got %v", got)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	var b Bus
	calls := 0
	s := b.Subscribe(func(Event) { calls++ }, KeyDown)
	other := b.Subscribe(func(Event) {}, KeyDown)
	s.Release()
	s.Release()
	if b.Len() != 1 || !other.Active() {
		t.Fatalf("len = %d, other active = %v", b.Len(), other.Active())
	}
	b.Dispatch(Event{Kind: KeyDown})
	if calls != 0 {
		t.Fatalf("released handler called %d times", calls)
	}
	var nilSub *Subscription
	nilSub.Release()
}

func TestReleaseDuringDispatch(t *testing.T) {
	var b Bus
	var second *Subscription
	calls := 0
	b.Subscribe(func(Event) { second.Release() }, PointerUp)
	second = b.Subscribe(func(Event) { calls++ }, PointerUp)
	b.Dispatch(Event{Kind: PointerUp})
	if calls != 0 {
		t.Fatal("handler released earlier in the same dispatch still ran")
	}
}

func TestManualScheduler(t *testing.T) {
	var m ManualScheduler
	n := 0
	m.RequestFrame(func() {
		n++
		m.RequestFrame(func() { n += 10 })
	})
	m.Flush()
	if n != 1 || m.Pending() != 1 {
		t.Fatalf("n = %d pending = %d", n, m.Pending())
	}
	m.Flush()
	if n != 11 {
		t.Fatalf("n = %d, want 11", n)
	}
}
