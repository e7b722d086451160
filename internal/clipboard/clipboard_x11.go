//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// readTimeout bounds how long a paste waits for the selection owner.
const readTimeout = 2 * time.Second

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY")
	owner        *x11Owner
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		o, err := newX11Owner()
		if err != nil {
			initErr = fmt.Errorf("connect to X server: %w", err)
			return
		}
		owner = o
	})
	return initErr
}

func writeText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	return owner.own(text)
}

func readText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	if s, ok := owner.local(); ok {
		return s, nil
	}
	data, err := owner.request(owner.atoms.utf8)
	if err != nil {
		data, err = owner.request(xproto.AtomString)
	}
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	return string(data), nil
}

type atoms struct {
	clipboard, targets, utf8, textPlain, property xproto.Atom
}

// x11Owner holds a hidden window that owns CLIPBOARD while inkpad has
// copied something, and answers other clients' conversion requests.
type x11Owner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atoms

	mu    sync.Mutex
	text  string
	owned bool
}

func newX11Owner() (*x11Owner, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	mask := []uint32{xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, win, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, mask).Check(); err != nil {
		conn.Close()
		return nil, err
	}
	a, err := intern(conn)
	if err != nil {
		xproto.DestroyWindow(conn, win)
		conn.Close()
		return nil, err
	}
	o := &x11Owner{conn: conn, window: win, atoms: a}
	go o.serve()
	return o, nil
}

func intern(conn *xgb.Conn) (atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "INKPAD_CLIPBOARD"}
	got := make([]xproto.Atom, len(names))
	for i, n := range names {
		r, err := xproto.InternAtom(conn, false, uint16(len(n)), n).Reply()
		if err != nil {
			return atoms{}, fmt.Errorf("intern %s: %w", n, err)
		}
		got[i] = r.Atom
	}
	return atoms{clipboard: got[0], targets: got[1], utf8: got[2], textPlain: got[3], property: got[4]}, nil
}

func (o *x11Owner) own(text string) error {
	o.mu.Lock()
	o.text, o.owned = text, true
	o.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(o.conn, o.window, o.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (o *x11Owner) local() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.text, o.owned && o.text != ""
}

func (o *x11Owner) serve() {
	for {
		ev, err := o.conn.WaitForEvent()
		if err != nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			o.answer(e)
		case xproto.SelectionClearEvent:
			o.mu.Lock()
			o.text, o.owned = "", false
			o.mu.Unlock()
		}
	}
}

func (o *x11Owner) answer(e xproto.SelectionRequestEvent) {
	prop := e.Property
	if prop == xproto.AtomNone {
		prop = e.Target
	}
	text, _ := o.local()

	switch e.Target {
	case o.atoms.targets:
		list := []xproto.Atom{o.atoms.targets, o.atoms.utf8, xproto.AtomString, o.atoms.textPlain}
		buf := make([]byte, 4*len(list))
		for i, a := range list {
			xgb.Put32(buf[4*i:], uint32(a))
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, prop, xproto.AtomAtom, 32, uint32(len(list)), buf)
	case o.atoms.utf8, xproto.AtomString, o.atoms.textPlain:
		if text == "" {
			prop = xproto.AtomNone
			break
		}
		xproto.ChangeProperty(o.conn, xproto.PropModeReplace, e.Requestor, prop, o.atoms.utf8, 8, uint32(len(text)), []byte(text))
	default:
		prop = xproto.AtomNone
	}

	ev := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  prop,
	}
	xproto.SendEvent(o.conn, false, e.Requestor, 0, string(ev.Bytes()))
}

// request converts the CLIPBOARD selection to target on a throwaway
// connection and waits for the owner's reply.
func (o *x11Owner) request(target xproto.Atom) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	screen := xproto.Setup(conn).DefaultScreen(conn)
	win, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, 0, win, screen.Root, 0, 0, 1, 1, 0, xproto.WindowClassInputOnly, 0,
		xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, win)
	if err := xproto.ConvertSelectionChecked(conn, win, o.atoms.clipboard, target, o.atoms.property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		for {
			ev, xerr := conn.WaitForEvent()
			if xerr != nil {
				done <- result{err: xerr}
				return
			}
			n, ok := ev.(xproto.SelectionNotifyEvent)
			if !ok {
				continue
			}
			if n.Property == xproto.AtomNone {
				done <- result{err: ErrEmpty}
				return
			}
			reply, err := xproto.GetProperty(conn, true, win, n.Property, xproto.GetPropertyTypeAny, 0, 1<<20).Reply()
			if err != nil {
				done <- result{err: err}
				return
			}
			done <- result{data: append([]byte(nil), reply.Value...)}
			return
		}
	}()
	select {
	case r := <-done:
		return r.data, r.err
	case <-time.After(readTimeout):
		return nil, fmt.Errorf("clipboard owner did not answer within %v", readTimeout)
	}
}
