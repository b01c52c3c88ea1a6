package hotkey

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letszoom/internal/config"
)

type fakeHandle struct {
	combo      config.Hotkey
	failWith   error
	registered bool
	fire       chan struct{}
}

func (h *fakeHandle) Register() error {
	if h.failWith != nil {
		return h.failWith
	}
	h.registered = true
	return nil
}

func (h *fakeHandle) Unregister() error {
	h.registered = false
	return nil
}

func (h *fakeHandle) Listen(stop <-chan struct{}, fire func()) {
	for {
		select {
		case <-stop:
			return
		case <-h.fire:
			fire()
		}
	}
}

type fakeOS struct {
	mu      sync.Mutex
	handles []*fakeHandle
	taken   map[config.Hotkey]bool
}

func (f *fakeOS) newHandle(c config.Hotkey) handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := &fakeHandle{combo: c, fire: make(chan struct{})}
	if f.taken[c] {
		h.failWith = errors.New("hotkey already registered")
	}
	f.handles = append(f.handles, h)
	return h
}

func newTestRegistrar(os *fakeOS, post Poster) *Registrar {
	r := NewRegistrar(post)
	r.newHandle = os.newHandle
	return r
}

func TestRegisterAllAndUnregister(t *testing.T) {
	os := &fakeOS{}
	r := newTestRegistrar(os, func(Action) {})

	require.NoError(t, r.Register(Bindings(config.Default())))
	assert.True(t, r.Registered())
	require.Len(t, os.handles, 4)
	for _, h := range os.handles {
		assert.True(t, h.registered)
	}

	r.Unregister()
	assert.False(t, r.Registered())
	for _, h := range os.handles {
		assert.False(t, h.registered)
	}
}

func TestRegisterRollsBackOnFailure(t *testing.T) {
	s := config.Default()
	os := &fakeOS{taken: map[config.Hotkey]bool{s.ZoomDrawHotkey: true}}
	r := newTestRegistrar(os, func(Action) {})

	err := r.Register(Bindings(s))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistration)
	assert.Contains(t, err.Error(), "zoomdraw")
	assert.False(t, r.Registered())

	for _, h := range os.handles {
		assert.False(t, h.registered, "combo %s left registered", FormatCombo(h.combo))
	}
}

func TestKeydownIsPostedThenDispatched(t *testing.T) {
	posted := make(chan Action, 1)
	os := &fakeOS{}
	r := newTestRegistrar(os, func(a Action) { posted <- a })

	var ran []Action
	for _, a := range Actions() {
		a := a
		r.Handle(a, func() { ran = append(ran, a) })
	}
	require.NoError(t, r.Register(Bindings(config.Default())))
	defer r.Unregister()

	os.handles[1].fire <- struct{}{}

	select {
	case a := <-posted:
		assert.Equal(t, ActionDraw, a)
		r.Dispatch(uint32(a))
	case <-time.After(time.Second):
		t.Fatal("key-down was not posted")
	}
	assert.Equal(t, []Action{ActionDraw}, ran)
}

func TestDispatchUnknownIDIsIgnored(t *testing.T) {
	r := NewRegistrar(func(Action) {})
	called := false
	r.Handle(ActionZoom, func() { called = true })

	r.Dispatch(99)
	assert.False(t, called)

	r.Dispatch(uint32(ActionZoom))
	assert.True(t, called)
}

func TestBindingIDs(t *testing.T) {
	assert.Equal(t, Action(1), ActionZoom)
	assert.Equal(t, Action(2), ActionDraw)
	assert.Equal(t, Action(3), ActionZoomDraw)
	assert.Equal(t, Action(4), ActionScreenshot)
}

func TestSetBinding(t *testing.T) {
	s := config.Default()
	hk := config.Hotkey{Mod: config.ModShift | config.ModWin, Key: 'Z'}

	require.NoError(t, SetBinding(s, ActionScreenshot, hk))
	assert.Equal(t, hk, s.ScreenshotHotkey)
	assert.Error(t, SetBinding(s, Action(42), hk))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("zoomdraw")
	require.NoError(t, err)
	assert.Equal(t, ActionZoomDraw, a)

	_, err = ParseAction("pan")
	assert.Error(t, err)
}
