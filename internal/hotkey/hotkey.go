package hotkey

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"letszoom/internal/config"
)

// Action identifies a global hotkey. The numeric values are the ids carried
// by the hotkey message posted to the host window.
type Action uint32

const (
	ActionZoom       Action = 1
	ActionDraw       Action = 2
	ActionZoomDraw   Action = 3
	ActionScreenshot Action = 4
)

func (a Action) String() string {
	switch a {
	case ActionZoom:
		return "zoom"
	case ActionDraw:
		return "draw"
	case ActionZoomDraw:
		return "zoomdraw"
	case ActionScreenshot:
		return "screenshot"
	}
	return fmt.Sprintf("action(%d)", uint32(a))
}

// ParseAction maps a name used on the command line to an Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions() {
		if a.String() == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown hotkey action %q (want zoom, draw, zoomdraw or screenshot)", name)
}

// Actions lists every action in id order.
func Actions() []Action {
	return []Action{ActionZoom, ActionDraw, ActionZoomDraw, ActionScreenshot}
}

// Binding ties an action to a key combination.
type Binding struct {
	Action Action
	Hotkey config.Hotkey
}

// Bindings returns the four configured bindings.
func Bindings(s *config.Settings) []Binding {
	return []Binding{
		{ActionZoom, s.ZoomHotkey},
		{ActionDraw, s.DrawHotkey},
		{ActionZoomDraw, s.ZoomDrawHotkey},
		{ActionScreenshot, s.ScreenshotHotkey},
	}
}

// SetBinding updates the settings field that belongs to a.
func SetBinding(s *config.Settings, a Action, hk config.Hotkey) error {
	switch a {
	case ActionZoom:
		s.ZoomHotkey = hk
	case ActionDraw:
		s.DrawHotkey = hk
	case ActionZoomDraw:
		s.ZoomDrawHotkey = hk
	case ActionScreenshot:
		s.ScreenshotHotkey = hk
	default:
		return fmt.Errorf("unknown hotkey action %d", uint32(a))
	}
	return nil
}

// ErrRegistration wraps every failure returned by Register.
var ErrRegistration = errors.New("hotkey registration failed")

// handle is one OS-level hotkey registration.
type handle interface {
	Register() error
	Unregister() error
	// Listen calls fire for every key-down until stop is closed.
	Listen(stop <-chan struct{}, fire func())
}

// Poster hands an activated action over to the UI thread. It is called from
// listener goroutines and must be safe for that.
type Poster func(a Action)

// Registrar owns the global hotkeys.
type Registrar struct {
	newHandle func(hk config.Hotkey) handle
	post      Poster

	handlers map[Action]func()
	active   []handle
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewRegistrar creates a registrar whose key-downs are delivered via post.
func NewRegistrar(post Poster) *Registrar {
	return &Registrar{
		newHandle: newOSHandle,
		post:      post,
		handlers:  make(map[Action]func()),
	}
}

// Handle sets the function run by Dispatch for a.
func (r *Registrar) Handle(a Action, fn func()) {
	r.handlers[a] = fn
}

// Registered reports whether the hotkeys are currently active.
func (r *Registrar) Registered() bool {
	return len(r.active) > 0
}

// Register registers every binding. If any of them fails, the ones that
// succeeded are unregistered again and the joined error is returned.
func (r *Registrar) Register(bindings []Binding) error {
	if r.Registered() {
		return nil
	}

	var (
		errs []error
		ok   []handle
	)
	for _, b := range bindings {
		h := r.newHandle(b.Hotkey)
		if err := h.Register(); err != nil {
			log.Debug().Err(err).Stringer("action", b.Action).Str("combo", FormatCombo(b.Hotkey)).Msg("hotkey register failed")
			errs = append(errs, fmt.Errorf("%s (%s): %w", b.Action, FormatCombo(b.Hotkey), err))
			continue
		}
		ok = append(ok, h)
	}

	if len(errs) > 0 {
		for _, h := range ok {
			_ = h.Unregister()
		}
		return fmt.Errorf("%w: %w", ErrRegistration, errors.Join(errs...))
	}

	r.active = ok
	r.stop = make(chan struct{})
	for i, h := range ok {
		action := bindings[i].Action
		r.wg.Add(1)
		go func(h handle) {
			defer r.wg.Done()
			h.Listen(r.stop, func() { r.post(action) })
		}(h)
	}

	log.Debug().Int("count", len(ok)).Msg("hotkeys registered")
	return nil
}

// Unregister releases every registered hotkey and stops the listeners.
func (r *Registrar) Unregister() {
	if !r.Registered() {
		return
	}
	close(r.stop)
	r.wg.Wait()
	for _, h := range r.active {
		_ = h.Unregister()
	}
	r.active = nil
	log.Debug().Msg("hotkeys unregistered")
}

// Dispatch runs the handler for a delivered id. Unknown ids are ignored.
func (r *Registrar) Dispatch(id uint32) {
	a := Action(id)
	fn, ok := r.handlers[a]
	if !ok || fn == nil {
		log.Debug().Uint32("id", id).Msg("unknown hotkey")
		return
	}
	log.Debug().Stringer("action", a).Msg("hotkey")
	fn()
}
