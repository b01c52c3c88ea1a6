package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"letszoom/internal/config"
	"letszoom/internal/hotkey"
	"letszoom/internal/tray"
)

type fakeZoom struct {
	active  bool
	frozen  bool
	level   int
	smooth  bool
	showErr error
	calls   []string
}

func (z *fakeZoom) Show(level int, smooth bool) error {
	z.calls = append(z.calls, "zoom.show")
	if z.showErr != nil {
		return z.showErr
	}
	z.active, z.level, z.smooth = true, level, smooth
	return nil
}

func (z *fakeZoom) Freeze() error {
	z.calls = append(z.calls, "zoom.freeze")
	z.frozen = true
	return nil
}

func (z *fakeZoom) Hide() {
	z.calls = append(z.calls, "zoom.hide")
	z.active, z.frozen = false, false
}

func (z *fakeZoom) IsActive() bool { return z.active }

type fakeDraw struct {
	active  bool
	color   uint32
	width   int
	opacity int
	showErr error
	calls   []string
}

func (d *fakeDraw) Show(color uint32, width, opacity int) error {
	d.calls = append(d.calls, "draw.show")
	if d.showErr != nil {
		return d.showErr
	}
	d.active, d.color, d.width, d.opacity = true, color, width, opacity
	return nil
}

func (d *fakeDraw) Hide() {
	d.calls = append(d.calls, "draw.hide")
	d.active = false
}

func (d *fakeDraw) Clear()         {}
func (d *fakeDraw) IsActive() bool { return d.active }

type fakeDialogs struct {
	infos, warnings, errors []string
}

func (f *fakeDialogs) Info(title, text string)    { f.infos = append(f.infos, text) }
func (f *fakeDialogs) Warning(title, text string) { f.warnings = append(f.warnings, text) }
func (f *fakeDialogs) Error(title, text string)   { f.errors = append(f.errors, text) }

type fakeNotifier struct{ messages []string }

func (n *fakeNotifier) Show(title, message string) error {
	n.messages = append(n.messages, message)
	return nil
}

type fixture struct {
	c        *Controller
	zoom     *fakeZoom
	draw     *fakeDraw
	dialogs  *fakeDialogs
	notifier *fakeNotifier
	quits    int
	path     string
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		zoom:     &fakeZoom{},
		draw:     &fakeDraw{},
		dialogs:  &fakeDialogs{},
		notifier: &fakeNotifier{},
		path:     filepath.Join(t.TempDir(), "config.ini"),
	}
	f.c = NewController(config.Default(), f.path, "v1.2.3", Deps{
		Zoom:     f.zoom,
		Draw:     f.draw,
		Notifier: f.notifier,
		Dialogs:  f.dialogs,
		Quit:     func() { f.quits++ },
	})
	return f
}

func TestZoomHotkeyToggles(t *testing.T) {
	f := newFixture(t)
	f.c.Settings().ZoomLevel = 450
	f.c.Settings().SmoothZoom = false

	f.c.OnHotkey(hotkey.ActionZoom)
	assert.True(t, f.zoom.active)
	assert.Equal(t, 450, f.zoom.level)
	assert.False(t, f.zoom.smooth)

	f.c.OnHotkey(hotkey.ActionZoom)
	assert.False(t, f.zoom.active)
}

func TestDrawHotkeyUsesPenSettings(t *testing.T) {
	f := newFixture(t)
	s := f.c.Settings()
	s.PenColor = config.RGB(0, 128, 255)
	s.PenWidth = 9
	s.PenOpacity = 77

	f.c.OnHotkey(hotkey.ActionDraw)
	require.True(t, f.draw.active)
	assert.Equal(t, s.PenColor, f.draw.color)
	assert.Equal(t, 9, f.draw.width)
	assert.Equal(t, 77, f.draw.opacity)
	assert.Empty(t, f.zoom.calls, "zoom untouched when it is not shown")

	f.c.OnHotkey(hotkey.ActionDraw)
	assert.False(t, f.draw.active)
}

func TestDrawOverZoomFreezesIt(t *testing.T) {
	f := newFixture(t)
	f.c.OnHotkey(hotkey.ActionZoom)
	f.c.OnHotkey(hotkey.ActionDraw)

	assert.True(t, f.zoom.frozen)
	assert.True(t, f.draw.active)
}

func TestZoomDrawShowsBothThenHidesBoth(t *testing.T) {
	f := newFixture(t)

	f.c.OnHotkey(hotkey.ActionZoomDraw)
	assert.True(t, f.zoom.active)
	assert.True(t, f.draw.active)
	assert.Equal(t, []string{"zoom.show", "zoom.freeze"}, f.zoom.calls)

	f.c.OnHotkey(hotkey.ActionZoomDraw)
	assert.False(t, f.zoom.active)
	assert.False(t, f.draw.active)
}

func TestZoomDrawHidesWhenOnlyOneIsUp(t *testing.T) {
	f := newFixture(t)
	f.c.OnHotkey(hotkey.ActionDraw)

	f.c.OnHotkey(hotkey.ActionZoomDraw)
	assert.False(t, f.draw.active)
	assert.False(t, f.zoom.active)
	assert.NotContains(t, f.zoom.calls, "zoom.show")
}

func TestZoomDrawRollsBackWhenDrawFails(t *testing.T) {
	f := newFixture(t)
	f.draw.showErr = errors.New("no DIB")

	f.c.OnHotkey(hotkey.ActionZoomDraw)
	assert.False(t, f.zoom.active)
	require.Len(t, f.dialogs.errors, 1)
	assert.Contains(t, f.dialogs.errors[0], "no DIB")
}

func TestShowFailureLeavesStateUnchanged(t *testing.T) {
	f := newFixture(t)
	f.zoom.showErr = errors.New("GetDC failed")

	f.c.OnHotkey(hotkey.ActionZoom)
	assert.False(t, f.zoom.active)
	assert.Len(t, f.dialogs.errors, 1)

	f.c.OnHotkey(hotkey.ActionZoomDraw)
	assert.Empty(t, f.draw.calls)
	assert.Len(t, f.dialogs.errors, 2)
}

func TestScreenshotNotifiesUnavailable(t *testing.T) {
	f := newFixture(t)
	f.c.OnHotkey(hotkey.ActionScreenshot)
	require.Len(t, f.notifier.messages, 1)
	assert.Contains(t, f.notifier.messages[0], "not available")

	f.c.Settings().ShowNotifications = false
	f.c.OnHotkey(hotkey.ActionScreenshot)
	assert.Len(t, f.notifier.messages, 1)
}

func TestUnknownActionIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.c.OnHotkey(hotkey.Action(42))
	assert.Empty(t, f.zoom.calls)
	assert.Empty(t, f.draw.calls)
	assert.Empty(t, f.notifier.messages)
}

func TestMenuCommands(t *testing.T) {
	f := newFixture(t)

	f.c.OnMenu(tray.CommandAbout)
	require.Len(t, f.dialogs.infos, 1)
	assert.Contains(t, f.dialogs.infos[0], "v1.2.3")
	assert.Contains(t, f.dialogs.infos[0], "Ctrl+Alt+1")

	f.c.OnMenu(tray.CommandSettings)
	require.Len(t, f.dialogs.infos, 2)
	assert.Contains(t, f.dialogs.infos[1], f.path)

	assert.Zero(t, f.quits)
	f.c.OnMenu(tray.CommandExit)
	assert.Equal(t, 1, f.quits)
}

func TestHotkeysFailedShowsOneWarning(t *testing.T) {
	f := newFixture(t)
	err := fmt.Errorf("%w: %w", hotkey.ErrRegistration, errors.Join(
		errors.New("zoom (Ctrl+Alt+1): in use"),
		errors.New("draw (Ctrl+Alt+2): in use"),
	))

	f.c.HotkeysFailed(err)
	require.Len(t, f.dialogs.warnings, 1)
	assert.Contains(t, f.dialogs.warnings[0], "zoom (Ctrl+Alt+1): in use\ndraw (Ctrl+Alt+2): in use")
}

func TestShutdownHidesAndSaves(t *testing.T) {
	f := newFixture(t)
	f.c.OnHotkey(hotkey.ActionZoomDraw)
	f.c.Settings().ZoomLevel = 725

	f.c.Shutdown()
	assert.False(t, f.zoom.active)
	assert.False(t, f.draw.active)

	_, err := os.Stat(f.path)
	require.NoError(t, err)

	var loaded config.Settings
	require.NoError(t, loaded.Load(f.path))
	assert.Equal(t, 725, loaded.ZoomLevel)
}

func TestShutdownSaveFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	f.c.configPath = filepath.Join(blocker, "config.ini")

	assert.NotPanics(t, f.c.Shutdown)
}
