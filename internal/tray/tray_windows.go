//go:build windows

package tray

import (
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"

	"letszoom/internal/winapi"
)

const (
	iconID   = 1
	iconSize = 32
	tooltip  = "LetsZoom"

	baseFlags = winapi.NIF_MESSAGE | winapi.NIF_ICON | winapi.NIF_TIP
)

// Icon is the notification-area icon of the owner window.
type Icon struct {
	log zerolog.Logger

	owner     uintptr
	hicon     uintptr
	nid       winapi.NotifyIconData
	added     bool
	onCommand func(Command)
}

// New adds the icon. Mouse events arrive at owner as CallbackMessage and
// must be passed to HandleMessage; menu choices are delivered to onCommand.
func New(owner uintptr, onCommand func(Command)) (*Icon, error) {
	t := &Icon{
		log:       log.With().Str("component", "tray").Logger(),
		owner:     owner,
		onCommand: onCommand,
	}

	res := iconResource(iconSize)
	t.hicon, _, _ = winapi.ProcCreateIconFromResEx.Call(
		uintptr(unsafe.Pointer(&res[0])), uintptr(len(res)),
		1, 0x00030000, // fIcon, version
		iconSize, iconSize, winapi.LR_DEFAULTCOLOR,
	)
	if t.hicon == 0 {
		t.log.Debug().Msg("generated icon rejected, using the stock icon")
		t.hicon, _, _ = winapi.ProcLoadIconW.Call(0, winapi.IDI_APPLICATION)
	}

	t.nid.CbSize = uint32(unsafe.Sizeof(t.nid))
	t.nid.HWnd = owner
	t.nid.UID = iconID
	t.nid.UFlags = baseFlags
	t.nid.UCallbackMessage = CallbackMessage
	t.nid.HIcon = t.hicon
	winapi.CopyUTF16(t.nid.SzTip[:], tooltip)

	ret, _, err := winapi.ProcShellNotifyIconW.Call(winapi.NIM_ADD, uintptr(unsafe.Pointer(&t.nid)))
	if ret == 0 {
		t.destroyIcon()
		return nil, fmt.Errorf("add tray icon: %v", err)
	}
	t.added = true
	t.log.Debug().Msg("icon added")
	return t, nil
}

// HandleMessage processes a CallbackMessage sent to the owner window.
func (t *Icon) HandleMessage(lParam uintptr) {
	switch Classify(lParam) {
	case GestureMenu:
		if cmd := t.trackMenu(); cmd != 0 && t.onCommand != nil {
			t.onCommand(cmd)
		}
	case GestureOpenSettings:
		if t.onCommand != nil {
			t.onCommand(CommandSettings)
		}
	}
}

func (t *Icon) trackMenu() Command {
	menu, _, _ := winapi.ProcCreatePopupMenu.Call()
	if menu == 0 {
		return 0
	}
	defer winapi.ProcDestroyMenu.Call(menu)

	for _, item := range Menu() {
		if item.Command == 0 {
			winapi.ProcAppendMenuW.Call(menu, winapi.MF_SEPARATOR, 0, 0)
			continue
		}
		label, _ := windows.UTF16PtrFromString(item.Label)
		winapi.ProcAppendMenuW.Call(menu, winapi.MF_STRING, uintptr(item.Command), uintptr(unsafe.Pointer(label)))
	}

	x, y := winapi.CursorPos()

	// The menu only closes on an outside click if the owner is foreground.
	winapi.ProcSetForegroundWindow.Call(t.owner)
	cmd, _, _ := winapi.ProcTrackPopupMenu.Call(
		menu,
		winapi.TPM_LEFTALIGN|winapi.TPM_BOTTOMALIGN|winapi.TPM_RETURNCMD|winapi.TPM_NONOTIFY,
		uintptr(x), uintptr(y), 0, t.owner, 0,
	)
	winapi.ProcPostMessageW.Call(t.owner, winapi.WM_NULL, 0, 0)

	t.log.Debug().Stringer("command", Command(cmd)).Msg("menu closed")
	return Command(cmd)
}

// Show displays a balloon notification from the icon.
func (t *Icon) Show(title, message string) error {
	if !t.added {
		return fmt.Errorf("tray icon not added")
	}

	t.nid.UFlags = winapi.NIF_INFO
	t.nid.DwInfoFlags = winapi.NIIF_INFO
	winapi.CopyUTF16(t.nid.SzInfoTitle[:], title)
	winapi.CopyUTF16(t.nid.SzInfo[:], message)

	ret, _, err := winapi.ProcShellNotifyIconW.Call(winapi.NIM_MODIFY, uintptr(unsafe.Pointer(&t.nid)))
	t.nid.UFlags = baseFlags
	if ret == 0 {
		return fmt.Errorf("show balloon: %v", err)
	}
	return nil
}

// Readd restores the icon after Explorer restarts.
func (t *Icon) Readd() {
	ret, _, err := winapi.ProcShellNotifyIconW.Call(winapi.NIM_ADD, uintptr(unsafe.Pointer(&t.nid)))
	t.added = ret != 0
	if !t.added {
		t.log.Warn().Err(err).Msg("re-add icon")
	}
}

// Remove deletes the icon. Safe to call more than once.
func (t *Icon) Remove() {
	if t.added {
		winapi.ProcShellNotifyIconW.Call(winapi.NIM_DELETE, uintptr(unsafe.Pointer(&t.nid)))
		t.added = false
		t.log.Debug().Msg("icon removed")
	}
	t.destroyIcon()
}

func (t *Icon) destroyIcon() {
	if t.hicon == 0 {
		return
	}
	// Stock icons are shared and must not be destroyed; DestroyIcon
	// simply fails on them.
	winapi.ProcDestroyIcon.Call(t.hicon)
	t.hicon = 0
}
