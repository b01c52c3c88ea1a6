//go:build windows

package app

import "letszoom/internal/winapi"

// messageBoxes shows Dialogs as Win32 message boxes owned by the host window.
type messageBoxes struct {
	owner uintptr
}

const boxFlags = winapi.MB_OK | winapi.MB_SETFOREGROUND | winapi.MB_TOPMOST

func (m messageBoxes) Info(title, text string) {
	winapi.MessageBox(m.owner, text, title, boxFlags|winapi.MB_ICONINFORMATION)
}

func (m messageBoxes) Warning(title, text string) {
	winapi.MessageBox(m.owner, text, title, boxFlags|winapi.MB_ICONWARNING)
}

func (m messageBoxes) Error(title, text string) {
	winapi.MessageBox(m.owner, text, title, boxFlags|winapi.MB_ICONERROR)
}
