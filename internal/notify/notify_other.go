//go:build !windows

package notify

// NewToast returns Nop; toasts exist only on Windows.
func NewToast() Notifier {
	return Nop{}
}
