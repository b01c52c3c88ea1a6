// Package autostart manages the per-user "start with Windows" entry.
package autostart

import (
	"fmt"
)

// ValueName is the Run key value written for this application.
const ValueName = "LetsZoom"

// Command is the Run key data for exePath. The path is quoted so spaces
// survive.
func Command(exePath string) string {
	return fmt.Sprintf(`"%s"`, exePath)
}
