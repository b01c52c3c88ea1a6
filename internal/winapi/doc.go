// Package winapi holds the user32/gdi32/shell32 entry points, structures and
// constants shared by the overlay, tray and host windows.
//
// Everything except this file is Windows-only.
package winapi
