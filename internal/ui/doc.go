// Package ui provides semantic text formatting for terminal output.
//
// Formatters pair a color with a plain-text fallback so output stays
// readable when colors are unavailable. Color is disabled when NO_COLOR
// is set or the terminal does not support it.
//
// # Usage
//
//	msg := ui.Success.Sprint("✓") + " Scan complete: " + ui.Path.Sprint(dir)
package ui
