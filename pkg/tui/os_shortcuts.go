package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.getFor(GetOS())
}

func (s ShortcutKey) getFor(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Keys returns the OS-specific shortcut followed by the default one, without duplicates
func (s ShortcutKey) Keys() []string {
	primary := s.Get()
	if s.Default == "" || s.Default == primary {
		return []string{primary}
	}
	return []string{primary, s.Default}
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	return s.getWithWarningFor(GetOS())
}

func (s ShortcutKey) getWithWarningFor(os OSType) (shortcut string, warning string) {
	shortcut = s.getFor(os)

	switch os {
	case OSLinux:
		switch shortcut {
		case "^s", "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "^d", "ctrl+d":
			warning = "(caution: EOF signal)"
		}
	case OSWindows:
		switch shortcut {
		case "shift+tab", "backtab":
			warning = "(terminal dependent)"
		}
	}

	return shortcut, warning
}

// Shortcuts used by the playlist builder
var Shortcuts = struct {
	Submit        ShortcutKey
	ClearOrRemove ShortcutKey
	CopyURL       ShortcutKey
	Next          ShortcutKey
	Previous      ShortcutKey
	Help          ShortcutKey
	Quit          ShortcutKey
	Cancel        ShortcutKey
	Confirm       ShortcutKey
}{
	Submit: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	ClearOrRemove: ShortcutKey{
		Mac:     "ctrl+d",
		Linux:   "alt+d", // Avoid Ctrl+D EOF signal
		Windows: "alt+d",
		Default: "ctrl+d",
	},
	CopyURL: ShortcutKey{
		Default: "ctrl+y",
	},
	Next: ShortcutKey{
		Default: "tab",
	},
	Previous: ShortcutKey{
		Mac:     "shift+tab",
		Linux:   "shift+tab",
		Windows: "backtab",
		Default: "shift+tab",
	},
	Help: ShortcutKey{
		Default: "f1",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Confirm: ShortcutKey{
		Default: "enter",
	},
}

// GetTerminalSetupMessage returns OS-specific terminal setup instructions
func GetTerminalSetupMessage() string {
	switch GetOS() {
	case OSLinux:
		return "TIP: Run 'stty -ixon' to enable Ctrl+S in your terminal"
	case OSWindows:
		return "TIP: For best experience, use Windows Terminal or PowerShell"
	default:
		return ""
	}
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(shortcut string) string {
	return formatShortcutFor(shortcut, GetOS())
}

func formatShortcutFor(shortcut string, os OSType) string {
	// M- prefix for Alt on Linux/Windows (common terminal convention)
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	// Function keys are shown upper case
	if strings.HasPrefix(shortcut, "f") && len(shortcut) <= 3 {
		return strings.ToUpper(shortcut)
	}

	return shortcut
}
