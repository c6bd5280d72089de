package opengate

import "strings"

// unknownStr is the string representation for unknown enum values.
const unknownStr = "unknown"

// Program identifies a recognized external handler application.
// The set is closed: a request either names one of these programs or is
// rejected with UnknownProgramError before anything is launched.
type Program int

const (
	// ProgramOpen is the macOS "open" utility.
	ProgramOpen Program = iota

	// ProgramStart is the Windows "start" shell builtin.
	ProgramStart

	// ProgramXdgOpen is the freedesktop "xdg-open" utility.
	ProgramXdgOpen

	// ProgramGio is the GNOME "gio" utility.
	ProgramGio

	// ProgramGnomeOpen is the legacy GNOME "gnome-open" utility.
	ProgramGnomeOpen

	// ProgramKdeOpen is the KDE "kde-open" utility.
	ProgramKdeOpen

	// ProgramWslView is the WSL "wslview" utility.
	ProgramWslView

	// ProgramFirefox is the Mozilla Firefox browser.
	ProgramFirefox

	// ProgramChrome is the Google Chrome browser.
	ProgramChrome

	// ProgramChromium is the Chromium browser.
	ProgramChromium

	// ProgramSafari is the Apple Safari browser.
	ProgramSafari
)

// ParseProgram parses a handler program token. Matching is case-insensitive
// and accepts "google chrome" as an alias for "chrome". Unrecognized tokens
// return an UnknownProgramError carrying the original input.
func ParseProgram(text string) (Program, error) {
	switch strings.ToLower(text) {
	case "open":
		return ProgramOpen, nil
	case "start":
		return ProgramStart, nil
	case "xdg-open":
		return ProgramXdgOpen, nil
	case "gio":
		return ProgramGio, nil
	case "gnome-open":
		return ProgramGnomeOpen, nil
	case "kde-open":
		return ProgramKdeOpen, nil
	case "wslview":
		return ProgramWslView, nil
	case "firefox":
		return ProgramFirefox, nil
	case "chrome", "google chrome":
		return ProgramChrome, nil
	case "chromium":
		return ProgramChromium, nil
	case "safari":
		return ProgramSafari, nil
	}
	return 0, &UnknownProgramError{Name: text}
}

// Name returns the canonical lowercase token for the program. It is stable
// across platforms and is the form used in parsing and error messages.
func (p Program) Name() string {
	switch p {
	case ProgramOpen:
		return "open"
	case ProgramStart:
		return "start"
	case ProgramXdgOpen:
		return "xdg-open"
	case ProgramGio:
		return "gio"
	case ProgramGnomeOpen:
		return "gnome-open"
	case ProgramKdeOpen:
		return "kde-open"
	case ProgramWslView:
		return "wslview"
	case ProgramFirefox:
		return "firefox"
	case ProgramChrome:
		return "chrome"
	case ProgramChromium:
		return "chromium"
	case ProgramSafari:
		return "safari"
	default:
		return unknownStr
	}
}

// String returns the canonical token, same as Name.
func (p Program) String() string {
	return p.Name()
}

// ExecutableName returns the binary or application name passed to the
// platform opener. Utility programs keep their canonical token everywhere;
// browsers use the capitalized application name on macOS and a lowercase
// dashed binary name elsewhere. The split is fixed at build time by the
// build-tagged desktopAppNames table, never by runtime OS detection.
func (p Program) ExecutableName() string {
	if name, ok := desktopAppNames[p]; ok {
		return name
	}
	return p.Name()
}
