//go:build darwin

package opengate

// desktopAppNames maps browser programs to the application names understood
// by "open -a" on macOS.
var desktopAppNames = map[Program]string{
	ProgramFirefox:  "Firefox",
	ProgramChrome:   "Google Chrome",
	ProgramChromium: "Chromium",
	ProgramSafari:   "Safari",
}
