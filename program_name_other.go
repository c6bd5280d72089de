//go:build !darwin

package opengate

// desktopAppNames maps browser programs to their binary names on platforms
// that launch browsers by executable rather than by application bundle.
var desktopAppNames = map[Program]string{
	ProgramFirefox:  "firefox",
	ProgramChrome:   "google-chrome",
	ProgramChromium: "chromium",
	ProgramSafari:   "safari",
}
