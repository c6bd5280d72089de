package opengate

import (
	"errors"
	"testing"
)

func TestParseProgram(t *testing.T) {
	tests := []struct {
		input string
		want  Program
	}{
		{"open", ProgramOpen},
		{"start", ProgramStart},
		{"xdg-open", ProgramXdgOpen},
		{"gio", ProgramGio},
		{"gnome-open", ProgramGnomeOpen},
		{"kde-open", ProgramKdeOpen},
		{"wslview", ProgramWslView},
		{"firefox", ProgramFirefox},
		{"chrome", ProgramChrome},
		{"chromium", ProgramChromium},
		{"safari", ProgramSafari},
		// Case-insensitive.
		{"OPEN", ProgramOpen},
		{"Firefox", ProgramFirefox},
		{"XDG-Open", ProgramXdgOpen},
		// Alias.
		{"google chrome", ProgramChrome},
		{"GOOGLE CHROME", ProgramChrome},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProgram(tt.input)
			if err != nil {
				t.Fatalf("ParseProgram(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseProgram(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseProgramUnknown(t *testing.T) {
	_, err := ParseProgram("not-a-real-program")
	if err == nil {
		t.Fatal("ParseProgram: want error, got nil")
	}
	if !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("error %v does not wrap ErrUnknownProgram", err)
	}
	var upe *UnknownProgramError
	if !errors.As(err, &upe) {
		t.Fatalf("error %T is not *UnknownProgramError", err)
	}
	if upe.Name != "not-a-real-program" {
		t.Errorf("Name = %q, want the original token", upe.Name)
	}
}

func TestProgramName(t *testing.T) {
	tests := []struct {
		program Program
		want    string
	}{
		{ProgramOpen, "open"},
		{ProgramStart, "start"},
		{ProgramXdgOpen, "xdg-open"},
		{ProgramGio, "gio"},
		{ProgramGnomeOpen, "gnome-open"},
		{ProgramKdeOpen, "kde-open"},
		{ProgramWslView, "wslview"},
		{ProgramFirefox, "firefox"},
		{ProgramChrome, "chrome"},
		{ProgramChromium, "chromium"},
		{ProgramSafari, "safari"},
		{Program(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.program.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
			if got := tt.program.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgramNameRoundTrip(t *testing.T) {
	programs := []Program{
		ProgramOpen, ProgramStart, ProgramXdgOpen, ProgramGio, ProgramGnomeOpen,
		ProgramKdeOpen, ProgramWslView, ProgramFirefox, ProgramChrome,
		ProgramChromium, ProgramSafari,
	}
	for _, p := range programs {
		got, err := ParseProgram(p.Name())
		if err != nil {
			t.Errorf("ParseProgram(%q): %v", p.Name(), err)
			continue
		}
		if got != p {
			t.Errorf("ParseProgram(%q) = %v, want %v", p.Name(), got, p)
		}
	}
}

func TestUtilityExecutableNamesMatchCanonical(t *testing.T) {
	// Utility openers keep their canonical token on every platform; only the
	// browser programs vary by build target.
	utilities := []Program{
		ProgramOpen, ProgramStart, ProgramXdgOpen, ProgramGio,
		ProgramGnomeOpen, ProgramKdeOpen, ProgramWslView,
	}
	for _, p := range utilities {
		if got := p.ExecutableName(); got != p.Name() {
			t.Errorf("%v: ExecutableName() = %q, want canonical %q", p, got, p.Name())
		}
	}
}
