package opengate

import (
	"errors"
	"testing"
)

func TestApplyOptionsEmpty(t *testing.T) {
	o := applyOptions(nil)
	if o.program != nil || o.hasProgramName || len(o.allows) != 0 || len(o.denies) != 0 {
		t.Errorf("zero options produced non-empty callOptions: %+v", o)
	}
	_, has, err := o.resolveProgram()
	if err != nil || has {
		t.Errorf("resolveProgram on empty options = (%v, %v), want no program", has, err)
	}
}

func TestWithProgram(t *testing.T) {
	o := applyOptions([]Option{WithProgram(ProgramFirefox)})
	p, has, err := o.resolveProgram()
	if err != nil {
		t.Fatal(err)
	}
	if !has || p != ProgramFirefox {
		t.Errorf("resolveProgram = (%v, %v)", p, has)
	}
}

func TestWithProgramName(t *testing.T) {
	o := applyOptions([]Option{WithProgramName("chromium")})
	p, has, err := o.resolveProgram()
	if err != nil {
		t.Fatal(err)
	}
	if !has || p != ProgramChromium {
		t.Errorf("resolveProgram = (%v, %v)", p, has)
	}
}

func TestWithProgramNameUnknown(t *testing.T) {
	o := applyOptions([]Option{WithProgramName("netscape")})
	_, _, err := o.resolveProgram()
	if !errors.Is(err, ErrUnknownProgram) {
		t.Errorf("error = %v, want ErrUnknownProgram", err)
	}
}

func TestWithProgramWinsOverName(t *testing.T) {
	o := applyOptions([]Option{WithProgramName("netscape"), WithProgram(ProgramSafari)})
	p, has, err := o.resolveProgram()
	if err != nil {
		t.Fatalf("typed program must win over the unparsable token: %v", err)
	}
	if !has || p != ProgramSafari {
		t.Errorf("resolveProgram = (%v, %v)", p, has)
	}
}

func TestCallScopeOptionsAccumulate(t *testing.T) {
	o := applyOptions([]Option{
		WithCallAllows(URLEntry("https://a.example.com/*")),
		WithCallAllows(PathEntry("/srv/a/**")),
		WithCallDenies(URLEntry("https://b.example.com/*")),
	})
	if len(o.allows) != 2 {
		t.Errorf("allows = %v, want 2 entries", o.allows)
	}
	if len(o.denies) != 1 {
		t.Errorf("denies = %v, want 1 entry", o.denies)
	}
}

func TestWithCallAllowsCopiesInput(t *testing.T) {
	entries := []Entry{URLEntry("https://a.example.com/*")}
	opt := WithCallAllows(entries...)
	entries[0] = URLEntry("https://mutated.example.com/*")

	o := applyOptions([]Option{opt})
	if o.allows[0].Pattern != "https://a.example.com/*" {
		t.Errorf("option captured aliased slice: %v", o.allows)
	}
}
