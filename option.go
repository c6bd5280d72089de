package opengate

// Option configures a single OpenURL or OpenPath call.
type Option func(*callOptions)

// callOptions holds per-call configuration applied via Option functions.
type callOptions struct {
	program        *Program
	programName    string
	hasProgramName bool
	allows         []Entry
	denies         []Entry
}

func applyOptions(opts []Option) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// resolveProgram returns the handler program override for the call, if any.
// Token parsing is deferred to this point so an unknown name surfaces only
// after the scope decision has permitted the request.
func (o *callOptions) resolveProgram() (Program, bool, error) {
	if o.program != nil {
		return *o.program, true, nil
	}
	if o.hasProgramName {
		p, err := ParseProgram(o.programName)
		if err != nil {
			return 0, false, err
		}
		return p, true, nil
	}
	return 0, false, nil
}

// WithProgram requests a specific handler program for a single call instead
// of the system default handler.
func WithProgram(p Program) Option {
	return func(o *callOptions) {
		o.program = &p
	}
}

// WithProgramName requests a handler program by its token (e.g. "chrome",
// "google chrome") for a single call. Unknown tokens surface as an
// UnknownProgramError once the request is otherwise permitted. If WithProgram
// is also given, the typed program wins.
func WithProgramName(name string) Option {
	return func(o *callOptions) {
		o.programName = name
		o.hasProgramName = true
	}
}

// WithCallAllows adds allow entries scoped to a single call. They are merged
// with the global allow set for that request only.
func WithCallAllows(entries ...Entry) Option {
	cpy := append([]Entry(nil), entries...)
	return func(o *callOptions) {
		o.allows = append(o.allows, cpy...)
	}
}

// WithCallDenies adds deny entries scoped to a single call. They are merged
// with the global deny set for that request only, and win over every allow.
func WithCallDenies(entries ...Entry) Option {
	cpy := append([]Entry(nil), entries...)
	return func(o *callOptions) {
		o.denies = append(o.denies, cpy...)
	}
}
