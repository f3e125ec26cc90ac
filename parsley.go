package parsley

// Parsley owns an ordered collection of option specifications and parses
// argument vectors against them. Construct with New, then call Process;
// a single Parsley may be reused for sequential Process calls, but it is
// not safe for concurrent ones.
type Parsley struct {
	specs   []OptionSpec
	byLong  map[string]int
	byShort map[rune]int
	specsOK bool

	err        error
	values     Values
	parameters []string

	env Env

	// help rendering settings
	cpl           int
	extraNewLine  bool
	includeNoMore bool
}

// New constructs a registry from the given specs. Conflicting long or short
// names are reported through the warning sink and permanently invalidate
// the registry; every later Process call then fails with a fixed
// specification-error message. New itself never fails, which keeps fluent
// construction chains simple.
func New(specs ...OptionSpec) *Parsley {
	p := &Parsley{
		specs:   specs,
		byLong:  make(map[string]int, len(specs)),
		byShort: make(map[rune]int, len(specs)),
		specsOK: true,
		env:     OSEnv{},
		cpl:     defaultHelpWidth,
	}

	for i, a := range specs {
		for _, b := range specs[i+1:] {
			if a.longName == b.longName ||
				(a.shortName != NoShort && a.shortName == b.shortName) {
				warnf("conflicting option names: %s and %s", a.name(), b.name())
				p.specsOK = false
			}
		}
		if _, dup := p.byLong[a.longName]; !dup {
			p.byLong[a.longName] = i
		}
		if a.shortName != NoShort {
			if _, dup := p.byShort[a.shortName]; !dup {
				p.byShort[a.shortName] = i
			}
		}
	}

	return p
}

// SetEnv replaces the environment used for EnvVar lookups. The default is
// OSEnv; tests typically substitute a MapEnv.
func (p *Parsley) SetEnv(env Env) *Parsley {
	if env != nil {
		p.env = env
	}
	return p
}

// ErrorMessage returns the first error detected by the most recent Process
// call, or "" if it succeeded.
func (p *Parsley) ErrorMessage() string {
	if p.err == nil {
		return ""
	}
	return p.err.Error()
}

// Options returns the option values resolved by the most recent successful
// Process call.
func (p *Parsley) Options() Values {
	return p.values
}

// Parameters returns the arguments not consumed as options, in their
// original order. Parsley does not interpret parameters.
func (p *Parsley) Parameters() []string {
	return p.parameters
}

// OptionValue is the parsed result for one option. Only the field matching
// the option's kind is meaningful: Flag for flags, Str for strings and
// enumerations (Ival then holds the enumeration ordinal), Ival for
// integers, Real for reals. IsDefined reports whether the value was set at
// all, whether explicitly, via environment variable, or by default.
type OptionValue struct {
	IsDefined bool
	Flag      bool
	Str       string
	Ival      int
	Real      float64
}

// Values is a read-only lookup of parsed option values by long name.
type Values struct {
	vals map[string]OptionValue
}

// Get returns the value for the named option. Unknown names yield a zero
// OptionValue rather than an error; the returned record is a copy and never
// aliases parser state.
func (vs Values) Get(name string) OptionValue {
	return vs.vals[name]
}
