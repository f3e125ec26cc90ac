package parsley

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// workValue is the per-option scratch record for one Process call. The
// arena of these is rebuilt from scratch at every call, so results of one
// invocation never leak into the next.
type workValue struct {
	OptionValue
	seen bool // set on the command line during this scan
}

// Process parses the given argument vector against the registered specs.
// When skipProgramName is true the zeroth argument is ignored, matching the
// conventional Process(os.Args, true) call.
//
// Values resolve in three phases: defaults and environment variables first,
// then the token scan, then the required-option check. Process stops at the
// first error; on failure ErrorMessage describes it and neither Options nor
// Parameters is meaningful. Recognizing a singleton option ends the scan
// immediately with success, skipping the required-option check.
func (p *Parsley) Process(args []string, skipProgramName bool) error {
	p.err = nil
	p.values = Values{}
	p.parameters = nil

	if !p.specsOK {
		return p.fail(errors.New("option specification errors"))
	}

	// Phase one: seed each option from its default, then let a configured
	// environment variable override it.
	work := make([]workValue, len(p.specs))
	for i := range p.specs {
		spec := &p.specs[i]
		wv := &work[i]
		wv.IsDefined = spec.defaultDefined

		evValue := ""
		evAvailable := false
		if spec.envDefined {
			evValue, evAvailable = p.env.Lookup(spec.envName)
		}

		switch spec.kind {
		case KindFlag:
			// Flags carry an implicit default of false; only a recognized
			// truthy value turns them on.
			if evAvailable && (evValue == "1" || evValue == "Y" || evValue == "YES") {
				wv.Flag = true
			}

		case KindStr:
			wv.Str = spec.defaultStr
			if evAvailable {
				wv.Str = evValue
				wv.IsDefined = true
			}

		case KindEnum:
			wv.Str = spec.defaultStr
			source := "default"
			if evAvailable {
				source = "environment variable " + spec.envName
				wv.Str = evValue
				wv.IsDefined = true
			}
			if wv.IsDefined {
				wv.Ival = slices.Index(spec.enumOptions, wv.Str)
				if wv.Ival < 0 {
					return p.fail(errors.Errorf(
						"invalid %s value for %s : %s is not one of %s",
						source, spec.name(), wv.Str, spec.enumSet()))
				}
			}

		case KindInt:
			wv.Ival = spec.defaultInt
			if evAvailable {
				v, ok := Str2Int(evValue)
				if !ok {
					return p.fail(errors.Errorf(
						"invalid environment variable %s value for %s : '%s' is not a valid integer.",
						spec.envName, spec.name(), evValue))
				}
				wv.Ival = v
				wv.IsDefined = true
			}

		case KindReal:
			wv.Real = spec.defaultReal
			if evAvailable {
				v, ok := Str2Real(evValue)
				if !ok {
					return p.fail(errors.Errorf(
						"invalid environment variable %s value for %s : '%s' is not a valid floating point number.",
						spec.envName, spec.name(), evValue))
				}
				wv.Real = v
				wv.IsDefined = true
			}
		}
	}

	// Phase two: scan the tokens.
	optionsComplete := false
	start := 0
	if skipProgramName {
		start = 1
	}
	for i := start; i < len(args); i++ {
		arg := args[i]

		if optionsComplete {
			p.parameters = append(p.parameters, arg)
			continue
		}

		if arg == "--" {
			// The null option: no more options follow. Useful when a
			// parameter starts with a dash.
			optionsComplete = true
			continue
		}

		if len(arg) == 0 || arg[0] != '-' {
			// Not an option, so it is the first parameter.
			p.parameters = append(p.parameters, arg)
			optionsComplete = true
			continue
		}

		idx := -1
		if len(arg) == 2 {
			// Short form, e.g. -h, -x.
			if j, ok := p.byShort[rune(arg[1])]; ok {
				idx = j
			}
		} else if len(arg) >= 3 && strings.HasPrefix(arg, "--") {
			// Long form, e.g. --help.
			if j, ok := p.byLong[arg[2:]]; ok {
				idx = j
			}
		} else {
			// Something like -xyz; bundled short options are not supported.
			return p.fail(errors.Errorf("invalid option format: %s", arg))
		}

		if idx < 0 {
			return p.fail(errors.Errorf("no such option: %s", arg))
		}

		spec := &p.specs[idx]
		wv := &work[idx]

		if wv.seen {
			return p.fail(errors.Errorf("duplicate option: %s", spec.name()))
		}
		wv.seen = true

		argValue := ""
		if spec.kind != KindFlag {
			i++
			if i >= len(args) {
				return p.fail(errors.Errorf("option %s requires an argument.", spec.name()))
			}
			argValue = args[i]
		}

		switch spec.kind {
		case KindFlag:
			wv.Flag = true
			wv.IsDefined = true

		case KindStr:
			wv.Str = argValue
			wv.IsDefined = true

		case KindEnum:
			wv.Ival = slices.Index(spec.enumOptions, argValue)
			if wv.Ival < 0 {
				return p.fail(errors.Errorf(
					"invalid value for %s : %s is not one of %s",
					spec.name(), argValue, spec.enumSet()))
			}
			wv.Str = argValue
			wv.IsDefined = true

		case KindInt:
			v, ok := Str2Int(argValue)
			if !ok {
				return p.fail(errors.Errorf(
					"invalid value for %s : '%s' is not a valid integer.",
					spec.name(), argValue))
			}
			if spec.rangeDefined && (v < spec.minInt || v > spec.maxInt) {
				return p.fail(errors.Errorf(
					"invalid value for %s : %s is out of range %s.",
					spec.name(), Int2Str(v), spec.rangeImage()))
			}
			wv.Ival = v
			wv.IsDefined = true

		case KindReal:
			v, ok := Str2Real(argValue)
			if !ok {
				return p.fail(errors.Errorf(
					"invalid value for %s : '%s' is not a valid floating point number.",
					spec.name(), argValue))
			}
			if spec.rangeDefined && (v < spec.minReal || v > spec.maxReal) {
				return p.fail(errors.Errorf(
					"invalid value for %s : %s is out of range %s.",
					spec.name(), Real2Str(v), spec.rangeImage()))
			}
			wv.Real = v
			wv.IsDefined = true
		}

		// A singleton overrides all else, including required-option checks.
		if spec.isSingleton {
			return p.succeed(work)
		}
	}

	// Phase three: verify every required option resolved to a value. This
	// only matters for options with no default, since a defined default
	// always satisfies the requirement.
	for i := range p.specs {
		spec := &p.specs[i]
		if spec.isRequired && !work[i].IsDefined {
			return p.fail(errors.Errorf("a value is required for: %s", spec.name()))
		}
	}

	return p.succeed(work)
}

func (p *Parsley) fail(err error) error {
	p.err = err
	p.parameters = nil
	return err
}

func (p *Parsley) succeed(work []workValue) error {
	vals := make(map[string]OptionValue, len(p.specs))
	for i := range p.specs {
		vals[p.specs[i].longName] = work[i].OptionValue
	}
	p.values = Values{vals: vals}
	return nil
}
