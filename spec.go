package parsley

import (
	"slices"
	"strings"
)

// Kind identifies which of the five option flavors a spec describes, and
// therefore which OptionValue field carries its parsed value.
type Kind int

const (
	KindFlag Kind = iota
	KindStr
	KindEnum
	KindInt
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindStr:
		return "string"
	case KindEnum:
		return "enumeration"
	case KindInt:
		return "integer"
	case KindReal:
		return "real"
	}
	return "unknown"
}

// NoShort declares a spec with no short option name.
const NoShort rune = 0

// OptionSpec describes a single command line option. Specs are plain
// values: the factories below construct them and the qualifier methods
// return qualified copies, so a spec held by one registry can never be
// changed by another holder.
type OptionSpec struct {
	kind        Kind
	longName    string
	shortName   rune
	description string
	isRequired  bool
	isSingleton bool

	enumOptions []string

	rangeDefined bool
	minInt       int
	maxInt       int
	minReal      float64
	maxReal      float64

	envDefined bool
	envName    string

	defaultDefined bool
	defaultStr     string
	defaultInt     int
	defaultReal    float64
}

// FlagSpec constructs a boolean flag option. Flags are implicitly optional
// with an implicit default of false. A singleton flag stops parsing with
// success as soon as it is seen on the command line; this is how
// --help/--version style options succeed even when required options are
// missing.
func FlagSpec(longName string, shortName rune, description string, isSingleton bool) OptionSpec {
	return OptionSpec{
		kind:           KindFlag,
		longName:       longName,
		shortName:      shortName,
		description:    description,
		isSingleton:    isSingleton,
		defaultDefined: true,
	}
}

// StrSpec constructs a string option.
func StrSpec(longName string, shortName rune, description string, isRequired bool) OptionSpec {
	return OptionSpec{
		kind:        KindStr,
		longName:    longName,
		shortName:   shortName,
		description: description,
		isRequired:  isRequired,
	}
}

// EnumSpec constructs an enumeration option limited to the given values.
// Matching is exact and case-sensitive.
func EnumSpec(longName string, shortName rune, description string, enumOptions []string, isRequired bool) OptionSpec {
	return OptionSpec{
		kind:        KindEnum,
		longName:    longName,
		shortName:   shortName,
		description: description,
		isRequired:  isRequired,
		enumOptions: slices.Clone(enumOptions),
	}
}

// IntSpec constructs an integer option.
func IntSpec(longName string, shortName rune, description string, isRequired bool) OptionSpec {
	return OptionSpec{
		kind:        KindInt,
		longName:    longName,
		shortName:   shortName,
		description: description,
		isRequired:  isRequired,
	}
}

// RealSpec constructs a floating point option.
func RealSpec(longName string, shortName rune, description string, isRequired bool) OptionSpec {
	return OptionSpec{
		kind:        KindReal,
		longName:    longName,
		shortName:   shortName,
		description: description,
		isRequired:  isRequired,
	}
}

// HelpSpec provides the conventional "-h, --help" singleton.
func HelpSpec() OptionSpec {
	return FlagSpec("help", 'h', "Show this message and exit.", true)
}

// VersionSpec provides the conventional "-V, --version" singleton.
func VersionSpec() OptionSpec {
	return FlagSpec("version", 'V', "Show version and exit.", true)
}

// LongName returns the option's long name, the key used with Values.Get.
func (s OptionSpec) LongName() string {
	return s.longName
}

// DefStr adds a default value to a string or enumeration option spec.
// Misapplied or repeated qualifiers warn and leave the spec unchanged.
func (s OptionSpec) DefStr(defValue string) OptionSpec {
	switch {
	case s.kind != KindStr && s.kind != KindEnum:
		warnf("default string value for %s ignored.", s.info())
	case s.defaultDefined:
		warnf("secondary default value for %s ignored.", s.info())
	case s.kind == KindEnum && slices.Index(s.enumOptions, defValue) < 0:
		warnf("the default value for %s is not an allowed value.", s.info())
	default:
		s.defaultStr = defValue
		s.defaultDefined = true
	}
	return s
}

// DefInt adds a default value to an integer option spec.
func (s OptionSpec) DefInt(defValue int) OptionSpec {
	switch {
	case s.kind != KindInt:
		warnf("default integer value for %s ignored.", s.info())
	case s.defaultDefined:
		warnf("secondary default value for %s ignored.", s.info())
	default:
		if s.rangeDefined && (defValue < s.minInt || defValue > s.maxInt) {
			warnf("the default value for %s is out of range.", s.info())
		}
		s.defaultInt = defValue
		s.defaultDefined = true
	}
	return s
}

// DefReal adds a default value to a real option spec.
func (s OptionSpec) DefReal(defValue float64) OptionSpec {
	switch {
	case s.kind != KindReal:
		warnf("default real value for %s ignored.", s.info())
	case s.defaultDefined:
		warnf("secondary default value for %s ignored.", s.info())
	default:
		if s.rangeDefined && (defValue < s.minReal || defValue > s.maxReal) {
			warnf("the default value for %s is out of range.", s.info())
		}
		s.defaultReal = defValue
		s.defaultDefined = true
	}
	return s
}

// IntRange adds an inclusive [min,max] constraint to an integer option spec.
func (s OptionSpec) IntRange(min, max int) OptionSpec {
	switch {
	case s.kind != KindInt:
		warnf("integer range constraint for %s ignored.", s.info())
	case s.rangeDefined:
		warnf("secondary range constraint for %s ignored.", s.info())
	default:
		if s.defaultDefined && (s.defaultInt < min || s.defaultInt > max) {
			warnf("the default value for %s is out of range.", s.info())
		}
		s.minInt = min
		s.maxInt = max
		s.rangeDefined = true
	}
	return s
}

// RealRange adds an inclusive [min,max] constraint to a real option spec.
func (s OptionSpec) RealRange(min, max float64) OptionSpec {
	switch {
	case s.kind != KindReal:
		warnf("real range constraint for %s ignored.", s.info())
	case s.rangeDefined:
		warnf("secondary range constraint for %s ignored.", s.info())
	default:
		if s.defaultDefined && (s.defaultReal < min || s.defaultReal > max) {
			warnf("the default value for %s is out of range.", s.info())
		}
		s.minReal = min
		s.maxReal = max
		s.rangeDefined = true
	}
	return s
}

// EnvVar names an environment variable that supplies the option value when
// it is not given on the command line. An empty name defines nothing.
func (s OptionSpec) EnvVar(envVarName string) OptionSpec {
	if s.envDefined {
		warnf("secondary environment variable for %s ignored.", s.info())
		return s
	}
	s.envName = envVarName
	s.envDefined = envVarName != ""
	return s
}

// name renders the option as it appears in error messages and help text,
// e.g. "-n, --number" or "--number".
func (s OptionSpec) name() string {
	if s.shortName != NoShort {
		return "-" + string(s.shortName) + ", --" + s.longName
	}
	return "--" + s.longName
}

// info identifies the spec in warning messages.
func (s OptionSpec) info() string {
	return "the " + s.kind.String() + " option '" + s.longName + "'"
}

// rangeImage renders the configured range as "min to max".
func (s OptionSpec) rangeImage() string {
	if !s.rangeDefined {
		return ""
	}
	switch s.kind {
	case KindInt:
		return Int2Str(s.minInt) + " to " + Int2Str(s.maxInt)
	case KindReal:
		return Real2Str(s.minReal) + " to " + Real2Str(s.maxReal)
	}
	return ""
}

// enumSet renders the allowed enumeration values as "(aaa, bbb, ccc)".
func (s OptionSpec) enumSet() string {
	if s.kind != KindEnum {
		return "(nil)"
	}
	return "(" + strings.Join(s.enumOptions, ", ") + ")"
}
