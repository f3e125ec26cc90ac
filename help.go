package parsley

import (
	"fmt"
	"io"
	"strings"

	"github.com/huandu/xstrings"
)

const (
	defaultHelpWidth = 92
	minHelpWidth     = 40

	// Width of the option name column; descriptions and their continuation
	// lines are indented to this.
	helpGap = 20
)

// VerbatimMarker as the first character of a description disables word
// wrapping: the rest of the description is emitted line for line, split on
// "\n". An escape hatch for pre-formatted help such as usage banners.
const VerbatimMarker = '!'

const terminatorDescription = "The null option indicating no more options. " +
	"This is useful if/when the initial parameters \"look like\" options. "

// SetHelpWidth sets the characters-per-line limit for wrapped help text.
// Values below 40 are clamped to 40; the default is 92.
func (p *Parsley) SetHelpWidth(cpl int) *Parsley {
	if cpl < minHelpWidth {
		cpl = minHelpWidth
	}
	p.cpl = cpl
	return p
}

// SetHelpBlankLines inserts a blank line between option blocks when set.
func (p *Parsley) SetHelpBlankLines(on bool) *Parsley {
	p.extraNewLine = on
	return p
}

// SetHelpShowTerminator appends an entry describing the "--" terminator
// when set.
func (p *Parsley) SetHelpShowTerminator(on bool) *Parsley {
	p.includeNoMore = on
	return p
}

// HelpString renders the option help as a string.
func (p *Parsley) HelpString() string {
	sb := strings.Builder{}
	p.WriteHelp(&sb)
	return sb.String()
}

// WriteHelp writes one block per option: the name column padded to a fixed
// gap, the word-wrapped description, and an auto-generated summary of
// constraints, defaults and environment variables where applicable.
func (p *Parsley) WriteHelp(w io.Writer) {
	gap := strings.Repeat(" ", helpGap)

	fmt.Fprintln(w, "Options:")

	for i := range p.specs {
		spec := &p.specs[i]

		if strings.HasPrefix(spec.description, string(VerbatimMarker)) {
			desc := spec.description[1:]
			prefix := xstrings.LeftJustify(spec.name()+" ", helpGap, " ")
			for _, part := range strings.Split(desc, "\n") {
				fmt.Fprintln(w, prefix+part)
				prefix = gap
			}
		} else {
			io.WriteString(w, formatLongLine(gap, spec.name(), spec.description, p.cpl))
		}

		if extra := spec.helpSummary(); extra != "" {
			io.WriteString(w, formatLongLine(gap, "", extra, p.cpl))
		}

		if p.extraNewLine {
			fmt.Fprintln(w)
		}
	}

	if p.includeNoMore {
		io.WriteString(w, formatLongLine(gap, "--", terminatorDescription, p.cpl))
	}
}

// formatLongLine word-wraps desc at cpl characters. The first line starts
// with name padded to the indent width; continuation lines start with the
// indent itself. Wrapping is greedy: a word is placed, then the line is
// flushed once it reaches the limit, so single oversize words still land on
// their own line.
func formatLongLine(indent, name, desc string, cpl int) string {
	sb := strings.Builder{}

	line := xstrings.LeftJustify(name+" ", xstrings.Len(indent), " ")
	first := true
	for _, word := range strings.Fields(desc) {
		if first {
			line += word
		} else {
			line += " " + word
		}
		first = false

		if xstrings.Len(line) >= cpl {
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = indent
			first = true
		}
	}
	if !first {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// helpSummary builds the trailing constraint/default/env line for a spec,
// or "" when none of them apply.
func (s *OptionSpec) helpSummary() string {
	extra := ""

	// With a default defined, input is not required per se.
	if s.isRequired && !s.defaultDefined {
		extra += "Required. "
	}

	switch s.kind {
	case KindFlag:
		if s.envDefined {
			extra += "Use the " + s.envName +
				" environment variable set to 'Y', 'YES' or '1' to set flag on. "
		}

	case KindStr:
		extra += s.helpDefault()
		extra += s.helpEnvVar()

	case KindEnum, KindInt, KindReal:
		extra += s.helpConstraint()
		extra += s.helpDefault()
		extra += s.helpEnvVar()
	}

	return extra
}

func (s *OptionSpec) helpConstraint() string {
	switch s.kind {
	case KindEnum:
		return "Allowed values: " + s.enumSet() + ". "
	case KindInt, KindReal:
		if s.rangeDefined {
			return "Range: " + s.rangeImage() + ". "
		}
	}
	return ""
}

func (s *OptionSpec) helpDefault() string {
	if !s.defaultDefined {
		return ""
	}

	result := "Default value: "
	switch s.kind {
	case KindFlag:
		result += "n/a"
	case KindStr, KindEnum:
		result += "'" + s.defaultStr + "'"
	case KindInt:
		result += Int2Str(s.defaultInt)
	case KindReal:
		result += Real2Str(s.defaultReal)
	}
	return result + ". "
}

func (s *OptionSpec) helpEnvVar() string {
	if !s.envDefined {
		return ""
	}

	result := "Use the " + s.envName + " environment variable to "
	if s.defaultDefined {
		result += "override the default value. "
	} else {
		result += "provide a default value. "
	}
	return result
}
