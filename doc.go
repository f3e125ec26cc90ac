/*
Package parsley parses command line options declared as a list of option
specifications.

Example

Widget program:

		package main

		import (
			"fmt"
			"os"

			"github.com/parsley-go/parsley"
		)

		func main() {
			parser := parsley.New(
				parsley.FlagSpec("verbose", 'v', "Show progress while running.", false),
				parsley.EnumSpec("mode", 'm', "Processing mode.",
					[]string{"fast", "careful"}, false).DefStr("fast"),
				parsley.IntSpec("number", 'n', "Number of widgets.", false).
					IntRange(1, 20).
					DefInt(4).
					EnvVar("NUMBER_OF_WIDGETS"),
				parsley.HelpSpec(),
			)

			if err := parser.Process(os.Args, true); err != nil {
				fmt.Fprintf(os.Stderr, "error: %s\n\n", err)
				parser.WriteHelp(os.Stderr)
				os.Exit(2)
			}

			options := parser.Options()
			if v := options.Get("help"); v.IsDefined && v.Flag {
				parser.WriteHelp(os.Stdout)
				return
			}

			fmt.Println("mode:", options.Get("mode").Str)
			fmt.Println("number:", options.Get("number").Ival)
			fmt.Println("params:", parser.Parameters())
		}

Usage:

		$ widgets --help
		Options:
		-v, --verbose       Show progress while running.
		-m, --mode          Processing mode.
		                    Allowed values: (fast, careful). Default value: 'fast'.
		-n, --number        Number of widgets.
		                    Range: 1 to 20. Default value: 4. Use the NUMBER_OF_WIDGETS environment variable
		                    to override the default value.
		-h, --help          Show this message and exit.
		$ NUMBER_OF_WIDGETS=12 widgets -m careful input.txt
		mode: careful
		number: 12
		params: [input.txt]

Option Specifications

Options come in five kinds: flag, string, enumeration, integer and real.
Each is declared with a factory (FlagSpec, StrSpec, EnumSpec, IntSpec,
RealSpec) naming its long name, optional one-rune short name (NoShort for
none) and help description. HelpSpec and VersionSpec provide the
conventional -h/--help and -V/--version singletons.

Specs are immutable values. Qualifier methods (DefStr, DefInt, DefReal,
IntRange, RealRange, EnvVar) each return a new spec with the qualifier
applied; the receiver is never modified, so a partially qualified spec can
be reused safely. A qualifier that does not fit the option kind, or that is
applied a second time, is dropped with a warning rather than failing, so
that every authoring mistake is reported in a single run. See SetWarningFunc
for routing those warnings.

Parsing

Process scans the argument vector left to right. Long options are "--name",
short options are "-c"; both take their value from the following token.
A bare "--" ends option parsing, as does the first token that does not
start with a dash; everything after is collected as positional parameters.
Values resolve in precedence order: command line, then environment variable
(when the spec names one), then declared default. An option marked as a
singleton (such as --help) short-circuits parsing with success as soon as
it is seen, skipping required-option checks entirely.

Each option may appear at most once; there is no short-flag bundling and
no "--name=value" form.
*/
package parsley
