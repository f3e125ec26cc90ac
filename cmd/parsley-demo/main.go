// Command parsley-demo exercises the parsley library against a handful of
// option specification groups. The first argument selects the group; the
// remaining arguments are parsed against it:
//
//	parsley-demo <group> [options] [parameters...]
//
// Group 1 has no specs at all, group 2 declares one option of each kind,
// group 3 adds defaults, and group 4 adds environment variable
// fallbacks (PARSLEY_FLAG, PARSLEY_STR, PARSLEY_ENUM, PARSLEY_INT,
// PARSLEY_REAL). Pass --env-file before the group number to read those
// variables from a KEY=VAL file instead of the process environment.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"
	"github.com/parsley-go/parsley"
)

var modeChoice = []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff"}

func groupSpecs(group int) []parsley.OptionSpec {
	switch group {
	case 1:
		// No specs at all: every argument is a parameter.
		return []parsley.OptionSpec{}
	case 2:
		return []parsley.OptionSpec{
			parsley.FlagSpec("flag", 'f', "The flag option description.", false),
			parsley.StrSpec("string", 's', "The string option description.", false),
			parsley.EnumSpec("mode", 'm', "The mode option description.", modeChoice, false),
			parsley.IntSpec("number", 'n', "The number option description.", false),
			parsley.RealSpec("real", 'r', "The real option description.", false),
			parsley.VersionSpec(),
			parsley.HelpSpec(),
		}
	case 3:
		return []parsley.OptionSpec{
			parsley.FlagSpec("flag", 'f', "The flag option description.", false),
			parsley.StrSpec("string", 's', "The string option description.", false).DefStr("one"),
			parsley.EnumSpec("mode", 'm', "The mode option description.", modeChoice, false).DefStr("eee"),
			parsley.IntSpec("number", 'n', "The number option description.", false).DefInt(10),
			parsley.RealSpec("real", 'r', "The real option description.", false).DefReal(31.6227),
			parsley.VersionSpec(),
			parsley.HelpSpec(),
		}
	case 4:
		return []parsley.OptionSpec{
			parsley.FlagSpec("flag", 'f', "The flag option description.", false).EnvVar("PARSLEY_FLAG"),
			parsley.StrSpec("string", 's', "The string option description.", false).EnvVar("PARSLEY_STR"),
			parsley.EnumSpec("mode", 'm', "The mode option description.", modeChoice, false).EnvVar("PARSLEY_ENUM"),
			parsley.IntSpec("number", 'n', "The number option description.", false).EnvVar("PARSLEY_INT"),
			parsley.RealSpec("real", 'r', "The real option description.", false).EnvVar("PARSLEY_REAL"),
			parsley.VersionSpec(),
			parsley.HelpSpec(),
		}
	}
	return nil
}

func dump(options parsley.Values, name string) {
	value := options.Get(name)
	defined := "not defined"
	if value.IsDefined {
		defined = "defined"
	}
	flag := "unset"
	if value.Flag {
		flag = "set"
	}
	fmt.Printf("%-12s %-12s flag: %-6s ival: %10d real: %10g str: '%s'\n",
		name, defined, flag, value.Ival, value.Real, value.Str)
}

func run() int {
	args := os.Args[1:]

	env := parsley.Env(parsley.OSEnv{})
	if len(args) >= 2 && args[0] == "--env-file" {
		ef, err := parsley.ParseEnvFile(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), err)
			return 1
		}
		env = ef
		args = args[2:]
	}

	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: parsley-demo [--env-file FILE] <group 1..4> [options] [parameters...]")
		return 1
	}

	group, ok := parsley.Str2Int(args[0])
	if !ok || groupSpecs(group) == nil {
		fmt.Fprintf(os.Stderr, "invalid group number: %s\n", args[0])
		return 4
	}

	parser := parsley.New(groupSpecs(group)...).SetEnv(env)
	parser.SetHelpShowTerminator(true)

	// Re-prefix the program name so the group selector is not parsed.
	if err := parser.Process(append([]string{os.Args[0]}, args[1:]...), true); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n\n", color.RedString("error:"), err)
		parser.WriteHelp(os.Stderr)
		return 2
	}

	options := parser.Options()

	if v := options.Get("help"); v.IsDefined && v.Flag {
		parser.WriteHelp(os.Stdout)
		return 0
	}
	if v := options.Get("version"); v.IsDefined && v.Flag {
		fmt.Println(parsley.VersionString)
		return 0
	}

	for _, name := range []string{"flag", "string", "mode", "number", "real", "mistake"} {
		dump(options, name)
	}

	fmt.Println("params:", shellquote.Join(parser.Parameters()...))
	return 0
}

func main() {
	os.Exit(run())
}
