// Command mdreport converts Markdown files into paginated PDF reports.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args (including the program name), runs the conversion
// and returns the process exit code.
func runMain(args []string, env *Environment) int {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	flags, positional, err := parseFlags(rest)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "mdreport %s\n", Version)
		return ExitSuccess
	}

	if flags.tools.completion != "" {
		if err := GenerateCompletion(env.Stdout, Shell(flags.tools.completion)); err != nil {
			fmt.Fprintf(env.Stderr, "error: %v\n", err)
			return ExitUsage
		}
		return ExitSuccess
	}
	if flags.tools.doctor {
		return runDoctorCheck(flags.tools.json, env, defaultProbe())
	}

	env.SetMaxProcs(flags.common.verbose, env.Stderr)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
