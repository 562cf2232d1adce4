// Command msgfmt is a small CLI demo of the Formatter Facade: it parses a
// pattern plus shell-style "name=value" arguments and prints the formatted
// result. It carries no [MODULE] of its own (spec.md §2 places CLI/build
// scripts out of the core budget); it exists only as the ambient-stack
// texture every teacher repo in the pack ships a cmd/<name>/main.go for.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"

	"github.com/aretext/messageformat/msgfmt"
)

var localeFlag = flag.String("locale", "en", "target locale")
var fallbackFlag = flag.String("fallback", "", "fallback locale if -locale can't be resolved")
var htmlFlag = flag.Bool("html", false, "format as HTML (escape string args, disable tag parsing)")
var strictFlag = flag.Bool("strict", false, "fail on missing arguments instead of rendering them empty")
var argsFlag = flag.String("args", "", `arguments as shell-style "name=value" pairs, e.g. -args 'name="World" count=5'`)

func main() {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	pattern := flag.Arg(0)

	args, err := parseArgs(*argsFlag)
	if err != nil {
		exitWithError(err)
	}

	f, err := msgfmt.New(*localeFlag, msgfmt.Options{
		Fallback:        *fallbackFlag,
		StrictVariables: *strictFlag,
	})
	if err != nil {
		exitWithError(err)
	}

	var out string
	if *htmlFlag {
		out, err = f.FormatHTML(pattern, args)
	} else {
		out, err = f.Format(pattern, args)
	}
	if err != nil {
		exitWithError(err)
	}

	fmt.Println(out)
}

// parseArgs splits raw with shlex (the way aretext/app/shellcmd.go splits
// shell-style command strings) into "name=value" tokens and converts each
// value to a number or bool where it parses as one, else leaves it as a
// string.
func parseArgs(raw string) (map[string]any, error) {
	out := make(map[string]any)
	if raw == "" {
		return out, nil
	}
	tokens, err := shlex.Split(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "shlex.Split")
	}
	for _, tok := range tokens {
		name, value, ok := strings.Cut(tok, "=")
		if !ok {
			log.Printf("ignoring malformed argument %q (expected name=value)\n", tok)
			continue
		}
		out[name] = coerceValue(value)
	}
	return out, nil
}

func coerceValue(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func printUsage() {
	f := flag.CommandLine.Output()
	fmt.Fprintf(f, "Usage: %s [OPTIONS] pattern\n", os.Args[0])
	flag.PrintDefaults()
}

func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
