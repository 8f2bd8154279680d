// Command posixgrep prints the lines of a file that match a POSIX ERE
// subset pattern, the same contract grep's simplest form has: one pattern,
// one file, matching lines to stdout.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/dsavage/posixre"
)

const (
	exitMatched   = 0
	exitNoMatch   = 1
	exitUsageOrIO = 2
)

type options struct {
	Color bool `short:"c" long:"color" description:"Reserved for highlighting matches; currently a no-op"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "posixgrep"
	parser.Usage = "[OPTIONS] PATTERN FILE"

	args, err := parser.ParseArgs(argv)
	if err != nil {
		if flags.WroteHelp(err) {
			return exitNoMatch
		}
		return exitUsageOrIO
	}
	if len(args) != 2 {
		log.Println("posixgrep: expected exactly two arguments: PATTERN and FILE")
		return exitUsageOrIO
	}
	pattern, path := args[0], args[1]

	prog, err := posixre.Compile(pattern)
	if err != nil {
		log.Printf("posixgrep: %v", err)
		return exitUsageOrIO
	}

	matched, err := grepFile(prog, path, os.Stdout)
	if err != nil {
		log.Printf("posixgrep: %v", err)
		return exitUsageOrIO
	}
	if matched {
		return exitMatched
	}
	return exitNoMatch
}

// grepFile streams path line by line, writing to out every line prog
// matches, and reports whether at least one line matched.
func grepFile(prog *posixre.Program, path string, out *os.File) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	matched := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		ok, err := prog.Match(line)
		if err != nil {
			return matched, errors.Wrapf(err, "matching line %q", line)
		}
		if ok {
			matched = true
			fmt.Fprintln(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return matched, errors.Wrap(err, "reading file")
	}
	return matched, nil
}
