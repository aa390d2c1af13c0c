// If you are AI: This is the main entrypoint for the flvkit command.
// It dispatches to the dump, seek, slice and serve subcommands.

package main

import (
	"fmt"
	"io"
	"os"
)

// usage is printed for unknown or missing subcommands.
const usage = `usage: flvkit <command> [flags]

commands:
  dump   -f FILE                      print every header, tag and metadata field
  seek   -f FILE -s MS                resolve a timestamp to a keyframe offset
  slice  -f FILE -s MS -e MS -o OUT   copy a time range into a new file
  serve  -config FILE                 serve files over HTTP-FLV and WebSocket-FLV
`

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// command runs one subcommand with its own arguments.
type command func(args []string, stdout, stderr io.Writer) int

// commands maps subcommand names to their implementations.
var commands = map[string]command{
	"dump":  runDump,
	"seek":  runSeek,
	"slice": runSlice,
	"serve": runServe,
}

// main is the entrypoint for flvkit.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		if args[0] == "-h" || args[0] == "help" {
			fmt.Fprint(stdout, usage)
			return exitOK
		}
		fmt.Fprintf(stderr, "flvkit: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}
	return cmd(args[1:], stdout, stderr)
}
