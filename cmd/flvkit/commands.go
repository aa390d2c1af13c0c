// If you are AI: This file implements the file subcommands: dump, seek and slice.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"flvkit/internal/core/library"
	"flvkit/internal/core/protocol/flv"
	"flvkit/internal/logging"
	"flvkit/internal/source"
	"flvkit/internal/svc/inspect"
	"flvkit/internal/svc/slice"
)

// millis is a flag holding a 32-bit millisecond timestamp.
type millis uint32

// String returns the timestamp in decimal.
func (m *millis) String() string {
	return strconv.FormatUint(uint64(*m), 10)
}

// Set parses a decimal millisecond timestamp.
func (m *millis) Set(s string) error {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return fmt.Errorf("want milliseconds between 0 and %d", uint32(1<<32-1))
	}
	*m = millis(v)
	return nil
}

// fileFlags are shared by the commands that read one file.
type fileFlags struct {
	file     string
	mmap     bool
	truncate bool
	logLevel string
}

// newFlagSet creates a flag set with the shared file flags bound to ff.
func newFlagSet(name string, stderr io.Writer, ff *fileFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&ff.file, "f", "", "FLV file to read")
	fs.BoolVar(&ff.mmap, "mmap", false, "Map the file into memory instead of reading it")
	fs.BoolVar(&ff.truncate, "truncate-keyframes", false, "Accept keyframe arrays of different lengths")
	fs.StringVar(&ff.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	return fs
}

// parse parses args and checks the shared flags. It returns false after printing the problem.
func (ff *fileFlags) parse(fs *flag.FlagSet, args []string, stderr io.Writer) bool {
	if err := fs.Parse(args); err != nil {
		return false
	}
	if ff.file == "" {
		fmt.Fprintf(stderr, "flvkit %s: -f is required\n", fs.Name())
		return false
	}
	if err := logging.Setup(stderr, ff.logLevel, "text"); err != nil {
		fmt.Fprintf(stderr, "flvkit %s: %v\n", fs.Name(), err)
		return false
	}
	return true
}

// libraryOptions converts the shared flags to library options. One-shot commands skip the cache.
func (ff *fileFlags) libraryOptions() library.Options {
	return library.Options{
		Source: source.Options{Mmap: ff.mmap},
		Decode: flv.DecodeOptions{TruncateKeyframes: ff.truncate},
	}
}

// signalContext returns a context cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// fail prints err for the named command and returns exitError.
func fail(stderr io.Writer, name string, err error) int {
	fmt.Fprintf(stderr, "flvkit %s: %v\n", name, err)
	return exitError
}

// runDump prints every field of a file until the end or the first error.
func runDump(args []string, stdout, stderr io.Writer) int {
	var ff fileFlags
	fs := newFlagSet("dump", stderr, &ff)
	if !ff.parse(fs, args, stderr) {
		return exitUsage
	}

	f, err := source.Open(ff.file, source.Options{Mmap: ff.mmap})
	if err != nil {
		return fail(stderr, "dump", err)
	}
	defer f.Close()

	ctx, cancel := signalContext()
	defer cancel()

	r := flv.NewReader(f, flv.WithDecodeOptions(flv.DecodeOptions{TruncateKeyframes: ff.truncate}))
	if _, err := inspect.Dump(ctx, stdout, r); err != nil {
		return fail(stderr, "dump", err)
	}
	return exitOK
}

// runSeek resolves a timestamp against the keyframe index and prints where it landed.
func runSeek(args []string, stdout, stderr io.Writer) int {
	var ff fileFlags
	fs := newFlagSet("seek", stderr, &ff)
	var ts millis
	fs.Var(&ts, "s", "Timestamp in milliseconds")
	if !ff.parse(fs, args, stderr) {
		return exitUsage
	}

	h, err := library.New(ff.libraryOptions()).Open(ff.file)
	if err != nil {
		return fail(stderr, "seek", err)
	}
	defer h.Close()

	report, err := inspect.Seek(h, uint32(ts))
	if err != nil {
		return fail(stderr, "seek", err)
	}
	fmt.Fprintln(stdout, report.String())
	if report.Tag != nil {
		fmt.Fprintf(stdout, "tag header: %+v\n", *report.Tag)
	}
	return exitOK
}

// runSlice copies the tags in [-s, -e] to a new file.
func runSlice(args []string, stdout, stderr io.Writer) int {
	var ff fileFlags
	fs := newFlagSet("slice", stderr, &ff)
	var start millis
	end := millis(1<<32 - 1)
	fs.Var(&start, "s", "Start timestamp in milliseconds")
	fs.Var(&end, "e", "End timestamp in milliseconds (default end of file)")
	out := fs.String("o", "", "Output file")
	if !ff.parse(fs, args, stderr) {
		return exitUsage
	}
	if *out == "" {
		fmt.Fprintln(stderr, "flvkit slice: -o is required")
		return exitUsage
	}

	ctx, cancel := signalContext()
	defer cancel()

	lib := library.New(ff.libraryOptions())
	stats, err := slice.SliceFile(ctx, lib, ff.file, *out, uint32(start), uint32(end))
	if err != nil {
		return fail(stderr, "slice", err)
	}
	fmt.Fprintf(stdout, "wrote %s: %d tags, %d bytes, source timestamp %d ms at 0\n",
		*out, stats.Tags, stats.Bytes, stats.Base)
	return exitOK
}
