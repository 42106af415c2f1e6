// Package main is the strfile tool for inspecting and building serialized
// string record files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/bytestr/internal/bytestr"
	"github.com/dshills/bytestr/internal/serial"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	List    bool
	Dump    bool
	JSON    bool
	Pack    string
	Split   string
	Swap    bool
	Output  string
	Verbose bool
	Files   []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	switch {
	case opts.Pack != "":
		if err := packFile(opts.Pack, opts.Output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: pack failed: %v\n", err)
			return 1
		}
	case opts.List:
		for _, path := range opts.Files {
			if err := listFile(path, opts.Swap); err != nil {
				fmt.Fprintf(os.Stderr, "Error: list %s: %v\n", path, err)
				return 1
			}
		}
	case opts.Dump:
		for _, path := range opts.Files {
			if err := dumpFile(path, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Error: dump %s: %v\n", path, err)
				return 1
			}
		}
	default:
		flag.Usage()
		return 1
	}

	return 0
}

// listFile skip-scans a record file, reporting record count and per-record
// content lengths without materializing any content.
func listFile(path string, swap bool) error {
	f, err := serial.Open(path, swap)
	if err != nil {
		return err
	}
	logrus.WithField("bytes", f.Len()).Debug("opened record file")

	index := 0
	for f.Remaining() > 0 {
		before := f.Remaining()
		if err := bytestr.SkipDeSerialize(f); err != nil {
			return fmt.Errorf("record %d: %w", index, err)
		}
		fmt.Printf("%d\t%d\n", index, before-f.Remaining()-4)
		index++
	}
	fmt.Printf("%s: %d records\n", path, index)
	return nil
}

// dumpFile deserializes every record, reusing one buffer across records, and
// prints them either line by line or as a JSON array.
func dumpFile(path string, opts options) error {
	f, err := serial.Open(path, opts.Swap)
	if err != nil {
		return err
	}

	s := bytestr.New()
	out := []byte("[]")
	index := 0
	for f.Remaining() > 0 {
		if err := s.DeSerializeFile(f); err != nil {
			return fmt.Errorf("record %d: %w", index, err)
		}
		if opts.Split != "" {
			var parts []*bytestr.String
			s.Split(opts.Split[0], &parts)
			for _, p := range parts {
				if opts.JSON {
					out, _ = sjson.SetBytes(out, "-1", p.String())
				} else {
					fmt.Println(p.String())
				}
			}
		} else if opts.JSON {
			out, _ = sjson.SetBytes(out, "-1", s.String())
		} else {
			fmt.Println(s.String())
		}
		index++
	}
	logrus.WithFields(logrus.Fields{"path": path, "records": index}).Debug("dump complete")

	if opts.JSON {
		os.Stdout.Write(pretty.Pretty(out))
	}
	return nil
}

// packFile reads a JSON array of strings from a manifest and serializes each
// entry as one record in the output file.
func packFile(manifestPath, outPath string) error {
	if outPath == "" {
		return fmt.Errorf("pack requires -o output path")
	}

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}
	manifest := gjson.ParseBytes(raw)
	if !manifest.IsArray() {
		return fmt.Errorf("manifest %s: expected a JSON array of strings", manifestPath)
	}

	f := serial.New()
	count := 0
	for _, entry := range manifest.Array() {
		s := bytestr.NewFromString(entry.String())
		if err := s.SerializeFile(f); err != nil {
			return fmt.Errorf("record %d: %w", count, err)
		}
		count++
	}

	if err := f.Save(outPath); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"path": outPath, "records": count}).Debug("pack complete")
	return nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.BoolVar(&opts.List, "list", false, "List record lengths without reading content")
	flag.BoolVar(&opts.List, "l", false, "List record lengths (shorthand)")
	flag.BoolVar(&opts.Dump, "dump", false, "Print every record's content")
	flag.BoolVar(&opts.Dump, "d", false, "Print every record's content (shorthand)")
	flag.BoolVar(&opts.JSON, "json", false, "Emit dump output as a JSON array")
	flag.StringVar(&opts.Pack, "pack", "", "Build a record file from a JSON manifest of strings")
	flag.StringVar(&opts.Split, "split", "", "Split each dumped record on a one-byte delimiter")
	flag.BoolVar(&opts.Swap, "swap", false, "Input was written on a system of differing endianness")
	flag.StringVar(&opts.Output, "o", "", "Output path for -pack")
	flag.BoolVar(&opts.Verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "strfile - inspect and build serialized string record files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: strfile [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  strfile -list data.rec              Count records, show lengths\n")
		fmt.Fprintf(os.Stderr, "  strfile -dump -json data.rec        Dump records as JSON\n")
		fmt.Fprintf(os.Stderr, "  strfile -dump -split , data.rec     Dump comma-split segments\n")
		fmt.Fprintf(os.Stderr, "  strfile -pack in.json -o data.rec   Build a record file\n")
		fmt.Fprintf(os.Stderr, "  strfile -swap -list data.rec        Read foreign-endian file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("strfile %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.Split != "" && len(opts.Split) != 1 {
		fmt.Fprintf(os.Stderr, "Error: -split takes exactly one byte, got %q\n", opts.Split)
		os.Exit(1)
	}
	if opts.Split != "" {
		opts.Dump = true
	}

	opts.Files = flag.Args()
	if opts.Pack == "" && len(opts.Files) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no input files\n")
		os.Exit(1)
	}

	return opts
}
