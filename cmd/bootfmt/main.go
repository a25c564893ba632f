package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/bootfmt"
	"github.com/wippyai/bootfmt/format"
)

func main() {
	var (
		fmtStr      = flag.String("fmt", "", "Format string (%d %x %D %X %p %s %S)")
		argStr      = flag.String("args", "", "Arguments as kind:value,... with kinds d x D X p s S")
		layoutBits  = flag.Int("layout", hostBits(), "Argument block word model (32 or 64)")
		strict      = flag.Bool("strict", false, "Fail on unrecognized specifiers")
		serialized  = flag.Bool("serialized", false, "Serialize whole formatting calls")
		maxString   = flag.Uint("maxstring", bootfmt.DefaultMaxString, "Maximum valid %S length")
		interactive = flag.Bool("i", false, "Interactive playground")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *fmtStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: bootfmt -fmt <format> [-args kind:value,...] [-layout 32|64]")
		fmt.Fprintln(os.Stderr, "       bootfmt -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Example: bootfmt -fmt '%d-%x' -args d:-5,x:255")
		os.Exit(1)
	}

	if err := run(*fmtStr, *argStr, *layoutBits, *strict, *serialized, uint32(*maxString)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fmtStr, argStr string, layoutBits int, strict, serialized bool, maxString uint32) error {
	layout, err := pickLayout(layoutBits)
	if err != nil {
		return err
	}

	args, err := parseArgs(layout, argStr)
	if err != nil {
		return err
	}

	opts := []format.Option{
		format.WithLayout(layout),
		format.WithMaxString(maxString),
	}
	if strict {
		opts = append(opts, format.WithStrict())
	}
	if serialized {
		opts = append(opts, format.WithSerialized())
	}

	p := format.New(bootfmt.NewSink(os.Stdout), opts...)
	return p.Print(fmtStr, args)
}

func hostBits() int {
	return int(format.HostLayout.PtrSize) * 8
}

func pickLayout(bits int) (format.Layout, error) {
	switch bits {
	case 32:
		return format.Layout32, nil
	case 64:
		return format.Layout64, nil
	}
	return format.Layout{}, fmt.Errorf("layout must be 32 or 64, got %d", bits)
}

// parseArgs builds an argument list from a spec like "d:-5,x:255,s:hi".
// Values cannot contain commas; this is a debug tool, not a parser.
func parseArgs(layout format.Layout, spec string) (*format.ArgList, error) {
	args := format.NewArgs(layout)
	if spec == "" {
		return args, nil
	}

	for _, item := range strings.Split(spec, ",") {
		kind, value, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("argument %q is not kind:value", item)
		}

		switch kind {
		case "d":
			v, err := strconv.ParseInt(value, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", item, err)
			}
			args.Int32(int32(v))
		case "x":
			v, err := strconv.ParseUint(value, 0, 32)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", item, err)
			}
			args.Uint32(uint32(v))
		case "D":
			v, err := strconv.ParseInt(value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", item, err)
			}
			args.Int64(v)
		case "X":
			v, err := strconv.ParseUint(value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", item, err)
			}
			args.Uint64(v)
		case "p":
			v, err := strconv.ParseUint(value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", item, err)
			}
			args.Ptr(v)
		case "s":
			args.CString(value)
		case "S":
			args.String(value)
		default:
			return nil, fmt.Errorf("unknown argument kind %q (want d x D X p s S)", kind)
		}
	}
	return args, nil
}
