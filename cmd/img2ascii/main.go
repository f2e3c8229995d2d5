package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/edibarra/img2ascii"
	"github.com/edibarra/img2ascii/imageutil"
)

// Options is the full command-line surface. The core packages never see
// raw argument strings; everything is resolved here before any pixel is
// read.
type Options struct {
	Invert    bool    `short:"i" long:"invert" description:"Invert brightness"`
	Fast      bool    `short:"a" long:"fast" description:"Use the fast perceived luminance model"`
	Perceived bool    `short:"p" long:"perceived" description:"Use the perceived luminance model"`
	Padding   int     `short:"n" long:"padding" default:"9" description:"Blank slots past the light end of the density ramp"`
	Columns   int     `short:"c" long:"columns" description:"Output width in characters (derived when unset)"`
	Rows      int     `short:"r" long:"rows" description:"Output height in characters (derived when unset)"`
	FontRatio string  `long:"font-ratio" default:"1:2" description:"Character cell width:height ratio used to derive dimensions"`
	Scale     float64 `short:"s" long:"scale" description:"Prescale the image by this factor before sampling"`
	Output    string  `short:"o" long:"out" description:"Write the output to a file instead of stdout"`
	Verbose   bool    `short:"V" long:"verbose" description:"Print additional progress information"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.Default)
	parser.Usage = "[OPTIONS] IMAGE"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 2
	}
	if len(rest) < 1 {
		parser.WriteHelp(os.Stderr)
		return 2
	}
	imagePath := rest[0]

	buf, err := imageutil.LoadImage(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2ascii: %v\n", err)
		return 1
	}
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "loaded %s (%dx%d)\n", imagePath, buf.Width(), buf.Height())
	}

	if opts.Scale > 0 && opts.Scale != 1 {
		buf = imageutil.Scale(buf, opts.Scale, imageutil.InterpolationArea)
		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "prescaled to %dx%d\n", buf.Width(), buf.Height())
		}
	}

	conv := img2ascii.NewConverter(
		img2ascii.WithInvert(opts.Invert),
		img2ascii.WithModel(img2ascii.ModelFromFlags(opts.Fast, opts.Perceived)),
		img2ascii.WithPadding(opts.Padding),
		img2ascii.WithColumns(opts.Columns),
		img2ascii.WithRows(opts.Rows),
		img2ascii.WithFontRatio(img2ascii.ParseFontRatio(opts.FontRatio)),
	)
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "model: %s, invert: %t, padding: %d\n",
			conv.Model, conv.Invert, conv.Padding)
	}

	out := os.Stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "img2ascii: failed to create %s: %v\n", opts.Output, err)
			return 1
		}
		out = f
	}

	w := bufio.NewWriter(out)
	convErr := conv.Convert(buf, w)
	if convErr == nil {
		convErr = w.Flush()
	}
	if out != os.Stdout {
		if closeErr := out.Close(); convErr == nil {
			convErr = closeErr
		}
	}
	if convErr != nil {
		fmt.Fprintf(os.Stderr, "img2ascii: %v\n", convErr)
		return 1
	}

	return 0
}
