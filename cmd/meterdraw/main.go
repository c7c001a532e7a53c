// Command meterdraw creates scale cards for analog meter movements.
//
// Usage:
//
//	meterdraw [-v] [-note text] (-f designfile | -x instructions) outputfile
//
// The output format follows the extension of outputfile: .png, .tif, .tiff
// or .bmp.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/gogpu/scalecard"
)

// progressWidth is the number of dots shown for a complete design.
const progressWidth = 78

func main() {
	var (
		file    = flag.String("f", "", "file to read design instructions from")
		script  = flag.String("x", "", "string to process as design instructions")
		verbose = flag.Bool("v", false, "log each command to stderr")
		note    = flag.String("note", scalecard.DefaultNote, "credit line printed below the card")
	)
	flag.Usage = usage
	flag.Parse()

	if (*file == "") == (*script == "") || flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	out := flag.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	scalecard.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	src := *script
	if *file != "" {
		b, err := os.ReadFile(*file)
		if err != nil {
			fmt.Println("Error reading file")
			scalecard.Logger().Debug("read design", "err", err)
			os.Exit(1)
		}
		src = string(b)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []scalecard.Option{scalecard.WithNote(*note)}
	var bar *dots
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = &dots{w: os.Stdout}
		opts = append(opts, scalecard.WithProgress(bar.update))
	}

	card, err := scalecard.Render(ctx, src, opts...)
	bar.end()
	if err != nil {
		fmt.Println(scalecard.Highlight(src, err))
		stop()
		os.Exit(1)
	}
	fmt.Println("success")

	fmt.Printf("Saving to %s\n", out)
	if err := card.Save(out); err != nil {
		fmt.Println("Error writing file")
		scalecard.Logger().Error("save failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Meterdraw %s\n\n", scalecard.Version)
	fmt.Fprintln(w, "Meterdraw creates scale cards for analog meter movements.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage: meterdraw [-v] [-note text] (-f designfile | -x instructions) outputfile")
	fmt.Fprintln(w)
	flag.PrintDefaults()
}

// dots draws a line of dots that grows with the share of commands done.
type dots struct {
	w     io.Writer
	shown int
	begun bool
}

func (d *dots) update(done, total int) {
	if !d.begun {
		fmt.Fprint(d.w, " ")
		d.begun = true
	}
	if total <= 0 {
		return
	}
	if n := done * progressWidth / total; n > d.shown {
		fmt.Fprint(d.w, strings.Repeat(".", n-d.shown))
		d.shown = n
	}
}

// end finishes the line. It is safe to call on a nil bar.
func (d *dots) end() {
	if d == nil || !d.begun {
		return
	}
	fmt.Fprintln(d.w)
}
