// Command ggicon writes the treemap application icon at every standard size.
//
// Running it with no arguments writes icon_16x16.png through
// icon_1024x1024.png into the current directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/ggicon"
)

func main() {
	var (
		dir     = flag.String("dir", ".", "output directory")
		verbose = flag.Bool("v", false, "log rendering details to stderr")
	)
	flag.Parse()

	if *verbose {
		ggicon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(os.Stdout, *dir, ggicon.DefaultSizes()); err != nil {
		slog.Error("icon generation failed", "err", err)
		os.Exit(1)
	}
}

// run writes one icon per size into dir, reporting each file to w.
// It stops at the first failure.
func run(w io.Writer, dir string, sizes []int) error {
	for _, size := range sizes {
		if _, err := ggicon.WriteIcon(dir, size); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", ggicon.FileName(size))
	}
	fmt.Fprintln(w, "Done!")
	return nil
}
