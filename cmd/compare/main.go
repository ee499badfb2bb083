package main

import (
	"fmt"
	"io"
	"os"

	imagepkg "github.com/youruser/shotcompare/internal/image"
)

// run performs one composition and writes the one-line outcome to w.
func run(w io.Writer, opts imagepkg.Options) {
	path, err := imagepkg.Compose(opts)
	if err != nil {
		fmt.Fprintln(w, "Error creating comparison:", err)
		return
	}
	fmt.Fprintln(w, "Comparison image created:", path)
}

func main() {
	run(os.Stdout, imagepkg.DefaultOptions())
}
