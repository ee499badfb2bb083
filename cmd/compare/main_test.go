package main

import (
	"bytes"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	imagepkg "github.com/youruser/shotcompare/internal/image"
)

func fixtureOptions(t *testing.T) imagepkg.Options {
	t.Helper()
	dir := t.TempDir()
	opts := imagepkg.DefaultOptions()
	opts.PathA = filepath.Join(dir, "a.png")
	opts.PathB = filepath.Join(dir, "b.png")
	opts.OutputPath = filepath.Join(dir, "out.png")
	opts.Fonts = imagepkg.FontConfig{}
	for _, p := range []string{opts.PathA, opts.PathB} {
		if err := imaging.Save(imaging.New(60, 40, color.NRGBA{B: 0xff, A: 0xff}), p); err != nil {
			t.Fatalf("writing fixture %s: %v", p, err)
		}
	}
	return opts
}

func TestRunPrintsCreatedLine(t *testing.T) {
	opts := fixtureOptions(t)
	var buf bytes.Buffer
	run(&buf, opts)
	want := "Comparison image created: " + opts.OutputPath + "\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunPrintsErrorLine(t *testing.T) {
	opts := fixtureOptions(t)
	opts.PathA = filepath.Join(t.TempDir(), "gone.png")
	var buf bytes.Buffer
	run(&buf, opts)
	got := buf.String()
	if !strings.HasPrefix(got, "Error creating comparison: ") {
		t.Errorf("output = %q, want %q prefix", got, "Error creating comparison: ")
	}
	if !strings.HasSuffix(got, "\n") || strings.Count(got, "\n") != 1 {
		t.Errorf("output = %q, want a single line", got)
	}
}
