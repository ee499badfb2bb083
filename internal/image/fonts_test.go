package imagepkg

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestResolveFaceNoCandidates(t *testing.T) {
	if face := resolveFace(nil); face != basicfont.Face7x13 {
		t.Errorf("resolveFace(nil) = %v, want built-in face", face)
	}
}

func TestResolveFaceMissingFile(t *testing.T) {
	face := resolveFace([]FontCandidate{{Path: "/no/such/font.ttf", Points: 16}})
	if face != basicfont.Face7x13 {
		t.Error("missing font file should fall back to built-in face")
	}
}

func TestResolveFaceInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.ttf")
	if err := os.WriteFile(path, []byte("zero bytes of truetype here"), 0o644); err != nil {
		t.Fatal(err)
	}
	face := resolveFace([]FontCandidate{{Path: path, Points: 16}})
	if face != basicfont.Face7x13 {
		t.Error("unparseable font file should fall back to built-in face")
	}
}

func TestResolveNeverNil(t *testing.T) {
	large, small := DefaultFontConfig().Resolve()
	if large == nil || small == nil {
		t.Fatal("Resolve returned a nil face")
	}
}
