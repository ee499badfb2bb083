package imagepkg

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontCandidate is one typeface file to try at a point size.
type FontCandidate struct {
	Path   string
	Points float64
}

// FontConfig lists typeface candidates for the header and caption faces,
// tried in order. When every candidate fails the built-in bitmap face is
// used instead, so resolution itself cannot fail.
type FontConfig struct {
	Large []FontCandidate
	Small []FontCandidate
}

// DefaultFontConfig prefers the DejaVu fonts installed on most Linux hosts.
func DefaultFontConfig() FontConfig {
	return FontConfig{
		Large: []FontCandidate{
			{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", Points: 24},
		},
		Small: []FontCandidate{
			{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", Points: 16},
		},
	}
}

// Resolve returns a usable large and small face.
func (fc FontConfig) Resolve() (large, small font.Face) {
	return resolveFace(fc.Large), resolveFace(fc.Small)
}

func resolveFace(candidates []FontCandidate) font.Face {
	for _, cand := range candidates {
		b, err := os.ReadFile(cand.Path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(b)
		if err != nil {
			continue
		}
		return truetype.NewFace(f, &truetype.Options{
			Size:    cand.Points,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return basicfont.Face7x13
}
