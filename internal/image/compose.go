package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/shotcompare/internal/util"
)

// Options configures one comparison composition. Zero values for the text
// fields render as empty lines; paths have no defaults except through
// DefaultOptions.
type Options struct {
	PathA      string
	PathB      string
	OutputPath string

	Title    string
	Subtitle string
	CaptionA string
	DetailA  string
	CaptionB string
	DetailB  string

	ColorA color.Color
	ColorB color.Color

	Fonts FontConfig

	// MaxWidth, when > 0, downscales inputs wider than this before layout.
	MaxWidth int

	// LinkURL, when set, stamps a QR code for the URL into the header band.
	LinkURL string
}

// Layout constants. The 120px overhead covers two header lines plus two
// caption lines per section with their margins.
const (
	headerOverhead = 120
	textMarginX    = 20
	titleY         = 20
	subtitleY      = 50
	sectionStartY  = 80
	detailGap      = 20
	imageGap       = 50
	sectionGap     = 20
	qrStampSize    = 64
)

// DefaultOptions returns the fixed paths and labels the tool was built
// around: the screenshot pair captured by the browser test run.
func DefaultOptions() Options {
	return Options{
		PathA:      "/tmp/playwright-logs/valid-error-validation.png",
		PathB:      "/tmp/playwright-logs/invalid-error-validation.png",
		OutputPath: "/tmp/playwright-logs/error-validation-comparison.png",
		Title:      "JSON:API Error Object Structure Validation - UI Demo",
		Subtitle:   "Comprehensive validation of error responses per JSON:API v1.1 specification",
		CaptionA:   "✅ VALID Error Response (404 Not Found)",
		DetailA:    "Shows detailed validation of all error object members",
		CaptionB:   "❌ INVALID Error Response (String instead of Object)",
		DetailB:    "Correctly detects and reports error object structure violations",
		ColorA:     color.RGBA{G: 0x80, A: 0xff},
		ColorB:     color.RGBA{R: 0xff, A: 0xff},
		Fonts:      DefaultFontConfig(),
	}
}

var gray = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// layout holds the derived placement for one composition.
type layout struct {
	width    int
	height   int
	pasteA   image.Point
	captionB int
	pasteB   image.Point
}

func layoutFor(wA, hA, wB, hB int) layout {
	w := wA
	if wB > w {
		w = wB
	}
	captionB := sectionStartY + imageGap + hA + sectionGap
	return layout{
		width:    w,
		height:   hA + hB + headerOverhead,
		pasteA:   image.Pt(0, sectionStartY+imageGap),
		captionB: captionB,
		pasteB:   image.Pt(0, captionB+imageGap),
	}
}

// Compose reads the two screenshots named by opts, renders the annotated
// comparison and writes it to opts.OutputPath, overwriting any existing
// file. It returns the output path on success. Decode and write failures
// are the only error cases; font trouble never surfaces here.
func Compose(opts Options) (string, error) {
	imgA, err := imaging.Open(opts.PathA)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", opts.PathA, err)
	}
	imgB, err := imaging.Open(opts.PathB)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", opts.PathB, err)
	}

	out := Render(imgA, imgB, opts)

	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if err := util.EnsureDir(dir); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := imaging.Save(out, opts.OutputPath); err != nil {
		return "", fmt.Errorf("saving %s: %w", opts.OutputPath, err)
	}
	return opts.OutputPath, nil
}

// Render composes the two already-decoded screenshots onto a fresh white
// canvas: header text, then each caption/detail pair with its screenshot
// pasted full-bleed at the left edge.
func Render(imgA, imgB image.Image, opts Options) image.Image {
	if opts.MaxWidth > 0 {
		if imgA.Bounds().Dx() > opts.MaxWidth {
			imgA = imaging.Resize(imgA, opts.MaxWidth, 0, imaging.Lanczos)
		}
		if imgB.Bounds().Dx() > opts.MaxWidth {
			imgB = imaging.Resize(imgB, opts.MaxWidth, 0, imaging.Lanczos)
		}
	}

	large, small := opts.Fonts.Resolve()
	lay := layoutFor(
		imgA.Bounds().Dx(), imgA.Bounds().Dy(),
		imgB.Bounds().Dx(), imgB.Bounds().Dy(),
	)

	dc := gg.NewContext(lay.width, lay.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetFontFace(large)
	dc.SetColor(color.Black)
	drawTextTop(dc, opts.Title, textMarginX, titleY)
	titleW, _ := dc.MeasureString(opts.Title)

	dc.SetFontFace(small)
	dc.SetColor(gray)
	drawTextTop(dc, opts.Subtitle, textMarginX, subtitleY)
	subtitleW, _ := dc.MeasureString(opts.Subtitle)

	dc.SetColor(captionColor(opts.ColorA, color.RGBA{G: 0x80, A: 0xff}))
	drawTextTop(dc, opts.CaptionA, textMarginX, sectionStartY)
	dc.SetColor(gray)
	drawTextTop(dc, opts.DetailA, textMarginX, sectionStartY+detailGap)
	dc.DrawImage(imgA, lay.pasteA.X, lay.pasteA.Y)

	dc.SetColor(captionColor(opts.ColorB, color.RGBA{R: 0xff, A: 0xff}))
	drawTextTop(dc, opts.CaptionB, textMarginX, lay.captionB)
	dc.SetColor(gray)
	drawTextTop(dc, opts.DetailB, textMarginX, lay.captionB+detailGap)
	dc.DrawImage(imgB, lay.pasteB.X, lay.pasteB.Y)

	if opts.LinkURL != "" {
		headerW := titleW
		if subtitleW > headerW {
			headerW = subtitleW
		}
		stampLink(dc, opts.LinkURL, lay.width, textMarginX+int(headerW))
	}

	return dc.Image()
}

func captionColor(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}
	return c
}

// drawTextTop draws s with (x, y) as the top-left corner of the line.
// gg anchors on the baseline; the layout offsets are specified from the top.
func drawTextTop(dc *gg.Context, s string, x, y int) {
	dc.DrawString(s, float64(x), float64(y)+dc.FontHeight())
}

// stampLink places a small QR for the url in the top-right of the header
// band. Best-effort: the stamp is skipped when the canvas is too narrow or
// the header text extends past headerRight into the stamp area, and a QR
// encode failure leaves the composition untouched.
func stampLink(dc *gg.Context, url string, canvasWidth, headerRight int) {
	left := canvasWidth - qrStampSize - textMarginX
	if left < headerRight+textMarginX {
		return
	}
	qr, err := QRImage(url, qrStampSize)
	if err != nil {
		return
	}
	dc.DrawImage(qr, left, (sectionStartY-qrStampSize)/2)
}
