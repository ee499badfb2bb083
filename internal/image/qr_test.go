package imagepkg

import "testing"

func TestQRImageSize(t *testing.T) {
	img, err := QRImage("https://example.com/report/42", 128)
	if err != nil {
		t.Fatalf("QRImage: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 128 || got.Dy() != 128 {
		t.Errorf("QR = %dx%d, want 128x128", got.Dx(), got.Dy())
	}
}

func TestQRPNGEmptyText(t *testing.T) {
	if _, err := QRPNG("", 64); err == nil {
		t.Error("QRPNG with empty text: want error")
	}
}
