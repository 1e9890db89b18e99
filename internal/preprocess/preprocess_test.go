package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	if _, err := Decode([]byte("not an image")); err == nil {
		t.Fatal("expected decode error on malformed bytes")
	}
	if _, err := Decode(nil); err == nil {
		t.Fatal("expected decode error on empty input")
	}
}

func TestDecodeAcceptsPNG(t *testing.T) {
	img, err := Decode(encodePNG(t, image.NewRGBA(image.Rect(0, 0, 3, 3))))
	if err != nil {
		t.Fatalf("expected decode to succeed: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
}

func TestToGrayscaleConvertsColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	src.Set(1, 0, color.RGBA{A: 255})

	gray := ToGrayscale(src)
	if gray.GrayAt(0, 0).Y != 255 {
		t.Fatalf("white pixel should stay white, got %d", gray.GrayAt(0, 0).Y)
	}
	if gray.GrayAt(1, 0).Y != 0 {
		t.Fatalf("black pixel should stay black, got %d", gray.GrayAt(1, 0).Y)
	}
}

func TestToGrayscalePassesThroughGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	if got := ToGrayscale(src); got != src {
		t.Fatal("grayscale input should be returned as-is")
	}
}

func TestEnhanceContrastTransferCurve(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 1))
	gray.Pix[0] = 0   // below black point
	gray.Pix[1] = 50  // at black point
	gray.Pix[2] = 180 // at white point
	gray.Pix[3] = 255 // above white point

	out := EnhanceContrast(gray, 1.2, 50, 180)
	if out.Pix[0] != 0 || out.Pix[1] != 0 {
		t.Fatalf("values at or below the black point must map to 0, got %d %d", out.Pix[0], out.Pix[1])
	}
	if out.Pix[2] != 255 || out.Pix[3] != 255 {
		t.Fatalf("values at or above the white point must map to 255, got %d %d", out.Pix[2], out.Pix[3])
	}
}

func TestEnhanceContrastIsMonotonic(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 256, 1))
	for i := 0; i < 256; i++ {
		gray.Pix[i] = uint8(i)
	}

	out := EnhanceContrast(gray, 1.2, 50, 180)
	for i := 1; i < 256; i++ {
		if out.Pix[i] < out.Pix[i-1] {
			t.Fatalf("transfer curve not monotonic at %d: %d < %d", i, out.Pix[i], out.Pix[i-1])
		}
	}
}

func TestRunPipelineOnWhiteSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.Set(x, y, color.White)
		}
	}

	out, err := Run(encodePNG(t, src))
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	for i, p := range out.Pix {
		if p != 255 {
			t.Fatalf("white square must stay white after enhancement, pixel %d = %d", i, p)
		}
	}
}
