// Package preprocess turns raw image bytes into the pixel buffer the
// recognition engine expects: decode, grayscale, then a contrast/gamma
// enhancement pass. The three steps run unconditionally and in this order
// before every recognition call; there is no configuration surface.
package preprocess

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

const (
	// Gamma transfer parameters matching the enhancement the engine was
	// tuned against: values at or below the black point map to 0, values at
	// or above the white point map to 255, with a 1.2 gamma curve between.
	defaultGamma = 1.2
	blackPoint   = 50
	whitePoint   = 180
)

// Decode parses raw image bytes (PNG, JPEG, BMP or TIFF) into an image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// ToGrayscale converts any image to 8-bit grayscale.
func ToGrayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.SetGray(x, y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
		}
	}
	return gray
}

// EnhanceContrast applies the gamma transfer curve to a grayscale buffer,
// returning a new buffer. Input pixels are clamped to [black, white],
// normalized, raised to 1/gamma, and rescaled to the full range.
func EnhanceContrast(gray *image.Gray, gamma float64, black, white uint8) *image.Gray {
	lut := gammaLUT(gamma, black, white)

	bounds := gray.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowIn := gray.Pix[(y-bounds.Min.Y)*gray.Stride:]
		rowOut := out.Pix[(y-bounds.Min.Y)*out.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			rowOut[x] = lut[rowIn[x]]
		}
	}
	return out
}

func gammaLUT(gamma float64, black, white uint8) [256]uint8 {
	var lut [256]uint8
	lo, hi := float64(black), float64(white)
	if hi <= lo {
		hi = lo + 1
	}
	inv := 1.0 / gamma
	for i := 0; i < 256; i++ {
		v := (float64(i) - lo) / (hi - lo)
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		lut[i] = uint8(math.Round(255 * math.Pow(v, inv)))
	}
	return lut
}

// Run executes the full pipeline on raw bytes.
func Run(data []byte) (*image.Gray, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	gray := ToGrayscale(img)
	return EnhanceContrast(gray, defaultGamma, blackPoint, whitePoint), nil
}
