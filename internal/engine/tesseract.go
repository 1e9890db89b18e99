package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract wraps a gosseract client. One instance serves one worker for
// the worker's whole lifetime.
type Tesseract struct {
	client *gosseract.Client
	lang   string
}

// NewTesseract returns an uninitialized Tesseract engine.
func NewTesseract() *Tesseract {
	return &Tesseract{}
}

// Init creates the underlying gosseract client.
func (t *Tesseract) Init() error {
	t.client = gosseract.NewClient()
	return nil
}

// Recognize hands the pixel buffer to Tesseract and returns the extracted
// text. The language is only re-applied when it changes, since loading
// trained data is the expensive part of a language switch.
func (t *Tesseract) Recognize(img image.Image, lang string) (string, error) {
	if t.client == nil {
		return "", fmt.Errorf("tesseract engine not initialized")
	}

	if lang != "" && lang != t.lang {
		if err := t.client.SetLanguage(lang); err != nil {
			return "", fmt.Errorf("set language %q: %w", lang, err)
		}
		t.lang = lang
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode pixel buffer: %w", err)
	}
	if err := t.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// Close releases the gosseract client.
func (t *Tesseract) Close() error {
	if t.client == nil {
		return nil
	}
	err := t.client.Close()
	t.client = nil
	return err
}
