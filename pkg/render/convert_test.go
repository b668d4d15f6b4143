package render

import (
	"bytes"
	"testing"

	"github.com/matzehuels/techradar/pkg/errors"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="4"/></svg>`

func TestToPNGRejectsBadScale(t *testing.T) {
	for _, scale := range []float64{0, -1} {
		if _, err := ToPNG([]byte(tinySVG), scale); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ToPNG(scale=%v) error = %v, want INVALID_INPUT", scale, err)
		}
	}
}

func TestConvert(t *testing.T) {
	if !Available() {
		_, err := ToPDF([]byte(tinySVG))
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("ToPDF() without %s error = %v, want UNSUPPORTED", ConverterBinary, err)
		}
		t.Skipf("%s not installed", ConverterBinary)
	}

	pdf, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("ToPDF() output does not start with %%PDF")
	}

	png, err := ToPNG([]byte(tinySVG), 2)
	if err != nil {
		t.Fatalf("ToPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("ToPNG() output is not a PNG")
	}
}
