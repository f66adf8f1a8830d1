package imaging_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwise/inkwise/pkg/imaging"
)

func TestBinarize_DecisionRule(t *testing.T) {
	// One pixel per intensity; threshold 127 splits exactly at the boundary.
	img := image.NewGray(image.Rect(0, 0, 256, 1))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	out := imaging.Binarize(img, 127)

	for i, p := range out.Pix {
		if i > 127 {
			assert.Equal(t, uint8(255), p, "pixel %d above threshold", i)
		} else {
			assert.Equal(t, uint8(0), p, "pixel %d at or below threshold", i)
		}
	}
}

func TestBinarize_Totality(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8((i * 13) % 256)
	}

	for _, threshold := range []uint8{0, 1, 100, 254, 255} {
		out := imaging.Binarize(img, threshold)
		for _, p := range out.Pix {
			assert.True(t, p == 0 || p == 255, "threshold %d produced %d", threshold, p)
		}
	}
}

func TestBinarize_PreservesDimensions(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 7, 3))

	out := imaging.Binarize(img, 128)

	assert.Equal(t, img.Bounds(), out.Bounds())
}

func TestBinarize_ThresholdMax(t *testing.T) {
	// Nothing exceeds 255, so the output is all black.
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	out := imaging.Binarize(img, 255)

	for _, p := range out.Pix {
		assert.Equal(t, uint8(0), p)
	}
}
