package imaging

import "image"

// Binarize applies the threshold to produce a two-level image of identical
// dimensions. Pixels strictly greater than the threshold become 255, pixels at
// or below become 0. The comparison is fixed for bit-for-bit reproducibility.
func Binarize(img *image.Gray, threshold uint8) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if img.Pix[i] > threshold {
				dst.Pix[dst.PixOffset(x, y)] = 255
			}
		}
	}

	return dst
}
