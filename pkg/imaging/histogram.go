package imaging

import "image"

// Histogram is a 256-bin intensity histogram of a grayscale image. The bin sum
// equals the pixel count of the source image.
type Histogram [256]int

// BuildHistogram scans every pixel of the image exactly once and counts it in
// the bin matching its intensity.
func BuildHistogram(img *image.Gray) Histogram {
	var histo Histogram

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			histo[img.GrayAt(x, y).Y]++
		}
	}

	return histo
}

// Total returns the number of pixels counted in the histogram.
func (h Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}
