package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"

	"github.com/spf13/afero"

	"github.com/inkwise/inkwise/pkg/domain"
)

// Codec decodes stored images into grayscale buffers and encodes binarized
// results back into the tagged container family. It is the single backend for
// the decode/threshold/re-encode capability.
type Codec interface {
	DecodeGray(fs afero.Fs, path string) (*image.Gray, error)
	Encode(img *image.Gray, format domain.Format) ([]byte, error)
}

// StdCodec implements Codec on the standard library's JPEG and PNG codecs.
type StdCodec struct{}

// NewCodec returns the standard codec.
func NewCodec() *StdCodec {
	return &StdCodec{}
}

// DecodeGray decodes the stored image and converts it to a single-channel
// grayscale buffer. Color and alpha channels are reduced with the standard
// library's Rec. 601 luma weights (0.299 R + 0.587 G + 0.114 B), which is
// deterministic for a given input.
func (c *StdCodec) DecodeGray(fs afero.Fs, path string) (*image.Gray, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Failed to open stored image").WithError(err)
	}
	defer func() {
		_ = f.Close()
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeUnreadableImage,
			fmt.Sprintf("Image processing failed: %v", err)).WithError(err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, domain.NewAppError(domain.ErrCodeUnreadableImage, "Image processing failed: image has zero area")
	}

	gray := image.NewGray(b)
	draw.Draw(gray, b, src, b.Min, draw.Src)
	return gray, nil
}

// Encode serializes the binarized buffer into the container matching the
// format tag. The output stays single-channel; PNG stores 8-bit grayscale and
// JPEG a grayscale scan, each pixel strictly 0 or 255.
func (c *StdCodec) Encode(img *image.Gray, format domain.Format) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case domain.FormatPNG:
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeEncodeFailure, "Failed to encode processed image").WithError(err)
	}

	return buf.Bytes(), nil
}
