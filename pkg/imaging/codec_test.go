package imaging_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwise/inkwise/pkg/domain"
	"github.com/inkwise/inkwise/pkg/imaging"
)

func writePNG(t *testing.T, fs afero.Fs, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, path, buf.Bytes(), 0o600))
}

func TestStdCodec_DecodeGray_PNG(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := grayImage(2, 2, []uint8{0, 0, 255, 255})
	writePNG(t, fs, "/spool/input.png", src)

	codec := imaging.NewCodec()
	gray, err := codec.DecodeGray(fs, "/spool/input.png")

	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), gray.Bounds())
	assert.Equal(t, src.Pix, gray.Pix)
}

func TestStdCodec_DecodeGray_JPEG(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := image.NewGray(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 128
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, src, nil))
	require.NoError(t, afero.WriteFile(fs, "/spool/input.jpg", buf.Bytes(), 0o600))

	codec := imaging.NewCodec()
	gray, err := codec.DecodeGray(fs, "/spool/input.jpg")

	require.NoError(t, err)
	assert.Equal(t, 10, gray.Bounds().Dx())
	assert.Equal(t, 10, gray.Bounds().Dy())
}

func TestStdCodec_DecodeGray_ConvertsColor(t *testing.T) {
	fs := afero.NewMemMapFs()
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	// Pure red; Rec. 601 luma is round(0.299 * 255) = 76.
	rgba.Pix[0], rgba.Pix[1], rgba.Pix[2], rgba.Pix[3] = 255, 0, 0, 255
	writePNG(t, fs, "/spool/red.png", rgba)

	codec := imaging.NewCodec()
	gray, err := codec.DecodeGray(fs, "/spool/red.png")

	require.NoError(t, err)
	assert.InDelta(t, 76, int(gray.Pix[0]), 1)
}

func TestStdCodec_DecodeGray_UnreadableBytes(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/spool/bogus.jpg", []byte("definitely not an image"), 0o600))

	codec := imaging.NewCodec()
	_, err := codec.DecodeGray(fs, "/spool/bogus.jpg")

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeUnreadableImage, appErr.Code)
}

func TestStdCodec_DecodeGray_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	codec := imaging.NewCodec()
	_, err := codec.DecodeGray(fs, "/spool/absent.png")

	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeIOFailure, appErr.Code)
}

func TestStdCodec_Encode_HonorsFormatTag(t *testing.T) {
	img := grayImage(2, 2, []uint8{0, 255, 255, 0})
	codec := imaging.NewCodec()

	t.Run("png tag yields png container", func(t *testing.T) {
		data, err := codec.Encode(img, domain.FormatPNG)
		require.NoError(t, err)

		decoded, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, img.Bounds(), decoded.Bounds())
	})

	t.Run("jpeg tag yields jpeg container", func(t *testing.T) {
		data, err := codec.Encode(img, domain.FormatJPEG)
		require.NoError(t, err)

		_, format, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})
}

func TestStdCodec_Encode_PNGRoundTripIsLossless(t *testing.T) {
	img := grayImage(2, 2, []uint8{0, 0, 255, 255})
	codec := imaging.NewCodec()

	data, err := codec.Encode(img, domain.FormatPNG)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	grayDecoded, ok := decoded.(*image.Gray)
	require.True(t, ok)
	assert.Equal(t, img.Pix, grayDecoded.Pix)
}
