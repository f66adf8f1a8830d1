package pipeline

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/inkwise/inkwise/pkg/domain"
	"github.com/inkwise/inkwise/pkg/imaging"
	"github.com/inkwise/inkwise/pkg/logging"
	"github.com/inkwise/inkwise/pkg/spool"
)

// Converter runs one stored image through decode, threshold, binarize, encode,
// and packaging. All numeric stages are CPU-bound and request-local.
type Converter struct {
	codec  imaging.Codec
	logger *logging.Logger
}

// NewConverter creates a converter over the given codec.
func NewConverter(codec imaging.Codec, logger *logging.Logger) *Converter {
	return &Converter{
		codec:  codec,
		logger: logger,
	}
}

// Convert binarizes the stored image and packages the encoded result. The
// output copy lives in the same scope as the input and is released with it.
func (c *Converter) Convert(scope *spool.Scope, stored *domain.StoredImage) (*domain.ProcessingResult, error) {
	gray, err := c.codec.DecodeGray(scope.Fs(), stored.Path)
	if err != nil {
		return nil, err
	}

	bounds := gray.Bounds()
	c.logger.Debug("image decoded", "width", bounds.Dx(), "height", bounds.Dy())

	histo := imaging.BuildHistogram(gray)
	threshold := imaging.OtsuThreshold(histo)
	binary := imaging.Binarize(gray, threshold)

	encoded, err := c.codec.Encode(binary, stored.Format)
	if err != nil {
		return nil, err
	}

	outPath, err := scope.WriteFile("processed", stored.Format.Ext(), encoded)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Failed to write processed image").WithError(err)
	}

	payload, err := afero.ReadFile(scope.Fs(), outPath)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Failed to read processed image").WithError(err)
	}

	result := PackageResult(payload, stored.Format, float64(threshold))
	c.logger.Info("image processed", "threshold", result.ThresholdValue, "output", result.OutputFilename)

	return result, nil
}

// PackageResult wraps the encoded bytes into a self-describing payload: the
// MIME type matching the format tag plus a data:<mime>;base64,<payload> URL a
// document-rendering client can use without a second round trip.
func PackageResult(encoded []byte, format domain.Format, threshold float64) *domain.ProcessingResult {
	mime := format.MimeType()

	return &domain.ProcessingResult{
		ThresholdValue: threshold,
		OutputFilename: fmt.Sprintf("processed_%s%s", uuid.New().String(), format.Ext()),
		MimeType:       mime,
		DataURL:        fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(encoded)),
	}
}
