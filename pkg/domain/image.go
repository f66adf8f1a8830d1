package domain

// Format identifies the codec family used to decode and re-encode an image.
type Format string

const (
	// FormatJPEG is the default codec family for uploads without a .png suffix.
	FormatJPEG Format = "jpeg"
	// FormatPNG is selected for filenames ending in .png (case-insensitive).
	FormatPNG Format = "png"
)

// Ext returns the filename extension for the format, dot included.
func (f Format) Ext() string {
	if f == FormatPNG {
		return ".png"
	}
	return ".jpg"
}

// MimeType returns the MIME type advertised for the format.
func (f Format) MimeType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/jpeg"
}

// StoredImage is a durable-for-the-request handle on uploaded bytes. The format
// tag is fixed at ingestion and drives both the decode and the re-encode codec.
type StoredImage struct {
	// Path of the spooled copy, already renamed to carry Format's extension.
	Path string

	// Filename as declared by the client, empty when none was supplied.
	Filename string

	// Format inferred from Filename at ingestion time.
	Format Format

	// Size of the spooled copy in bytes.
	Size int64

	// ContentType sniffed from the spooled bytes.
	ContentType string
}

// ProcessingResult is the self-describing output of one conversion. It is owned
// by the request that produced it and never shared.
type ProcessingResult struct {
	// ThresholdValue is the solved Otsu level, exposed as a float for
	// interface symmetry with callers that treat it as a measurement.
	ThresholdValue float64

	// OutputFilename advertises a download name matching the payload format.
	OutputFilename string

	// MimeType is image/png or image/jpeg, per the format tag.
	MimeType string

	// DataURL is the encoded payload as data:<mime>;base64,<payload>.
	DataURL string
}
