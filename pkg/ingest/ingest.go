package ingest

import (
	"errors"
	"io"
	"mime/multipart"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/inkwise/inkwise/pkg/domain"
	"github.com/inkwise/inkwise/pkg/logging"
	"github.com/inkwise/inkwise/pkg/spool"
)

// FieldName is the multipart field the upload must arrive in.
const FieldName = "image"

// copyBufferSize is the chunk size used when draining the upload stream.
const copyBufferSize = 32 * 1024

// Manager receives the upload stream and persists it to a scoped spool object.
type Manager struct {
	logger *logging.Logger
}

// NewManager creates an ingestion manager.
func NewManager(logger *logging.Logger) *Manager {
	return &Manager{logger: logger}
}

// Ingest reads the multipart stream to completion, writing the "image" field
// chunk by chunk, in arrival order, to a newly allocated spool object. Once the
// stream is durably flushed it derives the format tag from the declared
// filename (.png case-insensitive means PNG, everything else JPEG) and renames
// the object to carry the matching extension for the downstream codec.
//
// The spool object is owned by the scope; the caller releases it with the rest
// of the request's artifacts.
func (m *Manager) Ingest(mr *multipart.Reader, scope *spool.Scope) (*domain.StoredImage, error) {
	path, f, err := scope.Create("input", ".part")
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Failed to create temporary file").WithError(err)
	}

	var (
		imageFound       bool
		originalFilename string
		written          int64
	)

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = f.Close()
			return nil, domain.NewAppError(domain.ErrCodeMalformedStream, "Invalid multipart data").WithError(err)
		}

		m.logger.Debug("processing multipart field", "field", part.FormName())

		if part.FormName() != FieldName {
			continue
		}
		imageFound = true
		originalFilename = part.FileName()

		n, err := m.drain(part, f)
		written += n
		if err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	if !imageFound {
		_ = f.Close()
		return nil, domain.NewAppError(domain.ErrCodeNoImageField, "No image field found in request")
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Error flushing file").WithError(err)
	}
	if err := f.Close(); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Error flushing file").WithError(err)
	}

	format := FormatForFilename(originalFilename)
	path, err = scope.Rename(path, format.Ext())
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeIOFailure, "Failed to prepare image file").WithError(err)
	}

	stored := &domain.StoredImage{
		Path:        path,
		Filename:    originalFilename,
		Format:      format,
		Size:        written,
		ContentType: m.sniff(scope, path),
	}

	m.logger.Info("image received",
		"filename", originalFilename,
		"size", humanize.Bytes(uint64(written)),
		"format", format,
		"contentType", stored.ContentType)

	return stored, nil
}

// drain copies one part to the spool object, preserving chunk order. Read
// failures are stream problems; write failures are storage problems.
func (m *Manager) drain(part *multipart.Part, f io.Writer) (int64, error) {
	buf := make([]byte, copyBufferSize)
	var written int64

	for {
		n, rerr := part.Read(buf)
		if n > 0 {
			wn, werr := f.Write(buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, domain.NewAppError(domain.ErrCodeIOFailure, "Error writing to temporary file").WithError(werr)
			}
		}
		if errors.Is(rerr, io.EOF) {
			return written, nil
		}
		if rerr != nil {
			// A truncated body means the client went away mid-upload.
			if errors.Is(rerr, io.ErrUnexpectedEOF) {
				return written, domain.NewAppError(domain.ErrCodeIOFailure, "Upload interrupted").WithError(rerr)
			}
			return written, domain.NewAppError(domain.ErrCodeMalformedStream, "Error reading file chunks").WithError(rerr)
		}
	}
}

// sniff detects the container type of the spooled bytes. The format tag stays
// filename-derived; a mismatch is only logged so misnamed uploads are visible.
func (m *Manager) sniff(scope *spool.Scope, path string) string {
	f, err := scope.Fs().Open(path)
	if err != nil {
		return ""
	}
	defer func() {
		_ = f.Close()
	}()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return ""
	}

	detected := mtype.String()
	if tag := FormatForFilename(path); detected != tag.MimeType() {
		m.logger.Warn("declared format does not match container",
			"tagged", tag.MimeType(), "detected", detected)
	}
	return detected
}

// FormatForFilename applies the format inference rule: a filename ending in
// .png (case-insensitive) selects PNG; all other filenames, or none, select
// JPEG.
func FormatForFilename(filename string) domain.Format {
	if strings.HasSuffix(strings.ToLower(filename), ".png") {
		return domain.FormatPNG
	}
	return domain.FormatJPEG
}
