// Package errs defines the sentinel errors returned across goexr.
//
// Every error goexr returns either is one of these sentinels or wraps one
// with fmt.Errorf("%w: ...") so callers can still use errors.Is against the
// sentinel regardless of the added detail.
package errs

import "errors"

var (
	// ErrInvalidMagicNumber is returned when a file doesn't start with the
	// EXR magic bytes (0x76 0x2F 0x31 0x01).
	ErrInvalidMagicNumber = errors.New("exr: invalid magic number")
	// ErrUnsupportedVersion is returned when the version field's low byte
	// isn't a version this library supports.
	ErrUnsupportedVersion = errors.New("exr: unsupported version")

	// ErrInvalidContent is returned when a value is present but out of
	// range or of the wrong kind for its field.
	ErrInvalidContent = errors.New("exr: invalid content")
	// ErrMissingAttribute is returned when a required header attribute is
	// absent.
	ErrMissingAttribute = errors.New("exr: missing required attribute")
	// ErrInvalidAttribute is returned when a required header attribute is
	// present but has the wrong type or an invalid value.
	ErrInvalidAttribute = errors.New("exr: invalid attribute")
	// ErrUnknownAttributeType is returned when an attribute's type name is
	// not one goexr recognizes, and the caller did not opt into skipping
	// unknown attributes.
	ErrUnknownAttributeType = errors.New("exr: unknown attribute type")

	// ErrInvalidSize is returned when a size field is negative or exceeds
	// the caller-configured cap.
	ErrInvalidSize = errors.New("exr: invalid size")
	// ErrInvalidText is returned for empty text, text containing a NUL
	// byte, or text exceeding the file's long-names limit.
	ErrInvalidText = errors.New("exr: invalid text")

	// ErrInvalidCompressedData is returned when a codec produces a byte
	// count that doesn't match the expected uncompressed size, or the
	// compressed stream is malformed.
	ErrInvalidCompressedData = errors.New("exr: invalid compressed data")
	// ErrUnsupportedCompression is returned for a compression enum value
	// with no registered codec.
	ErrUnsupportedCompression = errors.New("exr: unsupported compression type")

	// ErrInvalidLevelIndex is returned when a MIP/RIP level index is out of
	// range, or a MIP-mode level is accessed with L.x != L.y.
	ErrInvalidLevelIndex = errors.New("exr: invalid level index")
	// ErrInvalidChannelIndex is returned when a channel index or name
	// lookup fails.
	ErrInvalidChannelIndex = errors.New("exr: invalid channel index")
	// ErrInvalidPartIndex is returned when a part/layer index is out of
	// range for the file.
	ErrInvalidPartIndex = errors.New("exr: invalid part index")

	// ErrTypeMismatch is returned when SampleIter[T] is called with a T
	// that doesn't match the channel's pixel type.
	ErrTypeMismatch = errors.New("exr: sample type mismatch")

	// ErrChunkOffsetOutOfRange is returned when an offset-table entry
	// points outside the file.
	ErrChunkOffsetOutOfRange = errors.New("exr: chunk offset out of range")
	// ErrChunkCountMismatch is returned when a present chunkCount attribute
	// disagrees with the computed chunk count.
	ErrChunkCountMismatch = errors.New("exr: chunk count mismatch")
	// ErrUnexpectedPartNumber is returned when a multi-part chunk's leading
	// part number differs from the header whose offset table located it.
	ErrUnexpectedPartNumber = errors.New("exr: unexpected part number")

	// ErrNoFrameBuffer reports that no frame buffer (allocate/extract
	// callback) is configured. No function in this module returns it:
	// chunk.Scheduler.ReadAll and WriteAll do not check their callbacks
	// for nil.
	ErrNoFrameBuffer = errors.New("exr: no frame buffer configured")
	// ErrMixedLevelModes is returned when a scan-line-typed header carries
	// a tiles attribute.
	ErrMixedLevelModes = errors.New("exr: mixed scan-line/tiled level modes")
)
