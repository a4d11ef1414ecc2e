// Package attr implements the typed attribute values carried in a layer
// header: geometry (box/vector/matrix), channel lists, and the handful of
// metadata-only payloads (chromaticities, time code, key code, preview)
// that round-trip bit-exactly but carry no behavior of their own.
package attr

import (
	"fmt"
	"strings"

	"github.com/exrgo/exr/errs"
)

// Text is a name or type string: 1-255 bytes of 7-bit ASCII, no embedded
// NUL, its exact length cap depending on the file's long-names flag.
type Text string

// ShortTextMaxLen is the legal length of an attribute/channel name or type
// string when the file's long-names requirement flag is unset.
const ShortTextMaxLen = 31

// LongTextMaxLen is the legal length once the long-names flag is set.
const LongTextMaxLen = 255

// ValidateText reports whether s is legal 7-bit-ASCII text with no embedded
// NUL byte, at most maxLen bytes, and non-empty.
func ValidateText(s string, maxLen int) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty text", errs.ErrInvalidText)
	}
	if len(s) > maxLen {
		return fmt.Errorf("%w: %q exceeds %d bytes", errs.ErrInvalidText, s, maxLen)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q contains a NUL byte", errs.ErrInvalidText, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return fmt.Errorf("%w: %q is not 7-bit ASCII", errs.ErrInvalidText, s)
		}
	}

	return nil
}
