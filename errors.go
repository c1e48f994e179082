package streamresp

import (
	"errors"
	"fmt"
)

// ErrProtocolError is the base for every terminal parse error. Checking
// errors.Is(err, ErrProtocolError) distinguishes a broken stream from the
// two resumable conditions below.
var ErrProtocolError = errors.New("resp protocol error")

var (
	// ErrUnexpectedEof is returned when a value boundary is reached and no
	// unread bytes are available. Feed more bytes and call TryParse again.
	ErrUnexpectedEof = errors.New("unexpected end of input")

	// ErrNotEnoughData is returned when a token has started but its
	// terminator has not arrived yet. Feed more bytes and call TryParse again.
	ErrNotEnoughData = errors.New("not enough data")
)

var (
	ErrInvalidType          = fmt.Errorf("%w: unknown type marker", ErrProtocolError)
	ErrInvalidFormat        = fmt.Errorf("%w: invalid format", ErrProtocolError)
	ErrIntegerOverflow      = fmt.Errorf("%w: integer overflow", ErrProtocolError)
	ErrInvalidLength        = fmt.Errorf("%w: invalid length", ErrProtocolError)
	ErrDepthExceeded        = fmt.Errorf("%w: nesting depth limit exceeded", ErrProtocolError)
	ErrElementLimitExceeded = fmt.Errorf("%w: element count limit exceeded", ErrProtocolError)
)

// ErrInvalidValue is returned by the serializer for values that have no
// wire form, such as a simple string containing CR or LF.
var ErrInvalidValue = errors.New("value cannot be serialized")

// IsIncomplete reports whether err only means the parser ran out of input.
// Both conditions are non-terminal; the parser resumes on the next feed.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEof) || errors.Is(err, ErrNotEnoughData)
}
