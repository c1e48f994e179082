// Package scan holds the primitive token scanners the parser is built from.
// Scanners are pure functions over an unread byte view: they never mutate
// state and never report success past the bytes they matched, so the caller
// decides whether to commit the advance.
package scan

import (
	"bytes"
	"math"
)

// Line locates the next CRLF and returns the bytes before it together with
// the number of bytes to advance past the terminator.
//
// A lone LF, or a CR followed by anything but LF, is ErrBadFormat: the
// contexts Line is used in (simple strings, simple errors, numeric lines)
// forbid both bytes inside the payload. A CR as the final byte of the view
// is ErrNeedMore, the LF may still be on the wire.
func Line(view []byte) (line []byte, advance int, err error) {
	i := bytes.IndexAny(view, "\r\n")
	if i == -1 {
		return nil, 0, ErrNeedMore
	}
	if view[i] == '\n' {
		return nil, 0, ErrBadFormat
	}
	if i+1 >= len(view) {
		return nil, 0, ErrNeedMore
	}
	if view[i+1] != '\n' {
		return nil, 0, ErrBadFormat
	}
	return view[:i], i + 2, nil
}

// Integer scans a CRLF-terminated signed decimal and converts it to int64.
// A leading '-' is always accepted; a leading '+' only when acceptPlus is
// set. Empty bodies, sign-only bodies and non-digit bytes are ErrBadFormat;
// values outside int64 are ErrOverflow.
func Integer(view []byte, acceptPlus bool) (value int64, advance int, err error) {
	line, advance, err := Line(view)
	if err != nil {
		return 0, 0, err
	}
	value, err = ParseInt(line, acceptPlus)
	if err != nil {
		return 0, 0, err
	}
	return value, advance, nil
}

// ParseInt converts an already-delimited decimal token. It accumulates into
// the negative range so math.MinInt64 parses without a special case.
func ParseInt(token []byte, acceptPlus bool) (int64, error) {
	negative := false
	i := 0
	if len(token) > 0 {
		switch token[0] {
		case '-':
			negative = true
			i = 1
		case '+':
			if !acceptPlus {
				return 0, ErrBadFormat
			}
			i = 1
		}
	}
	if i == len(token) {
		return 0, ErrBadFormat
	}

	var value int64
	for ; i < len(token); i++ {
		b := token[i]
		if b < '0' || b > '9' {
			return 0, ErrBadFormat
		}
		d := int64(b - '0')
		if value < (math.MinInt64+d)/10 {
			return 0, ErrOverflow
		}
		value = value*10 - d
	}
	if !negative {
		if value == math.MinInt64 {
			return 0, ErrOverflow
		}
		value = -value
	}
	return value, nil
}

// Counted checks that length payload bytes followed by CRLF are available
// and returns the payload with the advance past the terminator. The two
// bytes after the payload must be exactly CR LF; anything else is
// ErrBadFormat, the declared length already fixed where the payload ends.
func Counted(view []byte, length int) (body []byte, advance int, err error) {
	if len(view) < length+2 {
		return nil, 0, ErrNeedMore
	}
	if view[length] != '\r' || view[length+1] != '\n' {
		return nil, 0, ErrBadFormat
	}
	return view[:length], length + 2, nil
}
