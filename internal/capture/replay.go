package capture

import (
	"fmt"

	"github.com/ananthvk/streamresp"
	"github.com/spf13/afero"
)

// Result summarizes one replayed capture stream.
type Result struct {
	Path   string
	Values int
	Bytes  int
	Err    error
}

// Replay parses one capture file through a fresh parser, feeding it in
// chunks of at most chunkSize bytes to exercise resumption across chunk
// boundaries. Every decoded value is serialized again and parsed back as a
// consistency check. A parser is never shared between streams; that mirrors
// the one-parser-per-connection rule.
func Replay(fs afero.Fs, path string, chunkSize, maxDepth, maxElements int) Result {
	result := Result{Path: path}

	data, err := ReadStream(fs, path)
	if err != nil {
		result.Err = err
		return result
	}
	if chunkSize <= 0 {
		chunkSize = len(data)
	}

	parser := streamresp.New(maxDepth, maxElements)
	offset := 0
	for {
		value, consumed, err := parser.TryParse()
		if err == nil {
			result.Values++
			result.Bytes += consumed
			if verr := verify(value); verr != nil {
				result.Err = fmt.Errorf("%s: value %d: %w", path, result.Values, verr)
				return result
			}
			continue
		}
		if !streamresp.IsIncomplete(err) {
			result.Err = fmt.Errorf("%s: offset %d: %w", path, result.Bytes, err)
			return result
		}
		if offset >= len(data) {
			if parser.Buffered() > 0 || parser.Pending() {
				result.Err = fmt.Errorf("%s: stream ends mid-value, %d bytes unread", path, parser.Buffered())
			}
			return result
		}
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}
		parser.Feed(data[offset:end])
		offset = end
	}
}

// verify checks that the value survives a serialize/parse round trip.
func verify(value streamresp.Value) error {
	wire, err := value.Bytes()
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}
	parser := streamresp.New(0, 0)
	parser.Feed(wire)
	parsed, consumed, err := parser.TryParse()
	if err != nil {
		return fmt.Errorf("reparse: %w", err)
	}
	if consumed != len(wire) {
		return fmt.Errorf("reparse consumed %d of %d bytes", consumed, len(wire))
	}
	if !parsed.Equal(value) && value.Type != streamresp.TypeDouble {
		return fmt.Errorf("round trip mismatch for %s value", value.Type)
	}
	return nil
}
