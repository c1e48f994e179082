package internal

import (
	"fmt"

	"github.com/ananthvk/streamresp"
)

func handleEcho(args []streamresp.Value) streamresp.Value {
	if len(args) != 1 {
		return streamresp.SimpleError("ERR wrong number of arguments for 'ECHO' command")
	}
	return streamresp.BulkString(args[0].Buffer)
}

func handlePing(args []streamresp.Value) streamresp.Value {
	switch len(args) {
	case 0:
		return streamresp.SimpleString("PONG")
	case 1:
		return streamresp.BulkString(args[0].Buffer)
	default:
		return streamresp.SimpleError("ERR wrong number of arguments for 'PING' command")
	}
}

// handleParse decodes its single argument as a standalone RESP3 document
// and replies with a map describing it. Useful for poking the parser over
// the wire.
func handleParse(args []streamresp.Value) streamresp.Value {
	if len(args) != 1 {
		return streamresp.SimpleError("ERR wrong number of arguments for 'PARSE' command")
	}
	parser := streamresp.New(0, 0)
	parser.Feed(args[0].Buffer)
	value, consumed, err := parser.TryParse()
	if err != nil {
		return streamresp.SimpleError(fmt.Sprintf("PARSE_ERR %s", err))
	}
	return streamresp.Map(
		streamresp.Pair{Key: streamresp.SimpleString("type"), Value: streamresp.SimpleString(value.Type.String())},
		streamresp.Pair{Key: streamresp.SimpleString("consumed"), Value: streamresp.Int(int64(consumed))},
		streamresp.Pair{Key: streamresp.SimpleString("value"), Value: value},
	)
}
