package internal

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/ananthvk/streamresp"
	"github.com/google/uuid"
)

const readBufferSize = 4096

// Server holds the per-request parser limits shared by all connections.
// Each connection gets its own parser instance; the parser is not safe for
// concurrent use.
type Server struct {
	maxDepth    int
	maxElements int
}

func NewServer(maxDepth, maxElements int) *Server {
	return &Server{maxDepth: maxDepth, maxElements: maxElements}
}

func sendResponse(value streamresp.Value, writer *bufio.Writer) error {
	err := streamresp.Serialize(value, writer)
	if err == nil {
		return writer.Flush()
	}
	slog.Error("error serializing response", "err", err)
	return err
}

func sendError(message string, writer *bufio.Writer) error {
	return sendResponse(streamresp.SimpleError("ERR "+message), writer)
}

// Handle serves one connection. Requests arrive as RESP3 arrays of bulk
// strings and are decoded incrementally: socket reads feed the parser and
// TryParse drains every pipelined request before the next read. A protocol
// error is answered once and the connection dropped, per the recovery
// policy for terminal parse errors.
func (server *Server) Handle(conn net.Conn) {
	connID := uuid.NewString()
	slog.Info("client connected", "conn_id", connID, "remote_address", conn.RemoteAddr().String())
	defer func() {
		slog.Info("client disconnected", "conn_id", connID)
	}()
	defer conn.Close()

	parser := streamresp.New(server.maxDepth, server.maxElements)
	writer := bufio.NewWriter(conn)
	readBuf := make([]byte, readBufferSize)

	for {
		request, _, err := parser.TryParse()
		if err != nil {
			if !streamresp.IsIncomplete(err) {
				slog.Warn("protocol error", "conn_id", connID, "err", err)
				sendError(err.Error(), writer)
				return
			}
			n, readErr := conn.Read(readBuf)
			if n > 0 {
				parser.Feed(readBuf[:n])
			}
			if readErr != nil {
				if parser.Pending() && !errors.Is(readErr, net.ErrClosed) {
					slog.Warn("connection closed mid-request", "conn_id", connID)
				}
				return
			}
			continue
		}

		if response, ok := dispatch(request); ok {
			if err := sendResponse(response, writer); err != nil {
				return
			}
		} else {
			if err := sendError("invalid request: request must be an array of bulk strings", writer); err != nil {
				return
			}
		}
	}
}

// dispatch validates the request shape and routes to the command table.
// The second return is false for requests that are not arrays of bulk
// strings.
func dispatch(request streamresp.Value) (streamresp.Value, bool) {
	if request.Type != streamresp.TypeArray || request.Null || len(request.Elems) == 0 {
		return streamresp.Value{}, false
	}
	for _, arg := range request.Elems {
		if arg.Type != streamresp.TypeBulkString || arg.Null {
			return streamresp.Value{}, false
		}
	}

	name := string(bytes.ToUpper(request.Elems[0].Buffer))
	commandFunc, exists := Commands[name]
	if !exists {
		return streamresp.SimpleError(fmt.Sprintf("ERR unknown command '%s'", request.Elems[0].Buffer)), true
	}
	return commandFunc(request.Elems[1:]), true
}
