package internal

import (
	"testing"

	"github.com/ananthvk/streamresp"
)

func command(args ...string) streamresp.Value {
	elems := make([]streamresp.Value, len(args))
	for i, arg := range args {
		elems[i] = streamresp.BulkString([]byte(arg))
	}
	return streamresp.Array(elems...)
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name    string
		request streamresp.Value
		want    streamresp.Value
		wantOk  bool
	}{
		{
			name:    "ping",
			request: command("PING"),
			want:    streamresp.SimpleString("PONG"),
			wantOk:  true,
		},
		{
			name:    "ping is case insensitive",
			request: command("ping"),
			want:    streamresp.SimpleString("PONG"),
			wantOk:  true,
		},
		{
			name:    "ping with message",
			request: command("PING", "hello"),
			want:    streamresp.BulkString([]byte("hello")),
			wantOk:  true,
		},
		{
			name:    "echo",
			request: command("ECHO", "hey"),
			want:    streamresp.BulkString([]byte("hey")),
			wantOk:  true,
		},
		{
			name:    "echo without argument",
			request: command("ECHO"),
			want:    streamresp.SimpleError("ERR wrong number of arguments for 'ECHO' command"),
			wantOk:  true,
		},
		{
			name:    "unknown command",
			request: command("FLUSHALL"),
			want:    streamresp.SimpleError("ERR unknown command 'FLUSHALL'"),
			wantOk:  true,
		},
		{
			name:    "not an array",
			request: streamresp.SimpleString("PING"),
			wantOk:  false,
		},
		{
			name:    "empty array",
			request: streamresp.Array(),
			wantOk:  false,
		},
		{
			name:    "non bulk string argument",
			request: streamresp.Array(streamresp.BulkString([]byte("PING")), streamresp.Int(1)),
			wantOk:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dispatch(tt.request)
			if ok != tt.wantOk {
				t.Fatalf("dispatch ok = %v, want %v", ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("dispatch = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHandleParse(t *testing.T) {
	response := handleParse([]streamresp.Value{streamresp.BulkString([]byte("*2\r\n:1\r\n:2\r\n"))})
	if response.Type != streamresp.TypeMap {
		t.Fatalf("expected map response, got %+v", response)
	}
	if len(response.Pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(response.Pairs))
	}
	if !response.Pairs[0].Value.Equal(streamresp.SimpleString("array")) {
		t.Errorf("type pair = %+v", response.Pairs[0].Value)
	}
	if !response.Pairs[1].Value.Equal(streamresp.Int(12)) {
		t.Errorf("consumed pair = %+v", response.Pairs[1].Value)
	}

	response = handleParse([]streamresp.Value{streamresp.BulkString([]byte("@bad\r\n"))})
	if response.Type != streamresp.TypeSimpleError {
		t.Errorf("expected error response, got %+v", response)
	}
}
