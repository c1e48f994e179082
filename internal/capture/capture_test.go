package capture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ananthvk/streamresp"
	"github.com/spf13/afero"
)

func TestWriteListRead(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := WriteStream(fs, "corpus", "b-stream", []byte(":2\r\n")); err != nil {
		t.Fatalf("WriteStream failed: %v", err)
	}
	if _, err := WriteStream(fs, "corpus", "a-stream", []byte(":1\r\n")); err != nil {
		t.Fatalf("WriteStream failed: %v", err)
	}
	// Non-capture files are ignored.
	if err := afero.WriteFile(fs, "corpus/notes.txt", []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	paths, err := List(fs, "corpus")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 capture files, got %v", paths)
	}
	if paths[0] != "corpus/a-stream.resp" || paths[1] != "corpus/b-stream.resp" {
		t.Errorf("expected sorted capture paths, got %v", paths)
	}

	data, err := ReadStream(fs, paths[0])
	if err != nil {
		t.Fatalf("ReadStream failed: %v", err)
	}
	if !bytes.Equal(data, []byte(":1\r\n")) {
		t.Errorf("ReadStream = %q", data)
	}
}

func TestReplay(t *testing.T) {
	fs := afero.NewMemMapFs()
	stream := []byte("+OK\r\n*2\r\n:1\r\n$5\r\nhello\r\n%1\r\n+k\r\n#t\r\n")
	path, err := WriteStream(fs, "corpus", "mixed", stream)
	if err != nil {
		t.Fatal(err)
	}

	for _, chunkSize := range []int{1, 3, 7, len(stream)} {
		result := Replay(fs, path, chunkSize, 0, 0)
		if result.Err != nil {
			t.Fatalf("chunk size %d: %v", chunkSize, result.Err)
		}
		if result.Values != 3 {
			t.Errorf("chunk size %d: expected 3 values, got %d", chunkSize, result.Values)
		}
		if result.Bytes != len(stream) {
			t.Errorf("chunk size %d: expected %d bytes, got %d", chunkSize, len(stream), result.Bytes)
		}
	}
}

func TestReplayReportsProtocolError(t *testing.T) {
	fs := afero.NewMemMapFs()
	path, err := WriteStream(fs, "corpus", "broken", []byte("+OK\r\n@nope\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	result := Replay(fs, path, 4, 0, 0)
	if !errors.Is(result.Err, streamresp.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", result.Err)
	}
	if result.Values != 1 {
		t.Errorf("expected 1 value before the error, got %d", result.Values)
	}
}

func TestReplayReportsTruncatedStream(t *testing.T) {
	fs := afero.NewMemMapFs()
	path, err := WriteStream(fs, "corpus", "truncated", []byte("$10\r\nhel"))
	if err != nil {
		t.Fatal(err)
	}
	result := Replay(fs, path, 4, 0, 0)
	if result.Err == nil {
		t.Fatal("expected an error for a truncated stream")
	}
}
