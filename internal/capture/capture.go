// Package capture manages corpora of RESP3 capture files: raw byte streams
// recorded from (or generated for) a connection, one stream per file. The
// respgen and respreplay tools share it.
package capture

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Extension marks capture files inside a corpus directory.
const Extension = ".resp"

// WriteStream writes one capture stream into dir, creating the directory if
// needed. The name should not carry the extension.
func WriteStream(fs afero.Fs, dir, name string, data []byte) (string, error) {
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name+Extension)
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// List returns the capture files directly inside dir, sorted by name so
// replays are deterministic.
func List(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadStream returns the raw bytes of one capture file.
func ReadStream(fs afero.Fs, path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}
