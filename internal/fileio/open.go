package fileio

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ulikunitz/xz"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if cerr := rc.closers[i].Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading. Files ending in .gz or .xz are decompressed
// on the fly.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var br = bufio.NewReader(file)

	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(br)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("gzip %v: %w", path, err)
		}
		return &readCloser{Reader: gz, closers: []io.Closer{file, gz}}, nil
	case ".xz":
		xr, err := xz.NewReader(br)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("xz %v: %w", path, err)
		}
		return &readCloser{Reader: xr, closers: []io.Closer{file}}, nil
	default:
		return &readCloser{Reader: br, closers: []io.Closer{file}}, nil
	}
}

// FirstExisting returns the first candidate path that exists.
func FirstExisting(candidates ...string) (string, error) {
	for _, path := range candidates {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("none of %v found: %w", candidates, fs.ErrNotExist)
}
