package fileio

import (
	"bytes"
	"compress/gzip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const content = "x,o,b,win\nb,b,b,loss\n"

func writeGzip(t *testing.T, path string) {
	var buf bytes.Buffer
	var w = gzip.NewWriter(&buf)
	_, err := w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func writeXz(t *testing.T, path string) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestOpen(t *testing.T) {
	var dir = t.TempDir()

	var plain = filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0o644))
	var gz = filepath.Join(dir, "data.csv.gz")
	writeGzip(t, gz)
	var xzPath = filepath.Join(dir, "data.csv.xz")
	writeXz(t, xzPath)

	for _, path := range []string{plain, gz, xzPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			rc, err := Open(path)
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			require.Equal(t, content, string(data))
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFirstExisting(t *testing.T) {
	var dir = t.TempDir()
	var gz = filepath.Join(dir, "labels.gz")
	writeGzip(t, gz)

	path, err := FirstExisting(filepath.Join(dir, "labels"), gz)
	require.NoError(t, err)
	require.Equal(t, gz, path)

	_, err = FirstExisting(filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}
