package mnist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/tsetlinkit/dataprep/internal/fileio"
)

const (
	magicLabels = 0x00000801
	magicImages = 0x00000803
)

const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

var ErrBadMagic = errors.New("bad idx magic number")

func ReadImages(r io.Reader) (Images, error) {
	var header [4]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return Images{}, fmt.Errorf("read images header: %w", err)
	}
	if header[0] != magicImages {
		return Images{}, fmt.Errorf("%w: %#x", ErrBadMagic, header[0])
	}
	var count, rows, cols = int(header[1]), int(header[2]), int(header[3])
	if err := checkShape(count, rows, cols); err != nil {
		return Images{}, err
	}
	var pixels = make([]byte, count*rows*cols)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return Images{}, fmt.Errorf("read images: %w", err)
	}
	return Images{Count: count, Rows: rows, Cols: cols, Pixels: pixels}, nil
}

func ReadLabels(r io.Reader) ([]byte, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("read labels header: %w", err)
	}
	if header[0] != magicLabels {
		return nil, fmt.Errorf("%w: %#x", ErrBadMagic, header[0])
	}
	var count = int(header[1])
	if count > maxItems {
		return nil, fmt.Errorf("labels too large %v", count)
	}
	var labels = make([]byte, count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}

// IdxCorpus reads the four MNIST idx files from Folder. Each file may be
// stored plain or compressed with gzip or xz.
type IdxCorpus struct {
	Folder string
}

func (c *IdxCorpus) path(name string) (string, error) {
	var base = filepath.Join(c.Folder, name)
	return fileio.FirstExisting(base, base+".gz", base+".xz")
}

func readFile[T any](c *IdxCorpus, name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	path, err := c.path(name)
	if err != nil {
		return zero, err
	}
	rc, err := fileio.Open(path)
	if err != nil {
		return zero, err
	}
	defer rc.Close()
	result, err := read(rc)
	if err != nil {
		return zero, fmt.Errorf("%v: %w", path, err)
	}
	return result, nil
}

func (c *IdxCorpus) TrainImages() (Images, error) {
	return readFile(c, TrainImagesFile, ReadImages)
}

func (c *IdxCorpus) TrainLabels() ([]byte, error) {
	return readFile(c, TrainLabelsFile, ReadLabels)
}

func (c *IdxCorpus) TestImages() (Images, error) {
	return readFile(c, TestImagesFile, ReadImages)
}

func (c *IdxCorpus) TestLabels() ([]byte, error) {
	return readFile(c, TestLabelsFile, ReadLabels)
}
