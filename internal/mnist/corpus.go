// Package mnist prepares the MNIST handwritten digit dataset.
package mnist

import (
	"errors"
	"fmt"
)

// Images holds Count images of Rows x Cols pixels stored row-major one
// after another.
type Images struct {
	Count  int
	Rows   int
	Cols   int
	Pixels []byte
}

func (images Images) Size() int {
	return images.Rows * images.Cols
}

func (images Images) Image(i int) []byte {
	var size = images.Size()
	return images.Pixels[i*size : (i+1)*size]
}

var ErrImageShape = errors.New("bad images shape")

const (
	// maxSide bounds the rows and cols of one image.
	maxSide = 1 << 16
	// maxItems bounds count*rows*cols so a corrupt header does not trigger
	// a huge allocation.
	maxItems = 1 << 28
)

// checkShape rejects shapes whose pixel count would exceed maxItems. Each
// factor is bounded before multiplying so the product cannot overflow.
func checkShape(count, rows, cols int) error {
	if count < 0 || rows < 0 || cols < 0 || rows > maxSide || cols > maxSide {
		return fmt.Errorf("%w %vx%vx%v", ErrImageShape, count, rows, cols)
	}
	var size = rows * cols
	if count > maxItems || (size != 0 && count > maxItems/size) {
		return fmt.Errorf("%w %vx%vx%v: too large", ErrImageShape, count, rows, cols)
	}
	return nil
}

func (images Images) validate() error {
	if err := checkShape(images.Count, images.Rows, images.Cols); err != nil {
		return err
	}
	if len(images.Pixels) != images.Count*images.Size() {
		return fmt.Errorf("images shape %vx%vx%v does not match %v pixels",
			images.Count, images.Rows, images.Cols, len(images.Pixels))
	}
	return nil
}

// Corpus provides a dataset already partitioned into train and test parts.
type Corpus interface {
	TrainImages() (Images, error)
	TrainLabels() ([]byte, error)
	TestImages() (Images, error)
	TestLabels() ([]byte, error)
}

type Partition struct {
	Name   string
	Images func() (Images, error)
	Labels func() ([]byte, error)
}

func TrainPartition(c Corpus) Partition {
	return Partition{Name: "train", Images: c.TrainImages, Labels: c.TrainLabels}
}

func TestPartition(c Corpus) Partition {
	return Partition{Name: "test", Images: c.TestImages, Labels: c.TestLabels}
}
