package mnist

import (
	"errors"
	"fmt"

	"github.com/tsetlinkit/dataprep/internal/domain"
)

const (
	DefaultThreshold = 0.3
	MaxLabel         = 9
)

var ErrCountMismatch = errors.New("image and label counts differ")

// BinarizePixel reports 1 when the intensity exceeds threshold*255.
func BinarizePixel(pixel byte, threshold float64) int {
	if float64(pixel) > threshold*255 {
		return 1
	}
	return 0
}

// Binarize flattens every image into pixel flags followed by its label.
func Binarize(images Images, labels []byte, threshold float64) ([]domain.Row, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("bad threshold %v", threshold)
	}
	if err := images.validate(); err != nil {
		return nil, err
	}
	if images.Count != len(labels) {
		return nil, fmt.Errorf("%w: %v images, %v labels", ErrCountMismatch, images.Count, len(labels))
	}

	var size = images.Size()
	var result = make([]domain.Row, images.Count)
	for i := range result {
		var label = labels[i]
		if label > MaxLabel {
			return nil, fmt.Errorf("bad label %v at %v", label, i)
		}
		var row = make(domain.Row, size+1)
		for j, pixel := range images.Image(i) {
			row[j] = BinarizePixel(pixel, threshold)
		}
		row[size] = int(label)
		result[i] = row
	}
	return result, nil
}
