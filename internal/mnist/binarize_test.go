package mnist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarizePixel(t *testing.T) {
	tests := []struct {
		pixel     byte
		threshold float64
		want      int
	}{
		{100, 0.3, 1},
		{50, 0.3, 0},
		{76, 0.3, 0},
		{77, 0.3, 1},
		{0, 0.3, 0},
		{255, 0.3, 1},
		{0, 0, 0},
		{1, 0, 1},
		{255, 1, 0},
		{128, 0.5, 1},
		{127, 0.5, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BinarizePixel(tt.pixel, tt.threshold), "pixel=%v threshold=%v", tt.pixel, tt.threshold)
	}
}

// syntheticImages builds count 28x28 images where image i has pixel j equal
// to (i*31 + j*7) % 256.
func syntheticImages(count int) (Images, []byte) {
	var images = Images{Count: count, Rows: 28, Cols: 28, Pixels: make([]byte, count*28*28)}
	var labels = make([]byte, count)
	for i := 0; i < count; i++ {
		var image = images.Image(i)
		for j := range image {
			image[j] = byte((i*31 + j*7) % 256)
		}
		labels[i] = byte(i % 10)
	}
	return images, labels
}

func TestBinarize(t *testing.T) {
	var images, labels = syntheticImages(23)
	rows, err := Binarize(images, labels, DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, rows, 23)
	for i, row := range rows {
		require.Len(t, row, 785)
		require.Equal(t, int(labels[i]), row[784])
		for j, v := range row[:784] {
			var pixel = images.Image(i)[j]
			var want = 0
			if float64(pixel) > 76.5 {
				want = 1
			}
			require.Equal(t, want, v)
		}
	}
}

func TestBinarizeErrors(t *testing.T) {
	var images, labels = syntheticImages(3)

	_, err := Binarize(images, labels[:2], DefaultThreshold)
	require.ErrorIs(t, err, ErrCountMismatch)

	_, err = Binarize(images, labels, 1.5)
	require.Error(t, err)

	var badLabels = []byte{1, 10, 2}
	_, err = Binarize(images, badLabels, DefaultThreshold)
	require.Error(t, err)

	var huge = Images{Count: 16, Rows: 1 << 30, Cols: 1 << 30}
	_, err = Binarize(huge, make([]byte, 16), DefaultThreshold)
	require.ErrorIs(t, err, ErrImageShape)

	var truncated = images
	truncated.Pixels = truncated.Pixels[:100]
	_, err = Binarize(truncated, labels, DefaultThreshold)
	require.Error(t, err)
}
