package split

import (
	"fmt"

	"github.com/tsetlinkit/dataprep/internal/domain"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// TestSize is floor(n*percentage/100).
func TestSize(n, percentage int) int {
	return n * percentage / 100
}

// TestIndices samples TestSize(n, percentage) distinct indices from [0, n).
// The result depends only on n, percentage and seed.
func TestIndices(n, percentage int, seed uint64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("bad dataset size %v", n)
	}
	if percentage < 0 || percentage > 100 {
		return nil, fmt.Errorf("bad test percentage %v", percentage)
	}
	var size = TestSize(n, percentage)
	if size == 0 {
		return nil, nil
	}
	var indices = make([]int, size)
	sampleuv.WithoutReplacement(indices, n, rand.NewSource(seed))
	return indices, nil
}

// Partition puts rows selected by testIndices into Test, in sampled order,
// and the remaining rows into Train, in their original order.
func Partition(rows []domain.Row, testIndices []int) (domain.Dataset, error) {
	var selected = make([]bool, len(rows))
	var test = make([]domain.Row, 0, len(testIndices))
	for _, index := range testIndices {
		if index < 0 || index >= len(rows) {
			return domain.Dataset{}, fmt.Errorf("test index %v out of range %v", index, len(rows))
		}
		if selected[index] {
			return domain.Dataset{}, fmt.Errorf("duplicate test index %v", index)
		}
		selected[index] = true
		test = append(test, rows[index])
	}
	var train = make([]domain.Row, 0, len(rows)-len(test))
	for i, row := range rows {
		if !selected[i] {
			train = append(train, row)
		}
	}
	return domain.Dataset{Train: train, Test: test}, nil
}

// Split samples a seeded test partition of rows.
func Split(rows []domain.Row, percentage int, seed uint64) (domain.Dataset, error) {
	var indices, err = TestIndices(len(rows), percentage, seed)
	if err != nil {
		return domain.Dataset{}, err
	}
	return Partition(rows, indices)
}
