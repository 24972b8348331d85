package summary

import (
	"log"
	"sort"

	"github.com/tsetlinkit/dataprep/internal/domain"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Rows        int
	Width       int
	LabelCounts map[int]int
	LabelMean   float64
	LabelStdDev float64
	// Density is the mean feature value over all rows. For binary features it
	// is the fraction of set bits.
	Density float64
}

func Describe(rows []domain.Row) Summary {
	var result = Summary{
		Rows:        len(rows),
		LabelCounts: make(map[int]int),
	}
	if len(rows) == 0 {
		return result
	}
	result.Width = len(rows[0])

	var labels = make([]float64, len(rows))
	var rowDensity = make([]float64, len(rows))
	var features []float64
	for i, row := range rows {
		var label = row.Label()
		labels[i] = float64(label)
		result.LabelCounts[label]++

		features = features[:0]
		for _, v := range row.Features() {
			features = append(features, float64(v))
		}
		if len(features) != 0 {
			rowDensity[i] = floats.Sum(features) / float64(len(features))
		}
	}
	result.LabelMean, result.LabelStdDev = stat.MeanStdDev(labels, nil)
	result.Density = stat.Mean(rowDensity, nil)
	return result
}

// Labels returns the distinct labels in ascending order.
func (s Summary) Labels() []int {
	var labels = make([]int, 0, len(s.LabelCounts))
	for label := range s.LabelCounts {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	return labels
}

func (s Summary) Log(name string) {
	var counts = make([]int, 0, len(s.LabelCounts))
	for _, label := range s.Labels() {
		counts = append(counts, s.LabelCounts[label])
	}
	log.Println("summary",
		"name", name,
		"rows", s.Rows,
		"width", s.Width,
		"labels", s.Labels(),
		"labelCounts", counts,
		"labelMean", s.LabelMean,
		"labelStdDev", s.LabelStdDev,
		"density", s.Density)
}
