package domain

// Row is one encoded sample: feature values followed by the class label.
type Row []int

func (r Row) Label() int {
	return r[len(r)-1]
}

func (r Row) Features() []int {
	return r[:len(r)-1]
}

type Dataset struct {
	Train []Row
	Test  []Row
}
