package mnist

import (
	"context"
	"log"

	"github.com/tsetlinkit/dataprep/internal/summary"
	"github.com/tsetlinkit/dataprep/internal/textmat"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrainPath = "mnist-train.data"
	DefaultTestPath  = "mnist-test.data"
)

type DatasetService struct {
	Corpus    Corpus
	TrainPath string
	TestPath  string
	Threshold float64
}

func NewDatasetService(corpus Corpus) *DatasetService {
	return &DatasetService{
		Corpus:    corpus,
		TrainPath: DefaultTrainPath,
		TestPath:  DefaultTestPath,
		Threshold: DefaultThreshold,
	}
}

func (ds *DatasetService) Run(ctx context.Context) error {
	log.Println("mnist started")
	defer log.Println("mnist finished")

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return ds.save(ctx, TrainPartition(ds.Corpus), ds.TrainPath)
	})

	g.Go(func() error {
		return ds.save(ctx, TestPartition(ds.Corpus), ds.TestPath)
	})

	return g.Wait()
}

func (ds *DatasetService) save(ctx context.Context, p Partition, filepath string) error {
	images, err := p.Images()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	labels, err := p.Labels()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	log.Println("loadPartition",
		"name", p.Name,
		"count", images.Count,
		"rows", images.Rows,
		"cols", images.Cols)

	rows, err := Binarize(images, labels, ds.Threshold)
	if err != nil {
		return err
	}
	err = textmat.SaveRows(ctx, filepath, rows)
	if err != nil {
		return err
	}
	summary.Describe(rows).Log(filepath)
	return nil
}
