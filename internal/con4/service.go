package con4

import (
	"context"
	"log"

	"github.com/tsetlinkit/dataprep/internal/split"
	"github.com/tsetlinkit/dataprep/internal/summary"
	"github.com/tsetlinkit/dataprep/internal/textmat"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultInputPath      = "connect-4.data"
	DefaultTrainPath      = "con4-train.data"
	DefaultTestPath       = "con4-test.data"
	DefaultTestPercentage = 10
	DefaultSeed           = 0
)

type DatasetService struct {
	InputPath      string
	TrainPath      string
	TestPath       string
	TestPercentage int
	Seed           uint64
	SkipMalformed  bool
}

func NewDatasetService() *DatasetService {
	return &DatasetService{
		InputPath:      DefaultInputPath,
		TrainPath:      DefaultTrainPath,
		TestPath:       DefaultTestPath,
		TestPercentage: DefaultTestPercentage,
		Seed:           DefaultSeed,
	}
}

func (ds *DatasetService) Run(ctx context.Context) error {
	log.Println("con4 started")
	defer log.Println("con4 finished")

	rows, _, err := LoadDataset(ctx, ds.InputPath, ds.SkipMalformed)
	if err != nil {
		return err
	}

	dataset, err := split.Split(rows, ds.TestPercentage, ds.Seed)
	if err != nil {
		return err
	}
	log.Println("split",
		"trainCount", len(dataset.Train),
		"testCount", len(dataset.Test),
		"seed", ds.Seed)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return textmat.SaveRows(ctx, ds.TestPath, dataset.Test)
	})

	g.Go(func() error {
		return textmat.SaveRows(ctx, ds.TrainPath, dataset.Train)
	})

	err = g.Wait()
	if err != nil {
		return err
	}

	summary.Describe(dataset.Train).Log(ds.TrainPath)
	summary.Describe(dataset.Test).Log(ds.TestPath)
	return nil
}
