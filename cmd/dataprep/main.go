package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/tsetlinkit/dataprep/internal/con4"
	"github.com/tsetlinkit/dataprep/internal/mnist"
	"github.com/tsetlinkit/dataprep/internal/summary"
	"github.com/tsetlinkit/dataprep/internal/textmat"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run(context.Background(), os.Args)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	var ch = NewCommandHandler()
	ch.Add("con4", func(args []string) error {
		return runCon4(ctx, args)
	})
	ch.Add("mnist", func(args []string) error {
		return runMnist(ctx, args)
	})
	ch.Add("stats", runStats)
	return ch.Execute(NewCommandArgs(args))
}

func runCon4(ctx context.Context, args []string) error {
	var ds = con4.NewDatasetService()

	var fs = flag.NewFlagSet("con4", flag.ContinueOnError)
	fs.StringVar(&ds.InputPath, "input", ds.InputPath, "Path to connect-4 CSV file")
	fs.StringVar(&ds.TrainPath, "train", ds.TrainPath, "Path to output train file")
	fs.StringVar(&ds.TestPath, "test", ds.TestPath, "Path to output test file")
	fs.IntVar(&ds.TestPercentage, "testpct", ds.TestPercentage, "Percentage of rows in test file")
	fs.Uint64Var(&ds.Seed, "seed", ds.Seed, "Seed of test rows sampling")
	fs.BoolVar(&ds.SkipMalformed, "skipbad", ds.SkipMalformed, "Skip malformed rows instead of failing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	ds.InputPath = mapPath(ds.InputPath)
	ds.TrainPath = mapPath(ds.TrainPath)
	ds.TestPath = mapPath(ds.TestPath)

	log.Printf("%+v", *ds)
	return ds.Run(ctx)
}

type MnistSettings struct {
	Folder    string
	TrainPath string
	TestPath  string
	Threshold float64
}

func runMnist(ctx context.Context, args []string) error {
	var settings = MnistSettings{
		Folder:    ".",
		TrainPath: mnist.DefaultTrainPath,
		TestPath:  mnist.DefaultTestPath,
		Threshold: mnist.DefaultThreshold,
	}

	var fs = flag.NewFlagSet("mnist", flag.ContinueOnError)
	fs.StringVar(&settings.Folder, "folder", settings.Folder, "Path to folder with MNIST idx files")
	fs.StringVar(&settings.TrainPath, "train", settings.TrainPath, "Path to output train file")
	fs.StringVar(&settings.TestPath, "test", settings.TestPath, "Path to output test file")
	fs.Float64Var(&settings.Threshold, "threshold", settings.Threshold, "Pixel threshold as fraction of 255")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log.Printf("%+v", settings)

	var ds = mnist.NewDatasetService(&mnist.IdxCorpus{Folder: mapPath(settings.Folder)})
	ds.TrainPath = mapPath(settings.TrainPath)
	ds.TestPath = mapPath(settings.TestPath)
	ds.Threshold = settings.Threshold
	return ds.Run(ctx)
}

func runStats(args []string) error {
	var path string
	var fs = flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.StringVar(&path, "path", "", "Path to matrix file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	path = mapPath(path)

	rows, err := textmat.Load(path)
	if err != nil {
		return err
	}
	summary.Describe(rows).Log(path)
	return nil
}
