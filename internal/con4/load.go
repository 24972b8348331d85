package con4

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/tsetlinkit/dataprep/internal/domain"
	"github.com/tsetlinkit/dataprep/internal/fileio"

	"golang.org/x/sync/errgroup"
)

type record struct {
	line   int
	fields []string
	err    error
}

type LoadStats struct {
	Rows    int
	Skipped int
}

// LoadDataset reads and encodes the CSV at filepath, keeping file order.
// With skipMalformed a row that fails to parse as CSV or to encode is
// logged and left out, otherwise it aborts the load. Errors name the line.
func LoadDataset(
	ctx context.Context,
	filepath string,
	skipMalformed bool,
) ([]domain.Row, LoadStats, error) {
	g, ctx := errgroup.WithContext(ctx)

	var records = make(chan record, 128)

	g.Go(func() error {
		defer close(records)
		return loadRecords(ctx, filepath, records)
	})

	var rows []domain.Row
	var stats LoadStats

	g.Go(func() error {
		var err error
		rows, stats, err = encodeRecords(ctx, records, skipMalformed)
		return err
	})

	var err = g.Wait()
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("load %v: %w", filepath, err)
	}
	log.Println("loadDataset",
		"filepath", filepath,
		"rowCount", stats.Rows,
		"skippedCount", stats.Skipped)
	return rows, stats, nil
}

func loadRecords(
	ctx context.Context,
	filepath string,
	records chan<- record,
) error {
	rc, err := fileio.Open(filepath)
	if err != nil {
		return err
	}
	defer rc.Close()

	var reader = csv.NewReader(rc)
	// field count is validated by EncodeRow
	reader.FieldsPerRecord = -1
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var rec record
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			rec = record{line: parseErr.StartLine, err: parseErr.Err}
		} else if err != nil {
			return err
		} else {
			var line, _ = reader.FieldPos(0)
			rec = record{line: line, fields: fields}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case records <- rec:
		}
	}
}

func encodeRecords(
	ctx context.Context,
	records <-chan record,
	skipMalformed bool,
) ([]domain.Row, LoadStats, error) {
	var rows []domain.Row
	var stats LoadStats
	for rec := range records {
		var row domain.Row
		var err = rec.err
		if err == nil {
			row, err = EncodeRow(rec.fields)
		}
		if err != nil {
			if !skipMalformed {
				return nil, stats, fmt.Errorf("line %v: %w", rec.line, err)
			}
			log.Println("readRow failed",
				"line", rec.line,
				"err", err)
			stats.Skipped++
			continue
		}
		rows = append(rows, row)
		stats.Rows++
	}
	return rows, stats, ctx.Err()
}
