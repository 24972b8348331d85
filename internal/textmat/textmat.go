package textmat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tsetlinkit/dataprep/internal/domain"
	"github.com/tsetlinkit/dataprep/internal/fileio"

	"golang.org/x/sync/errgroup"
)

var ErrRagged = errors.New("rows of different width")

// WriteRow writes one row as space separated integers followed by a newline.
func WriteRow(w *bufio.Writer, row domain.Row) error {
	var buf [20]byte
	for i, v := range row {
		if i > 0 {
			if err := w.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := w.Write(strconv.AppendInt(buf[:0], int64(v), 10)); err != nil {
			return err
		}
	}
	return w.WriteByte('\n')
}

// Write writes rows in the same format as Save.
func Write(w io.Writer, rows []domain.Row) error {
	var bw = bufio.NewWriter(w)
	for _, row := range rows {
		if err := WriteRow(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes rows received from the channel to filepath until the channel
// is closed. It returns the number of rows written.
func Save(
	ctx context.Context,
	rows <-chan domain.Row,
	filepath string,
) (int, error) {
	file, err := os.Create(filepath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	var w = bufio.NewWriter(file)

	var ticker = time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var rowCount int

LOOP:
	for {
		select {
		case <-ctx.Done():
			return rowCount, ctx.Err()
		case <-ticker.C:
			log.Println("save", "filepath", filepath, "rowCount", rowCount)
		case row, ok := <-rows:
			if !ok {
				break LOOP
			}
			if err := WriteRow(w, row); err != nil {
				return rowCount, err
			}
			rowCount++
		}
	}

	if err := w.Flush(); err != nil {
		return rowCount, err
	}
	if err := file.Close(); err != nil {
		return rowCount, err
	}
	log.Println("save",
		"filepath", filepath,
		"rowCount", rowCount)
	return rowCount, nil
}

// SaveRows writes all rows to filepath.
func SaveRows(ctx context.Context, filepath string, rows []domain.Row) error {
	g, ctx := errgroup.WithContext(ctx)

	var ch = make(chan domain.Row, 128)

	g.Go(func() error {
		defer close(ch)
		for _, row := range rows {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- row:
			}
		}
		return nil
	})

	g.Go(func() error {
		var _, err = Save(ctx, ch, filepath)
		return err
	})

	return g.Wait()
}

// Read parses whitespace separated integer rows. Blank lines are ignored.
func Read(r io.Reader) ([]domain.Row, error) {
	var result []domain.Row
	var width = -1
	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		var fields = strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		var row = make(domain.Row, len(fields))
		for i, s := range fields {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("line %v: %w", lineNumber, err)
			}
			row[i] = v
		}
		if width == -1 {
			width = len(row)
		} else if width != len(row) {
			return nil, fmt.Errorf("line %v: %w: %v != %v", lineNumber, ErrRagged, len(row), width)
		}
		result = append(result, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func Load(filepath string) ([]domain.Row, error) {
	rc, err := fileio.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	rows, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", filepath, err)
	}
	return rows, nil
}
