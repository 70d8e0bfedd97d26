package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/utils/currency"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
)

// ConvertCSV copies CSV from r to w, replacing dollar formatted cells of the given columns with plain numbers. Cells that do not parse are copied unchanged.
// If columns is empty, every column is converted. The first record is the header and is never converted.
func ConvertCSV(ctx context.Context, r io.Reader, w io.Writer, columns []string) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	writer := csv.NewWriter(w)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return goerr.Wrap(err, "failed to read CSV header")
	}

	targets, err := columnIndexes(header, columns)
	if err != nil {
		return err
	}

	if err := writer.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}

	var rows, converted int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read CSV record", goerr.V("row", rows+1))
		}

		for i := range record {
			if !targets(i) {
				continue
			}
			if v, ok := currency.ToFloat(record[i]).(float64); ok {
				record[i] = currency.Format(v)
				converted++
			}
		}

		if err := writer.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write CSV record", goerr.V("row", rows+1))
		}
		rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}

	logging.From(ctx).Debug("CSV converted", "rows", rows, "converted_cells", converted)
	return nil
}

func columnIndexes(header, columns []string) (func(int) bool, error) {
	if len(columns) == 0 {
		return func(int) bool { return true }, nil
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	selected := make(map[int]struct{}, len(columns))
	for _, c := range columns {
		i, ok := pos[c]
		if !ok {
			return nil, goerr.Wrap(types.ErrInvalidOption, "column not found in CSV header", goerr.V("column", c), goerr.V("header", header))
		}
		selected[i] = struct{}{}
	}

	return func(i int) bool {
		_, ok := selected[i]
		return ok
	}, nil
}
