// Package ingest parses simulation CSV files into duel batches.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/okian/bacrama/internal/domain/model"
)

// Column names of a simulation file. The optional Bacchiatori column is
// accepted and ignored.
const (
	ColumnEqual          = "Equal"
	ColumnOpposite       = "Opposite"
	ColumnEqualPoints    = "EqualPoints"
	ColumnOppositePoints = "OppositePoints"
	ColumnBacchiatori    = "Bacchiatori"
)

var requiredColumns = []string{ColumnEqual, ColumnOpposite, ColumnEqualPoints, ColumnOppositePoints}

// Batch holds the duels of one simulation file.
type Batch struct {
	Source string
	// Bacchiatori lists every competitor of the file once, in first-seen order.
	Bacchiatori []string
	Duels       []*model.Duel
}

// LoadFile opens and parses the simulation file at path.
func LoadFile(ctx context.Context, path string) (Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return Load(ctx, path, f)
}

// Load parses a simulation CSV read from r. name is used in errors and as the
// batch source.
func Load(ctx context.Context, name string, r io.Reader) (Batch, error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true
	rd.ReuseRecord = true

	header, err := rd.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Batch{}, fmt.Errorf("%s: %w: %s", name, ErrMissingColumn, ColumnEqual)
		}
		return Batch{}, fmt.Errorf("%s: %w: %w", name, ErrMalformedRow, err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return Batch{}, fmt.Errorf("%s: %w", name, err)
	}

	batch := Batch{Source: name}
	seen := make(map[string]struct{})
	note := func(n string) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			batch.Bacchiatori = append(batch.Bacchiatori, n)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return Batch{}, err
		}
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Batch{}, fmt.Errorf("%s: %w: %w", name, ErrMalformedRow, err)
		}
		line, _ := rd.FieldPos(0)

		d, err := parseDuel(rec, cols)
		if err != nil {
			return Batch{}, fmt.Errorf("%s: line %d: %w", name, line, err)
		}
		note(d.Equal)
		note(d.Opposite)
		batch.Duels = append(batch.Duels, d)
	}
	return batch, nil
}

type columns struct {
	equal, opposite, equalPoints, oppositePoints int
}

func indexColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		// A UTF-8 BOM may precede the first header.
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if _, dup := pos[h]; dup && h != "" {
			return columns{}, fmt.Errorf("%w: header: duplicate column %q", ErrMalformedRow, h)
		}
		pos[h] = i
	}
	for _, c := range requiredColumns {
		if _, ok := pos[c]; !ok {
			return columns{}, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return columns{
		equal:          pos[ColumnEqual],
		opposite:       pos[ColumnOpposite],
		equalPoints:    pos[ColumnEqualPoints],
		oppositePoints: pos[ColumnOppositePoints],
	}, nil
}

func parseDuel(rec []string, c columns) (*model.Duel, error) {
	equal := strings.TrimSpace(rec[c.equal])
	opposite := strings.TrimSpace(rec[c.opposite])
	if equal == "" || opposite == "" {
		return nil, ErrEmptyName
	}
	ep, err := strconv.Atoi(strings.TrimSpace(rec[c.equalPoints]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRow, ColumnEqualPoints, err)
	}
	op, err := strconv.Atoi(strings.TrimSpace(rec[c.oppositePoints]))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedRow, ColumnOppositePoints, err)
	}
	return &model.Duel{
		Equal:          equal,
		Opposite:       opposite,
		EqualPoints:    ep,
		OppositePoints: op,
	}, nil
}
