package plotdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/svmplot/hyperplane"
)

// Defaults used by the nonlinear benchmark.
const (
	DefaultPointCount = 500
	DefaultGridSize   = 1000
	DefaultGridRange  = 4.5
)

// ReadOptions selects the layout of the input.
type ReadOptions struct {
	Layout Layout

	// PointCount is the number of point rows before the grid values
	// (LayoutGrid only). Zero means: points up to the first
	// row with a single field.
	PointCount int
	// GridSize is the number of samples along each axis (LayoutGrid only).
	// Zero means: inferred from the number of grid rows.
	GridSize int
	// GridLo and GridHi give the sampled range (LayoutGrid only).
	// When both are zero, [-DefaultGridRange, DefaultGridRange] is used.
	GridLo, GridHi float64
}

// DefaultReadOptions returns the options matching the files
// written by the benchmark programs for the given layout.
func DefaultReadOptions(layout Layout) ReadOptions {
	opts := ReadOptions{Layout: layout}
	if layout == LayoutGrid {
		opts.PointCount = DefaultPointCount
		opts.GridSize = DefaultGridSize
		opts.GridLo, opts.GridHi = -DefaultGridRange, DefaultGridRange
	}
	return opts
}

// ReadFile opens and reads the named file.
// A missing file is reported with ErrInputNotFound.
func ReadFile(name string, opts ReadOptions) (*Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, err
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses a CSV stream. Rows are comma separated floating point values;
// blank lines are ignored.
func Read(r io.Reader, opts ReadOptions) (*Dataset, error) {
	rd := reader{csv: csv.NewReader(r)}
	rd.csv.FieldsPerRecord = -1
	rd.csv.TrimLeadingSpace = true
	rd.csv.ReuseRecord = true

	ds := &Dataset{Layout: opts.Layout}
	switch opts.Layout {
	case LayoutPoints:
		points, _, err := rd.readPoints(-1, false)
		if err != nil {
			return nil, err
		}
		ds.Points = points
	case LayoutHyperplane:
		h, err := rd.readHyperplane()
		if err != nil {
			return nil, err
		}
		ds.Hyperplane = &h
		points, _, err := rd.readPoints(-1, false)
		if err != nil {
			return nil, err
		}
		ds.Points = points
	case LayoutGrid:
		limit := opts.PointCount
		if limit == 0 {
			limit = -1
		}
		points, pending, err := rd.readPoints(limit, opts.PointCount == 0)
		if err != nil {
			return nil, err
		}
		if opts.PointCount > 0 && len(points) != opts.PointCount {
			return nil, rowErrorf(rd.line, "expected %d points before the grid, got %d", opts.PointCount, len(points))
		}
		ds.Points = points
		ds.Grid, err = rd.readGrid(pending, opts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported layout %s", opts.Layout)
	}
	return ds, nil
}

type reader struct {
	csv  *csv.Reader
	line int // line of the last record read
}

// next returns the next record, or nil at the end of the stream
func (rd *reader) next() ([]string, error) {
	record, err := rd.csv.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, &RowError{Line: perr.Line, Err: perr.Err}
		}
		return nil, err
	}
	rd.line, _ = rd.csv.FieldPos(0)
	return record, nil
}

func (rd *reader) parseFloats(record []string, out []float64) error {
	for i, field := range record {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return rowErrorf(rd.line, "field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return nil
}

func (rd *reader) readHyperplane() (hyperplane.Hyperplane, error) {
	record, err := rd.next()
	if err != nil {
		return hyperplane.Hyperplane{}, err
	}
	if record == nil {
		return hyperplane.Hyperplane{}, rowErrorf(rd.line, "missing hyperplane row")
	}
	if len(record) != 3 {
		return hyperplane.Hyperplane{}, rowErrorf(rd.line, "expected 3 hyperplane coefficients, got %d fields", len(record))
	}
	var coeffs [3]float64
	if err = rd.parseFloats(record, coeffs[:]); err != nil {
		return hyperplane.Hyperplane{}, err
	}
	return hyperplane.Hyperplane{A: coeffs[0], B: coeffs[1], C: coeffs[2]}, nil
}

// readPoints reads at most limit points (all of them if limit < 0).
// When stopAtGrid is true and a single field row is found, reading stops
// and this row is returned as pending, so that it can be used as
// the first grid value.
func (rd *reader) readPoints(limit int, stopAtGrid bool) (points []Point, pending []string, err error) {
	var fields [4]float64
	for limit < 0 || len(points) < limit {
		record, err := rd.next()
		if err != nil {
			return nil, nil, err
		}
		if record == nil {
			break
		}
		if len(record) == 1 && stopAtGrid {
			return points, append([]string(nil), record...), nil
		}
		if len(record) != 3 && len(record) != 4 {
			return nil, nil, rowErrorf(rd.line, "expected x,y,label[,weight], got %d fields", len(record))
		}
		if err = rd.parseFloats(record, fields[:len(record)]); err != nil {
			return nil, nil, err
		}
		p := Point{X: fields[0], Y: fields[1], Label: fields[2], Weight: DefaultWeight}
		if len(record) == 4 {
			p.Weight = fields[3]
		}
		points = append(points, p)
	}
	return points, nil, nil
}

func (rd *reader) readGrid(pending []string, opts ReadOptions) (*Grid, error) {
	var values []float64
	if opts.GridSize > 0 {
		values = make([]float64, 0, opts.GridSize*opts.GridSize)
	}
	var v [1]float64
	record := pending
	for {
		if record == nil {
			var err error
			record, err = rd.next()
			if err != nil {
				return nil, err
			}
			if record == nil {
				break
			}
		}
		if err := rd.parseFloats(record[:1], v[:]); err != nil {
			return nil, err
		}
		if math.IsInf(v[0], 0) {
			return nil, rowErrorf(rd.line, "infinite grid value %s", record[0])
		}
		values = append(values, v[0])
		record = nil
	}

	n := opts.GridSize
	if n == 0 {
		n = int(math.Round(math.Sqrt(float64(len(values)))))
	}
	if len(values) == 0 || len(values) != n*n {
		return nil, rowErrorf(rd.line, "expected %d grid values, got %d", n*n, len(values))
	}
	lo, hi := opts.GridLo, opts.GridHi
	if lo == 0 && hi == 0 {
		lo, hi = -DefaultGridRange, DefaultGridRange
	}
	g, err := NewGrid(n, lo, hi, values)
	if err != nil {
		return nil, &RowError{Line: rd.line, Err: err}
	}
	return g, nil
}
