package plotdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Write encodes the dataset in its layout, so that Read with
// matching options returns an equivalent dataset.
// Points whose weight is DefaultWeight are written with 3 fields,
// unless another point needs the weight column.
func Write(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)

	switch ds.Layout {
	case LayoutPoints:
	case LayoutHyperplane:
		if ds.Hyperplane == nil {
			return fmt.Errorf("missing hyperplane for layout %s", ds.Layout)
		}
		h := ds.Hyperplane
		if err := cw.Write([]string{formatFloat(h.A), formatFloat(h.B), formatFloat(h.C)}); err != nil {
			return err
		}
	case LayoutGrid:
		if ds.Grid == nil {
			return fmt.Errorf("missing grid for layout %s", ds.Layout)
		}
	default:
		return fmt.Errorf("unsupported layout %s", ds.Layout)
	}

	withWeight := false
	for _, p := range ds.Points {
		if p.Weight != DefaultWeight {
			withWeight = true
			break
		}
	}
	record := make([]string, 3, 4)
	for _, p := range ds.Points {
		record = record[:3]
		record[0], record[1], record[2] = formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Label)
		if withWeight {
			record = append(record, formatFloat(p.Weight))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if ds.Layout == LayoutGrid {
		var value [1]string
		for _, v := range ds.Grid.Flat() {
			value[0] = formatFloat(v)
			if err := cw.Write(value[:]); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile creates (or truncates) the named file and writes ds into it.
func WriteFile(name string, ds *Dataset) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = Write(f, ds); err != nil {
		f.Close()
		os.Remove(name) // no partial output
		return err
	}
	return f.Close()
}
