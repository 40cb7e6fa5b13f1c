package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVLog writes one row per step:
// step,truth_x,truth_y,truth_theta,meas_0..meas_k,est_x,est_y,est_theta
type CSVLog struct {
	w           *csv.Writer
	numMeas     int
	wroteHeader bool
}

// NewCSVLog writes rows with numMeas measurement columns to w.
func NewCSVLog(w io.Writer, numMeas int) *CSVLog {
	return &CSVLog{w: csv.NewWriter(w), numMeas: numMeas}
}

func (l *CSVLog) header() []string {
	h := []string{"step", "truth_x", "truth_y", "truth_theta"}
	for i := 0; i < l.numMeas; i++ {
		h = append(h, fmt.Sprintf("meas_%d", i))
	}
	return append(h, "est_x", "est_y", "est_theta")
}

func (l *CSVLog) Observe(f Frame) error {
	if !l.wroteHeader {
		if err := l.w.Write(l.header()); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
		l.wroteHeader = true
	}

	row := []string{
		strconv.Itoa(f.Step),
		formatFloat(f.Truth.X),
		formatFloat(f.Truth.Y),
		formatFloat(f.Truth.Theta),
	}
	for i := 0; i < l.numMeas; i++ {
		if i < len(f.Measurements) {
			row = append(row, formatFloat(f.Measurements[i]))
		} else {
			row = append(row, "")
		}
	}
	row = append(row, formatFloat(f.Estimate.X), formatFloat(f.Estimate.Y), formatFloat(f.Estimate.Theta))

	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("write csv row %d: %w", f.Step, err)
	}
	l.w.Flush()
	return l.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
