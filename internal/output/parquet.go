// Package output writes generated waveforms to disk: a parquet table of
// samples and a PNG plot of both detector channels.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/KwintenF/FastEMRIWaveforms/internal/monitoring"
)

// Sample is one parquet row: time and the two detector channels.
type Sample struct {
	T   float64 `parquet:"t"`
	HI  float64 `parquet:"h_I"`
	HII float64 `parquet:"h_II"`
}

// rowBatch bounds the rows buffered per Write call.
const rowBatch = 8192

// NewParquetWriter creates a generic parquet writer for Sample rows with
// meta serialised as JSON under the "run" key.
func NewParquetWriter(w io.Writer, meta interface{}) *parquet.GenericWriter[Sample] {
	metaStr := "{}"
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			metaStr = string(b)
		}
	}

	return parquet.NewGenericWriter[Sample](w,
		parquet.KeyValueMetadata("run", metaStr),
	)
}

// WriteParquet streams h (sample i at t = i·dt, h = hI − i·hII) to w.
func WriteParquet(w io.Writer, h []complex128, dt float64, meta interface{}) error {
	pw := NewParquetWriter(w, meta)
	rows := make([]Sample, 0, min(len(h), rowBatch))
	for lo := 0; lo < len(h); lo += rowBatch {
		rows = rows[:0]
		for i := lo; i < min(lo+rowBatch, len(h)); i++ {
			rows = append(rows, Sample{T: float64(i) * dt, HI: real(h[i]), HII: -imag(h[i])})
		}
		if _, err := pw.Write(rows); err != nil {
			pw.Close()
			return fmt.Errorf("write parquet rows: %w", err)
		}
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}

	return nil
}

// SaveParquet writes h to path.
func SaveParquet(path string, h []complex128, dt float64, meta interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteParquet(f, h, dt, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	monitoring.Logf("output: wrote %d samples to %s", len(h), path)

	return nil
}
