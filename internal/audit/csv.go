package audit

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{"timestamp", "command", "success", "error_message", "username"}

// CSVRecorder appends command entries to a CSV file, writing a header row
// when the file is created fresh. Rows are flushed per entry so a crash
// loses at most the command in flight.
type CSVRecorder struct {
	file   *os.File
	writer *csv.Writer
}

// OpenCSV opens (or creates) the audit log at path in append mode.
func OpenCSV(path string) (*CSVRecorder, error) {
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	r := &CSVRecorder{file: file, writer: csv.NewWriter(file)}
	if fresh {
		if err := r.writer.Write(csvHeader); err != nil {
			file.Close()
			return nil, fmt.Errorf("write audit header: %w", err)
		}
		r.writer.Flush()
	}
	return r, nil
}

// Record implements Recorder.
func (r *CSVRecorder) Record(e Entry) error {
	row := []string{
		e.Timestamp.Format(time.RFC3339),
		e.Command,
		strconv.FormatBool(e.Success),
		e.Error,
		e.Username,
	}
	if err := r.writer.Write(row); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	r.writer.Flush()
	return r.writer.Error()
}

// Close flushes and closes the underlying file.
func (r *CSVRecorder) Close() error {
	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
