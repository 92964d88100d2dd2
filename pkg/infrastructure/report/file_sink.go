package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes each report as a whole document, overwriting the
// previous one. The body lands in a temp file first and is renamed
// into place, so the report path never holds a partial write.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to the given path
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write replaces the report file with body
func (s *FileSink) Write(body string) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("creating report temp file: %w", err)
	}

	if _, err := tmp.WriteString(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing report temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing report file: %w", err)
	}
	return nil
}
